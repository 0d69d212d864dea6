package backend

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// VegaLiteSchema is the schema URL stamped on every specification.
const VegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

var vegaScripts = []string{
	"https://cdn.jsdelivr.net/npm/vega@5",
	"https://cdn.jsdelivr.net/npm/vega-lite@5",
	"https://cdn.jsdelivr.net/npm/vega-embed@6",
}

// VegaLiteRenderer serializes charts into one layered Vega-Lite specification.
// Heatmaps are not implemented.
type VegaLiteRenderer struct {
	// Anchor is the id of the element the view is embedded into.
	Anchor string
}

// NewVegaLite returns a Vega-Lite renderer mounting into "vis".
func NewVegaLite() *VegaLiteRenderer {
	return &VegaLiteRenderer{Anchor: "vis"}
}

type vegaSpec struct {
	Schema string      `json:"$schema"`
	Layer  []vegaLayer `json:"layer"`
}

type vegaLayer struct {
	Name     string                    `json:"name,omitempty"`
	Data     vegaData                  `json:"data"`
	Mark     map[string]any            `json:"mark"`
	Encoding map[string]map[string]any `json:"encoding"`
}

type vegaData struct {
	Values []map[string]any `json:"values"`
}

// Render implements Renderer.
func (v *VegaLiteRenderer) Render(charts []models.Chart, display bool) (*Artifact, error) {
	spec, err := v.Spec(charts)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Backend:   VegaLite,
		MediaType: "text/html",
		Extension: ".html",
		Content:   []byte(v.document(spec)),
		Display:   display,
	}, nil
}

// Spec returns the JSON specification with one layer per chart, in order.
func (v *VegaLiteRenderer) Spec(charts []models.Chart) ([]byte, error) {
	spec := vegaSpec{Schema: VegaLiteSchema, Layer: make([]vegaLayer, 0, len(charts))}
	for i, c := range charts {
		layer, err := vegaChart(c)
		if err != nil {
			kind := models.ChartKind("")
			if c != nil {
				kind = c.Kind()
			}
			return nil, NewRenderError(VegaLite, i, kind, err)
		}
		spec.Layer = append(spec.Layer, layer)
	}
	out, err := json.Marshal(spec)
	if err != nil {
		return nil, NewRenderError(VegaLite, -1, "", err)
	}
	return out, nil
}

func (v *VegaLiteRenderer) document(spec []byte) string {
	anchor := v.Anchor
	if anchor == "" {
		anchor = "vis"
	}
	head := ""
	for _, src := range vegaScripts {
		head += fmt.Sprintf("    <script src=%q></script>\n", src)
	}
	return fmt.Sprintf(`<head>
%s</head>
<body>
    <div id=%q></div>
    <script>
vegaEmbed('#%s', %s);
    </script>
</body>
`, head, anchor, anchor, spec)
}

func vegaChart(c models.Chart) (vegaLayer, error) {
	cols := columns{}
	layer := vegaLayer{Encoding: map[string]map[string]any{}}
	if name, ok := c.Name(); ok {
		layer.Name = name
	}

	switch v := c.(type) {
	case models.Scatter:
		layer.Mark = map[string]any{"type": "point", "filled": true}
		cols.planar(layer.Encoding, v, "", "")
	case models.Line:
		layer.Mark = map[string]any{"type": "line"}
		cols.planar(layer.Encoding, v, "", "")
	case models.Bar:
		layer.Mark = map[string]any{"type": "bar"}
		cols.planar(layer.Encoding, v, "ordinal", "")
	case models.HorizontalBar:
		layer.Mark = map[string]any{"type": "bar", "orient": "horizontal"}
		cols.planar(layer.Encoding, v, "", "ordinal")
	case models.Pie:
		layer.Mark = map[string]any{"type": "arc"}
		cols.add("x", v.X())
		if v.X().IsQuantitative() {
			layer.Encoding["theta"] = map[string]any{"field": "x", "type": "quantitative"}
		} else {
			layer.Encoding["theta"] = map[string]any{"aggregate": "count"}
			layer.Encoding["color"] = map[string]any{"field": "x", "type": "nominal"}
		}
	case models.Box:
		layer.Mark = map[string]any{"type": "boxplot", "extent": 1.5}
		cols.add("x", v.X())
		layer.Encoding["x"] = map[string]any{"field": "x", "type": "quantitative"}
	case models.Heatmap:
		return vegaLayer{}, fmt.Errorf("%w: heatmap", ErrUnsupported)
	case nil:
		return vegaLayer{}, fmt.Errorf("%w: nil chart", ErrUnsupported)
	default:
		return vegaLayer{}, fmt.Errorf("%w: chart kind %s", ErrUnsupported, c.Kind())
	}

	if col, ok := c.(models.Colored); ok {
		if color, ok := col.Color(); ok {
			cols.decorate(&layer, "color", color)
		}
	}
	if sz, ok := c.(models.Sized); ok {
		if size, ok := sz.Size(); ok {
			cols.decorate(&layer, "size", size)
		}
	}

	layer.Data = vegaData{Values: cols.rows()}
	return layer, nil
}

// columns accumulates named series and pivots them into data rows.
type columns struct {
	names  []string
	series []models.Series
}

func (c *columns) add(name string, s models.Series) {
	c.names = append(c.names, name)
	c.series = append(c.series, s)
}

func (c *columns) planar(enc map[string]map[string]any, p models.Planar, xType, yType string) {
	c.add("x", p.X())
	c.add("y", p.Y())
	enc["x"] = fieldEncoding("x", p.X(), xType)
	enc["y"] = fieldEncoding("y", p.Y(), yType)
}

// decorate binds an optional channel; a single value becomes a constant mark
// property instead of a data field.
func (c *columns) decorate(layer *vegaLayer, channel string, s models.Series) {
	if s.Len() == 1 {
		layer.Mark[channel] = s.At(0)
		return
	}
	if _, taken := layer.Encoding[channel]; taken {
		return
	}
	c.add(channel, s)
	layer.Encoding[channel] = fieldEncoding(channel, s, "")
}

// rows pivots the columns; series of length one are broadcast.
func (c *columns) rows() []map[string]any {
	n := 0
	for _, s := range c.series {
		n = max(n, s.Len())
	}
	out := make([]map[string]any, n)
	for i := range out {
		row := make(map[string]any, len(c.names))
		for j, s := range c.series {
			switch {
			case s.Len() == 1:
				row[c.names[j]] = s.At(0)
			case i < s.Len():
				row[c.names[j]] = s.At(i)
			}
		}
		out[i] = row
	}
	return out
}

func fieldEncoding(field string, s models.Series, override string) map[string]any {
	typ := "nominal"
	if s.IsQuantitative() {
		typ = "quantitative"
	}
	if override != "" && s.IsQuantitative() {
		typ = override
	}
	return map[string]any{"field": field, "type": typ}
}
