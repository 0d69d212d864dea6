package backend

import (
	"fmt"
	"strings"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// PlotlyCDN is the script source loaded by the Plotly document shell.
const PlotlyCDN = "https://cdn.plot.ly/plotly-latest.min.js"

// PlotlyAnchor is the id of the element the chart is mounted into.
const PlotlyAnchor = "myDiv"

// PlotlyRenderer serializes charts into Plotly.js trace declarations.
type PlotlyRenderer struct {
	// CDN overrides PlotlyCDN when set.
	CDN string
	// Anchor overrides PlotlyAnchor when set.
	Anchor string
}

// NewPlotly returns a Plotly renderer with the default CDN and anchor.
func NewPlotly() *PlotlyRenderer {
	return &PlotlyRenderer{CDN: PlotlyCDN, Anchor: PlotlyAnchor}
}

// Render implements Renderer.
func (p *PlotlyRenderer) Render(charts []models.Chart, display bool) (*Artifact, error) {
	script, err := p.Script(charts)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Backend:   Plotly,
		MediaType: "text/html",
		Extension: ".html",
		Content:   []byte(p.document(script)),
		Display:   display,
	}, nil
}

// Script returns the body script: one declaration per chart followed by the
// ordered trace collection and the mount call.
func (p *PlotlyRenderer) Script(charts []models.Chart) (string, error) {
	var decls strings.Builder
	names := make([]string, 0, len(charts))
	for i, c := range charts {
		body, err := plotlyTrace(c)
		if err != nil {
			kind := models.ChartKind("")
			if c != nil {
				kind = c.Kind()
			}
			return "", NewRenderError(Plotly, i, kind, err)
		}
		name := traceName(i)
		fmt.Fprintf(&decls, "let %s = { %s };\n", name, body)
		names = append(names, name)
	}
	return fmt.Sprintf("%slet data = [%s]; Plotly.newPlot('%s', data);",
		decls.String(), strings.Join(names, ", "), p.anchor()), nil
}

func (p *PlotlyRenderer) document(script string) string {
	cdn := p.CDN
	if cdn == "" {
		cdn = PlotlyCDN
	}
	return fmt.Sprintf(`<head>
    <!-- Plotly.js -->
    <script src="%s"></script>
</head>
<body>
    <div id="%s"></div>
    <script>
%s
    </script>
</body>
`, cdn, p.anchor(), script)
}

func (p *PlotlyRenderer) anchor() string {
	if p.Anchor == "" {
		return PlotlyAnchor
	}
	return p.Anchor
}

// traceName is purely positional; declarations and the collection both use it.
func traceName(i int) string {
	return fmt.Sprintf("trace%d", i)
}

// plotlyTrace emits geometry, discriminators, the marker block and the name,
// in that order.
func plotlyTrace(c models.Chart) (string, error) {
	var attrs []string
	colorKey := "color"

	switch v := c.(type) {
	case models.Scatter:
		attrs = append(attrs, planarAttrs(v)...)
		attrs = append(attrs, attr("mode", "'markers'"), attr("type", "'scatter'"))
	case models.Line:
		attrs = append(attrs, planarAttrs(v)...)
		attrs = append(attrs, attr("mode", "'lines'"), attr("type", "'scatter'"))
	case models.Bar:
		attrs = append(attrs, planarAttrs(v)...)
		attrs = append(attrs, attr("type", "'bar'"))
	case models.HorizontalBar:
		attrs = append(attrs, planarAttrs(v)...)
		attrs = append(attrs, attr("orientation", "'h'"), attr("type", "'bar'"))
	case models.Pie:
		key := "values"
		if !v.X().IsQuantitative() {
			key = "labels"
		}
		attrs = append(attrs, attr(key, formatSeries(v.X())), attr("type", "'pie'"))
		colorKey = "colors"
	case models.Box:
		attrs = append(attrs, attr("x", formatSeries(v.X())), attr("boxpoints", "'outliers'"), attr("type", "'box'"))
	case models.Heatmap:
		attrs = append(attrs, attr("z", formatMatrix(v.Z())), attr("type", "'heatmap'"))
		var marker []string
		if color, ok := v.Color(); ok {
			marker = append(marker, attr("color", formatMatrix(color)))
		}
		attrs = append(attrs, markerBlock(marker))
		return finish(attrs, c), nil
	case nil:
		return "", fmt.Errorf("%w: nil chart", ErrUnsupported)
	default:
		return "", fmt.Errorf("%w: chart kind %s", ErrUnsupported, c.Kind())
	}

	attrs = append(attrs, markerBlock(decoration(c, colorKey)))
	return finish(attrs, c), nil
}

func planarAttrs(p models.Planar) []string {
	return []string{attr("x", formatSeries(p.X())), attr("y", formatSeries(p.Y()))}
}

// decoration collects one pair per present optional channel.
func decoration(c models.Chart, colorKey string) []string {
	var pairs []string
	if v, ok := c.(models.Colored); ok {
		if color, ok := v.Color(); ok {
			pairs = append(pairs, attr(colorKey, formatSeries(color)))
		}
	}
	if v, ok := c.(models.Sized); ok {
		if size, ok := v.Size(); ok {
			pairs = append(pairs, attr("size", formatSeries(size)))
		}
	}
	return pairs
}

func markerBlock(pairs []string) string {
	if len(pairs) == 0 {
		return attr("marker", "{ }")
	}
	return attr("marker", "{ "+strings.Join(pairs, " ")+" }")
}

func finish(attrs []string, c models.Chart) string {
	if name, ok := c.Name(); ok {
		attrs = append(attrs, attr("name", quote(name)))
	}
	return strings.Join(attrs, " ")
}
