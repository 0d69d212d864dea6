package workbook

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// EmbeddedChart is a chart object stored in a sheet's drawing.
type EmbeddedChart struct {
	// Name is the drawing object name, e.g. "Chart 1".
	Name  string
	Title string
	// Plot is the OOXML plot element, e.g. "lineChart" or "barChart".
	Plot string
	// Horizontal is set for bar charts drawn with horizontal bars.
	Horizontal bool
	Series     []EmbeddedSeries
}

// EmbeddedSeries holds the cell references of one chart series.
type EmbeddedSeries struct {
	Name    string
	NameRef string
	XRef    string
	YRef    string
	SizeRef string
}

// EmbeddedCharts lists the charts drawn on sheet in drawing order.
func (w *Workbook) EmbeddedCharts(sheet string) ([]EmbeddedChart, error) {
	if idx, err := w.f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, w.name)
	}
	r, err := zip.OpenReader(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open package %s: %w", w.name, err)
	}
	defer r.Close()

	part, err := sheetPart(&r.Reader, sheet)
	if err != nil || part == "" {
		return nil, err
	}
	drawing, err := drawingPart(&r.Reader, part)
	if err != nil || drawing == "" {
		return nil, err
	}
	return chartsInDrawing(&r.Reader, drawing)
}

func drawingPart(r *zip.Reader, sheetPart string) (string, error) {
	rels, err := readPart(r, relsPath(sheetPart))
	if err != nil || rels == nil {
		return "", err
	}
	for _, rel := range parseRels(rels) {
		if strings.Contains(rel.kind, "drawing") {
			return resolvePart(rel.target, "xl/drawings"), nil
		}
	}
	return "", nil
}

type chartAnchor struct {
	name string
	rID  string
}

func chartsInDrawing(r *zip.Reader, drawing string) ([]EmbeddedChart, error) {
	data, err := readPart(r, drawing)
	if err != nil || data == nil {
		return nil, err
	}
	anchors := parseAnchors(data)
	if len(anchors) == 0 {
		return nil, nil
	}

	relData, err := readPart(r, relsPath(drawing))
	if err != nil || relData == nil {
		return nil, err
	}
	targets := make(map[string]string)
	for _, rel := range parseRels(relData) {
		if strings.Contains(rel.kind, "chart") {
			targets[rel.id] = resolvePart(rel.target, "xl/charts")
		}
	}

	var out []EmbeddedChart
	for _, a := range anchors {
		target, ok := targets[a.rID]
		if !ok {
			continue
		}
		chartXML, err := readPart(r, target)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", target, err)
		}
		if chartXML == nil {
			continue
		}
		c := parseChartSpace(chartXML)
		c.Name = a.name
		out = append(out, c)
	}
	return out, nil
}

// parseAnchors returns the chart frames of a drawing in document order.
func parseAnchors(data []byte) []chartAnchor {
	var out []chartAnchor
	var cur chartAnchor
	inFrame := false
	d := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "graphicFrame":
				inFrame = true
				cur = chartAnchor{}
			case "cNvPr":
				if inFrame {
					cur.name = attr(t, "name")
				}
			case "chart":
				if inFrame {
					cur.rID = attr(t, "id")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "graphicFrame" {
				inFrame = false
				if cur.rID != "" {
					out = append(out, cur)
				}
			}
		}
	}
	return out
}

var plotElements = map[string]bool{
	"lineChart":      true,
	"line3DChart":    true,
	"barChart":       true,
	"bar3DChart":     true,
	"areaChart":      true,
	"area3DChart":    true,
	"pieChart":       true,
	"pie3DChart":     true,
	"doughnutChart":  true,
	"scatterChart":   true,
	"bubbleChart":    true,
	"radarChart":     true,
	"surfaceChart":   true,
	"surface3DChart": true,
	"stockChart":     true,
	"ofPieChart":     true,
}

// parseChartSpace reads the first plot of a chart part.
func parseChartSpace(data []byte) EmbeddedChart {
	var c EmbeddedChart
	d := xml.NewDecoder(strings.NewReader(string(data)))
	depth := 0
	plotDepth := -1
	inTitle := false
	var ser *EmbeddedSeries
	// field is the series reference being read: tx, cat/xVal, val/yVal or bubbleSize.
	field := ""

	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			name := t.Name.Local
			switch {
			case plotElements[name] && c.Plot == "":
				c.Plot = name
				plotDepth = depth
			case name == "title" && c.Plot == "" && c.Title == "":
				inTitle = true
			case name == "t" && inTitle:
				if txt, err := readText(d); err == nil {
					c.Title += strings.TrimSpace(txt)
				}
				depth--
			case name == "barDir" && plotDepth > 0:
				c.Horizontal = attr(t, "val") == "bar"
			case name == "ser" && plotDepth > 0:
				c.Series = append(c.Series, EmbeddedSeries{})
				ser = &c.Series[len(c.Series)-1]
			case ser != nil && (name == "tx" || name == "cat" || name == "xVal" || name == "val" || name == "yVal" || name == "bubbleSize"):
				field = name
			case ser != nil && field != "" && (name == "f" || name == "v"):
				txt, err := readText(d)
				depth--
				if err != nil {
					continue
				}
				setSeriesField(ser, field, name, strings.TrimSpace(txt))
			}
		case xml.EndElement:
			name := t.Name.Local
			switch {
			case name == "title":
				inTitle = false
			case name == "ser":
				ser = nil
				field = ""
			case name == field:
				field = ""
			case depth == plotDepth:
				plotDepth = -2
			}
			depth--
		}
	}
	return c
}

func setSeriesField(s *EmbeddedSeries, field, elem, value string) {
	switch field {
	case "tx":
		if elem == "f" {
			s.NameRef = value
		} else if s.Name == "" {
			s.Name = value
		}
	case "cat", "xVal":
		if elem == "f" {
			s.XRef = value
		}
	case "val", "yVal":
		if elem == "f" {
			s.YRef = value
		}
	case "bubbleSize":
		if elem == "f" {
			s.SizeRef = value
		}
	}
}
