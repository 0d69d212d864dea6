package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ChartKind names a chart variant.
type ChartKind string

const (
	KindScatter       ChartKind = "scatter"
	KindLine          ChartKind = "line"
	KindBar           ChartKind = "bar"
	KindHorizontalBar ChartKind = "horizontal_bar"
	KindPie           ChartKind = "pie"
	KindBox           ChartKind = "box"
	KindHeatmap       ChartKind = "heatmap"
)

// ChartKinds lists every chart kind in declaration order.
var ChartKinds = []ChartKind{
	KindScatter,
	KindLine,
	KindBar,
	KindHorizontalBar,
	KindPie,
	KindBox,
	KindHeatmap,
}

var kindAliases = map[string]ChartKind{
	"hbar":          KindHorizontalBar,
	"horizontalbar": KindHorizontalBar,
	"points":        KindScatter,
	"markers":       KindScatter,
	"lines":         KindLine,
	"boxplot":       KindBox,
}

// ParseChartKind resolves a kind name case-insensitively.
// Dashes and spaces are treated as underscores.
func ParseChartKind(name string) (ChartKind, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	folded = strings.NewReplacer("-", "_", " ", "_").Replace(folded)
	for _, k := range ChartKinds {
		if string(k) == folded {
			return k, nil
		}
	}
	if k, ok := kindAliases[strings.ReplaceAll(folded, "_", "")]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChartKind, name)
}

// Requirement lists the channels a chart kind needs and accepts.
type Requirement struct {
	Required []Channel
	Optional []Channel
	Named    bool
}

var requirements = map[ChartKind]Requirement{
	KindScatter:       {Required: []Channel{ChannelX, ChannelY}, Optional: []Channel{ChannelColor, ChannelSize}, Named: true},
	KindLine:          {Required: []Channel{ChannelX, ChannelY}, Optional: []Channel{ChannelColor, ChannelSize}, Named: true},
	KindBar:           {Required: []Channel{ChannelX, ChannelY}, Optional: []Channel{ChannelColor}, Named: true},
	KindHorizontalBar: {Required: []Channel{ChannelX, ChannelY}, Optional: []Channel{ChannelColor}, Named: true},
	KindPie:           {Required: []Channel{ChannelX}, Optional: []Channel{ChannelColor}, Named: true},
	KindBox:           {Required: []Channel{ChannelX}, Optional: []Channel{ChannelColor}, Named: true},
	KindHeatmap:       {Required: []Channel{ChannelZ}, Optional: []Channel{ChannelColor}, Named: true},
}

// Requirements returns the channel rules of a chart kind.
func Requirements(kind ChartKind) (Requirement, bool) {
	r, ok := requirements[kind]
	return r, ok
}

// Chart is a validated, kind-specific selection of channels.
// The set of implementations is closed; use the NewXxx constructors.
type Chart interface {
	Kind() ChartKind
	Name() (string, bool)
	chart()
}

type planar struct {
	x Series
	y Series
}

func (p planar) X() Series { return p.x }
func (p planar) Y() Series { return p.y }

type axis struct {
	x Series
}

func (a axis) X() Series { return a.x }

type colored struct {
	color Series
}

func (c colored) Color() (Series, bool) { return c.color, !c.color.IsEmpty() }

type sized struct {
	size Series
}

func (s sized) Size() (Series, bool) { return s.size, !s.size.IsEmpty() }

type named struct {
	name string
}

func (n named) Name() (string, bool) { return n.name, n.name != "" }

func (named) chart() {}

// Scatter plots points at (x, y).
type Scatter struct {
	planar
	colored
	sized
	named
}

// Kind returns KindScatter.
func (Scatter) Kind() ChartKind { return KindScatter }

// Line connects (x, y) points in order.
type Line struct {
	planar
	colored
	sized
	named
}

// Kind returns KindLine.
func (Line) Kind() ChartKind { return KindLine }

// Bar draws vertical bars of height y at x.
type Bar struct {
	planar
	colored
	named
}

// Kind returns KindBar.
func (Bar) Kind() ChartKind { return KindBar }

// HorizontalBar draws horizontal bars.
type HorizontalBar struct {
	planar
	colored
	named
}

// Kind returns KindHorizontalBar.
func (HorizontalBar) Kind() ChartKind { return KindHorizontalBar }

// Pie draws slices from a single series.
type Pie struct {
	axis
	colored
	named
}

// Kind returns KindPie.
func (Pie) Kind() ChartKind { return KindPie }

// Box summarizes the distribution of a single series.
type Box struct {
	axis
	colored
	named
}

// Kind returns KindBox.
func (Box) Kind() ChartKind { return KindBox }

// Heatmap colors the cells of a matrix.
type Heatmap struct {
	z     Matrix
	color Matrix
	named
}

// Kind returns KindHeatmap.
func (Heatmap) Kind() ChartKind { return KindHeatmap }

// Z returns the value matrix.
func (h Heatmap) Z() Matrix { return h.z }

// Color returns the color matrix and whether it is present.
func (h Heatmap) Color() (Matrix, bool) { return h.color, !h.color.IsEmpty() }

// NewScatter builds a scatter chart; X and Y are required.
func NewScatter(l Layer) (Scatter, error) {
	p, err := requirePlanar(KindScatter, l)
	if err != nil {
		return Scatter{}, err
	}
	return Scatter{planar: p, colored: colored{l.color}, sized: sized{l.size}, named: named{l.name}}, nil
}

// NewLine builds a line chart; X and Y are required.
func NewLine(l Layer) (Line, error) {
	p, err := requirePlanar(KindLine, l)
	if err != nil {
		return Line{}, err
	}
	return Line{planar: p, colored: colored{l.color}, sized: sized{l.size}, named: named{l.name}}, nil
}

// NewBar builds a vertical bar chart; X and Y are required.
func NewBar(l Layer) (Bar, error) {
	p, err := requirePlanar(KindBar, l)
	if err != nil {
		return Bar{}, err
	}
	return Bar{planar: p, colored: colored{l.color}, named: named{l.name}}, nil
}

// NewHorizontalBar builds a horizontal bar chart; X and Y are required.
func NewHorizontalBar(l Layer) (HorizontalBar, error) {
	p, err := requirePlanar(KindHorizontalBar, l)
	if err != nil {
		return HorizontalBar{}, err
	}
	return HorizontalBar{planar: p, colored: colored{l.color}, named: named{l.name}}, nil
}

// NewPie builds a pie chart; only X is required.
func NewPie(l Layer) (Pie, error) {
	a, err := requireAxis(KindPie, l)
	if err != nil {
		return Pie{}, err
	}
	return Pie{axis: a, colored: colored{l.color}, named: named{l.name}}, nil
}

// NewBox builds a box chart; only X is required.
func NewBox(l Layer) (Box, error) {
	a, err := requireAxis(KindBox, l)
	if err != nil {
		return Box{}, err
	}
	return Box{axis: a, colored: colored{l.color}, named: named{l.name}}, nil
}

// NewHeatmap builds a heatmap; Z is required.
func NewHeatmap(l MatrixLayer) (Heatmap, error) {
	z, ok := l.GetZ()
	if !ok {
		return Heatmap{}, NewMissingDimensionError(KindHeatmap, ChannelZ)
	}
	return Heatmap{z: z, color: l.color, named: named{l.name}}, nil
}

// NewChart builds a chart of the given kind from a series layer.
// Heatmaps need a MatrixLayer and are rejected here.
func NewChart(kind ChartKind, l Layer) (Chart, error) {
	switch kind {
	case KindScatter:
		return asChart[Scatter](NewScatter(l))
	case KindLine:
		return asChart[Line](NewLine(l))
	case KindBar:
		return asChart[Bar](NewBar(l))
	case KindHorizontalBar:
		return asChart[HorizontalBar](NewHorizontalBar(l))
	case KindPie:
		return asChart[Pie](NewPie(l))
	case KindBox:
		return asChart[Box](NewBox(l))
	case KindHeatmap:
		return nil, fmt.Errorf("%s chart needs a matrix layer: %w", kind, NewMissingDimensionError(kind, ChannelZ))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChartKind, kind)
}

// Validate checks that every required channel of c is present.
// Charts returned by the constructors always pass; zero values do not.
func Validate(c Chart) error {
	switch v := c.(type) {
	case nil:
		return fmt.Errorf("%w: nil chart", ErrMissingDimension)
	case Heatmap:
		if v.z.IsEmpty() {
			return NewMissingDimensionError(KindHeatmap, ChannelZ)
		}
		return nil
	case Planar:
		if v.X().IsEmpty() {
			return NewMissingDimensionError(c.Kind(), ChannelX)
		}
		if v.Y().IsEmpty() {
			return NewMissingDimensionError(c.Kind(), ChannelY)
		}
		return nil
	case interface{ X() Series }:
		if v.X().IsEmpty() {
			return NewMissingDimensionError(c.Kind(), ChannelX)
		}
	}
	return nil
}

func asChart[C Chart](c C, err error) (Chart, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

func requirePlanar(kind ChartKind, l Layer) (planar, error) {
	x, ok := l.GetX()
	if !ok {
		return planar{}, NewMissingDimensionError(kind, ChannelX)
	}
	y, ok := l.GetY()
	if !ok {
		return planar{}, NewMissingDimensionError(kind, ChannelY)
	}
	return planar{x: x, y: y}, nil
}

func requireAxis(kind ChartKind, l Layer) (axis, error) {
	x, ok := l.GetX()
	if !ok {
		return axis{}, NewMissingDimensionError(kind, ChannelX)
	}
	return axis{x: x}, nil
}
