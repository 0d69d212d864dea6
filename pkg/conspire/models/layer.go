package models

// Layer binds normalized data to channels before it is tied to a chart kind.
// Layer is a value: every binding method returns an updated copy and leaves
// the receiver untouched. Binding a channel twice keeps the last value.
type Layer struct {
	x     Series
	y     Series
	color Series
	size  Series
	name  string
}

// NewLayer returns an empty layer.
func NewLayer() Layer {
	return Layer{}
}

// X binds the horizontal position channel.
func (l Layer) X(data SeriesSource) Layer {
	l.x = normalize(data)
	return l
}

// Y binds the vertical position channel.
func (l Layer) Y(data SeriesSource) Layer {
	l.y = normalize(data)
	return l
}

// Color binds the color channel.
func (l Layer) Color(data SeriesSource) Layer {
	l.color = normalize(data)
	return l
}

// Size binds the size channel.
func (l Layer) Size(data SeriesSource) Layer {
	l.size = normalize(data)
	return l
}

// Name sets the display name used for the legend.
func (l Layer) Name(name string) Layer {
	l.name = name
	return l
}

// GetX returns the X series and whether it is present.
func (l Layer) GetX() (Series, bool) {
	return l.x, !l.x.IsEmpty()
}

// GetY returns the Y series and whether it is present.
func (l Layer) GetY() (Series, bool) {
	return l.y, !l.y.IsEmpty()
}

// GetColor returns the color series and whether it is present.
func (l Layer) GetColor() (Series, bool) {
	return l.color, !l.color.IsEmpty()
}

// GetSize returns the size series and whether it is present.
func (l Layer) GetSize() (Series, bool) {
	return l.size, !l.size.IsEmpty()
}

// GetName returns the display name and whether one was set.
func (l Layer) GetName() (string, bool) {
	return l.name, l.name != ""
}

// Get returns the series bound to channel c.
func (l Layer) Get(c Channel) (Series, bool) {
	switch c {
	case ChannelX:
		return l.GetX()
	case ChannelY:
		return l.GetY()
	case ChannelColor:
		return l.GetColor()
	case ChannelSize:
		return l.GetSize()
	}
	return Series{}, false
}

// MatrixLayer binds matrix data for matrix-oriented charts such as heatmaps.
// It follows the same value semantics as Layer.
type MatrixLayer struct {
	z     Matrix
	color Matrix
	name  string
}

// NewMatrixLayer returns an empty matrix layer.
func NewMatrixLayer() MatrixLayer {
	return MatrixLayer{}
}

// Z binds the value matrix.
func (l MatrixLayer) Z(data MatrixSource) MatrixLayer {
	l.z = normalizeMatrix(data)
	return l
}

// Color binds the color matrix.
func (l MatrixLayer) Color(data MatrixSource) MatrixLayer {
	l.color = normalizeMatrix(data)
	return l
}

// Name sets the display name used for the legend.
func (l MatrixLayer) Name(name string) MatrixLayer {
	l.name = name
	return l
}

// GetZ returns the value matrix and whether it is present.
func (l MatrixLayer) GetZ() (Matrix, bool) {
	return l.z, !l.z.IsEmpty()
}

// GetColor returns the color matrix and whether it is present.
func (l MatrixLayer) GetColor() (Matrix, bool) {
	return l.color, !l.color.IsEmpty()
}

// GetName returns the display name and whether one was set.
func (l MatrixLayer) GetName() (string, bool) {
	return l.name, l.name != ""
}

func normalize(data SeriesSource) Series {
	if data == nil {
		return Series{}
	}
	return data.Series()
}

func normalizeMatrix(data MatrixSource) Matrix {
	if data == nil {
		return Matrix{}
	}
	return data.Matrix()
}
