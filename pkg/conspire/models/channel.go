package models

// Channel identifies a visual binding slot on a layer or chart.
type Channel int

const (
	// ChannelX is the horizontal position channel.
	ChannelX Channel = iota
	// ChannelY is the vertical position channel.
	ChannelY
	// ChannelColor is the color channel.
	ChannelColor
	// ChannelSize is the marker size channel.
	ChannelSize
	// ChannelZ is the matrix value channel used by heatmaps.
	ChannelZ
)

// String returns the channel name as used in error messages.
func (c Channel) String() string {
	switch c {
	case ChannelX:
		return "X"
	case ChannelY:
		return "Y"
	case ChannelColor:
		return "color"
	case ChannelSize:
		return "size"
	case ChannelZ:
		return "Z"
	default:
		return "unknown"
	}
}

// Planar is implemented by charts positioned on both axes.
type Planar interface {
	X() Series
	Y() Series
}

// Colored is implemented by charts that accept a color series.
type Colored interface {
	Color() (Series, bool)
}

// Sized is implemented by charts that accept a size series.
type Sized interface {
	Size() (Series, bool)
}
