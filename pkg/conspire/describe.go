package conspire

import (
	"github.com/ukaji3/conspire-go/pkg/conspire/models"
	"github.com/ukaji3/conspire-go/pkg/conspire/output"
)

// Describe returns a JSON-ready view of the assembly.
func (ps *PlotSystem) Describe() output.Description {
	d := output.Description{
		Backend: ps.backend.String(),
		Display: ps.display,
		Charts:  make([]output.ChartDescription, 0, len(ps.charts)),
	}
	for i, c := range ps.charts {
		cd := output.ChartDescription{
			Index:    i,
			Kind:     string(c.Kind()),
			Channels: channels(c),
		}
		if name, ok := c.Name(); ok {
			cd.Name = name
		}
		d.Charts = append(d.Charts, cd)
	}
	return d
}

func channels(c models.Chart) map[string]any {
	out := make(map[string]any)
	switch v := c.(type) {
	case models.Heatmap:
		out[models.ChannelZ.String()] = v.Z()
		if color, ok := v.Color(); ok {
			out[models.ChannelColor.String()] = color
		}
		return out
	case models.Planar:
		out[models.ChannelX.String()] = v.X()
		out[models.ChannelY.String()] = v.Y()
	case interface{ X() models.Series }:
		out[models.ChannelX.String()] = v.X()
	}
	if col, ok := c.(models.Colored); ok {
		if s, bound := col.Color(); bound {
			out[models.ChannelColor.String()] = s
		}
	}
	if sz, ok := c.(models.Sized); ok {
		if s, bound := sz.Size(); bound {
			out[models.ChannelSize.String()] = s
		}
	}
	return out
}
