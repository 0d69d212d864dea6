package chartfile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/conspire-go/internal/logger"
	"github.com/ukaji3/conspire-go/pkg/conspire"
	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
	"github.com/ukaji3/conspire-go/pkg/conspire/models"
	"github.com/ukaji3/conspire-go/pkg/conspire/workbook"
)

// ErrSourceUnsupported indicates a workbook source on a chart kind that
// cannot read one.
var ErrSourceUnsupported = errors.New("workbook source not supported")

// Builder converts the document into a plot builder. Workbooks named by
// sources are opened once and closed before returning.
func (f *File) Builder(ctx context.Context) (conspire.PlotBuilder, error) {
	log := logger.FromContext(ctx)

	id := conspire.DefaultBackend
	if f.Backend != "" {
		parsed, err := backend.ParseID(f.Backend)
		if err != nil {
			return conspire.PlotBuilder{}, err
		}
		id = parsed
	}

	books := &bookCache{dir: f.dir, open: make(map[string]*workbook.Workbook)}
	defer books.close()

	b := conspire.NewPlotBuilder(id).Display(f.Display)
	for i, entry := range f.Charts {
		c, err := entry.build(books)
		if err != nil {
			return conspire.PlotBuilder{}, NewChartError(i, entry.Kind, err)
		}
		log.Debug("chart loaded", "index", i, "kind", c.Kind())
		b = b.Add(c)
	}
	return b, nil
}

func (c Chart) build(books *bookCache) (models.Chart, error) {
	kind, err := models.ParseChartKind(c.Kind)
	if err != nil {
		return nil, err
	}
	if kind == models.KindHeatmap {
		return c.heatmap()
	}

	l := models.NewLayer()
	if c.Source != nil {
		l, err = c.Source.layer(books)
		if err != nil {
			return nil, err
		}
	}

	inline := []struct {
		channel models.Channel
		value   any
		set     func(models.Layer, models.SeriesSource) models.Layer
	}{
		{models.ChannelX, c.X, models.Layer.X},
		{models.ChannelY, c.Y, models.Layer.Y},
		{models.ChannelColor, c.Color, models.Layer.Color},
		{models.ChannelSize, c.Size, models.Layer.Size},
	}
	for _, in := range inline {
		if in.value == nil {
			continue
		}
		s, err := models.Normalize(in.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in.channel, err)
		}
		l = in.set(l, s)
	}
	if c.Name != "" {
		l = l.Name(c.Name)
	}
	return models.NewChart(kind, l)
}

func (c Chart) heatmap() (models.Chart, error) {
	if c.Source != nil {
		return nil, fmt.Errorf("%w for %s charts", ErrSourceUnsupported, models.KindHeatmap)
	}
	z, err := models.NormalizeMatrix(c.Z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ChannelZ, err)
	}
	color, err := models.NormalizeMatrix(c.Color)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ChannelColor, err)
	}
	l := models.NewMatrixLayer().Z(z).Color(color)
	if c.Name != "" {
		l = l.Name(c.Name)
	}
	return models.NewHeatmap(l)
}

func (s *Source) layer(books *bookCache) (models.Layer, error) {
	wb, err := books.get(s.Workbook)
	if err != nil {
		return models.Layer{}, err
	}
	return wb.LayerFromSheet(s.Sheet, workbook.Mapping{
		X:     s.X,
		Y:     s.Y,
		Color: s.Color,
		Size:  s.Size,
	})
}

type bookCache struct {
	dir  string
	open map[string]*workbook.Workbook
}

func (c *bookCache) get(path string) (*workbook.Workbook, error) {
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	if wb, ok := c.open[path]; ok {
		return wb, nil
	}
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	c.open[path] = wb
	return wb, nil
}

func (c *bookCache) close() {
	for _, wb := range c.open {
		wb.Close()
	}
}
