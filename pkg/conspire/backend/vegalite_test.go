package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

func decodeSpec(t *testing.T, charts ...models.Chart) map[string]any {
	t.Helper()
	raw, err := NewVegaLite().Spec(charts)
	require.NoError(t, err)
	var spec map[string]any
	require.NoError(t, json.Unmarshal(raw, &spec))
	return spec
}

func TestVegaLite_LayersInOrder(t *testing.T) {
	l := models.NewLayer().X(models.Floats{1, 2, 3}).Y(models.Floats{4, 5, 6})
	spec := decodeSpec(t,
		mustChart(t, models.KindScatter, l),
		mustChart(t, models.KindLine, l.Name("second")),
	)

	assert.Equal(t, VegaLiteSchema, spec["$schema"])
	layers := spec["layer"].([]any)
	require.Len(t, layers, 2)

	first := layers[0].(map[string]any)
	assert.Equal(t, "point", first["mark"].(map[string]any)["type"])
	values := first["data"].(map[string]any)["values"].([]any)
	require.Len(t, values, 3)
	assert.Equal(t, map[string]any{"x": 1.0, "y": 4.0}, values[0])

	second := layers[1].(map[string]any)
	assert.Equal(t, "line", second["mark"].(map[string]any)["type"])
	assert.Equal(t, "second", second["name"])
}

func TestVegaLite_Decoration(t *testing.T) {
	t.Run("Should turn a single color into a constant mark property", func(t *testing.T) {
		l := models.NewLayer().X(models.Floats{1, 2}).Y(models.Floats{3, 4}).Color(models.Text("blue"))
		spec := decodeSpec(t, mustChart(t, models.KindLine, l))
		layer := spec["layer"].([]any)[0].(map[string]any)

		assert.Equal(t, "blue", layer["mark"].(map[string]any)["color"])
		assert.NotContains(t, layer["encoding"].(map[string]any), "color")
	})

	t.Run("Should encode a color series as a field", func(t *testing.T) {
		l := models.NewLayer().X(models.Floats{1, 2}).Y(models.Floats{3, 4}).Color(models.Ints{7, 8})
		spec := decodeSpec(t, mustChart(t, models.KindScatter, l))
		layer := spec["layer"].([]any)[0].(map[string]any)

		enc := layer["encoding"].(map[string]any)
		assert.Equal(t, map[string]any{"field": "color", "type": "quantitative"}, enc["color"])
		values := layer["data"].(map[string]any)["values"].([]any)
		assert.Equal(t, 8.0, values[1].(map[string]any)["color"])
	})
}

func TestVegaLite_Pie(t *testing.T) {
	spec := decodeSpec(t, mustChart(t, models.KindPie, models.NewLayer().X(models.Strings{"a", "b", "a"})))
	layer := spec["layer"].([]any)[0].(map[string]any)
	enc := layer["encoding"].(map[string]any)

	assert.Equal(t, map[string]any{"aggregate": "count"}, enc["theta"])
	assert.Equal(t, map[string]any{"field": "x", "type": "nominal"}, enc["color"])
}

func TestVegaLite_HeatmapUnsupported(t *testing.T) {
	h, err := models.NewHeatmap(models.NewMatrixLayer().Z(models.Grid[int]{{1}}))
	require.NoError(t, err)
	l := models.NewLayer().X(models.Floats{1, 2}).Y(models.Floats{3, 4})

	a, err := NewVegaLite().Render([]models.Chart{mustChart(t, models.KindScatter, l), h}, false)
	assert.Nil(t, a)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, VegaLite, renderErr.Backend)
	assert.Equal(t, 1, renderErr.Index)
	assert.Equal(t, models.KindHeatmap, renderErr.Kind)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestVegaLite_Render(t *testing.T) {
	l := models.NewLayer().X(models.Floats{1}).Y(models.Floats{2})
	a, err := NewVegaLite().Render([]models.Chart{mustChart(t, models.KindBar, l)}, false)
	require.NoError(t, err)

	assert.Equal(t, VegaLite, a.Backend)
	assert.Contains(t, a.String(), `<div id="vis"></div>`)
	assert.Contains(t, a.String(), "vegaEmbed('#vis', {")
}
