package conspire

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

func scatter(t *testing.T, name string) models.Chart {
	t.Helper()
	c, err := models.NewScatter(models.NewLayer().X(models.Floats{1, 2}).Y(models.Floats{3, 4}).Name(name))
	require.NoError(t, err)
	return c
}

func TestPlotBuilder_Build(t *testing.T) {
	t.Run("Should fail on an empty assembly", func(t *testing.T) {
		ps, err := NewPlotBuilder(backend.Plotly).Build()
		assert.Nil(t, ps)
		assert.True(t, errors.Is(err, ErrEmptyAssembly))
	})

	t.Run("Should keep insertion order", func(t *testing.T) {
		ps, err := NewPlotBuilder(backend.Plotly).
			Add(scatter(t, "a")).
			Add(scatter(t, "b")).
			Add(scatter(t, "c")).
			Build()
		require.NoError(t, err)

		var names []string
		for _, c := range ps.Charts() {
			name, _ := c.Name()
			names = append(names, name)
		}
		assert.Equal(t, []string{"a", "b", "c"}, names)
		assert.Equal(t, 3, ps.Len())
	})

	t.Run("Should reject nil and zero-value charts", func(t *testing.T) {
		_, err := NewPlotBuilder(backend.Plotly).Add(nil).Build()
		assert.True(t, errors.Is(err, ErrNilChart))

		_, err = NewPlotBuilder(backend.Plotly).Add(models.Scatter{}).Build()
		assert.True(t, errors.Is(err, models.ErrMissingDimension))
	})

	t.Run("Should default the backend", func(t *testing.T) {
		ps, err := PlotBuilder{}.Add(scatter(t, "")).Build()
		require.NoError(t, err)
		assert.Equal(t, backend.Plotly, ps.BackendID())
	})
}

func TestPlotBuilder_Independence(t *testing.T) {
	base := NewPlotBuilder(backend.Plotly).Add(scatter(t, "base"))
	left := base.Add(scatter(t, "left"))
	right := base.Add(scatter(t, "right")).Display(true)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, left.Len())

	lps, err := left.Build()
	require.NoError(t, err)
	rps, err := right.Build()
	require.NoError(t, err)

	lname, _ := lps.Charts()[1].Name()
	rname, _ := rps.Charts()[1].Name()
	assert.Equal(t, "left", lname)
	assert.Equal(t, "right", rname)
	assert.False(t, lps.ShouldDisplay())
	assert.True(t, rps.ShouldDisplay())
}

func TestPlotSystem_ChartsIsACopy(t *testing.T) {
	ps, err := NewPlotBuilder(backend.Plotly).Add(scatter(t, "keep")).Build()
	require.NoError(t, err)

	charts := ps.Charts()
	charts[0] = scatter(t, "changed")

	name, _ := ps.Charts()[0].Name()
	assert.Equal(t, "keep", name)
}

func TestPlotSystem_Render(t *testing.T) {
	t.Run("Should render a scatter then a line", func(t *testing.T) {
		l := models.NewLayer().X(models.Floats{1, 2}).Y(models.Floats{3, 4})
		sc, err := models.NewScatter(l)
		require.NoError(t, err)
		ln, err := models.NewLine(l)
		require.NoError(t, err)

		ps, err := NewPlotBuilder(backend.Plotly).Add(sc).Add(ln).Build()
		require.NoError(t, err)

		a, err := ps.Render()
		require.NoError(t, err)
		doc := a.String()
		assert.Contains(t, doc, "let data = [trace0, trace1];")
		assert.Less(t, strings.Index(doc, "mode: 'markers'"), strings.Index(doc, "mode: 'lines'"))
	})

	t.Run("Should wrap an unknown backend in a RenderError", func(t *testing.T) {
		ps, err := NewPlotBuilder("gnuplot").Add(scatter(t, "")).Build()
		require.NoError(t, err)

		_, err = ps.Render()
		var renderErr *backend.RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, -1, renderErr.Index)
		assert.ErrorIs(t, err, backend.ErrUnknownBackend)
	})

	t.Run("Should switch backends", func(t *testing.T) {
		ps, err := NewPlotBuilder(backend.Plotly).Backend(backend.VegaLite).Add(scatter(t, "")).Build()
		require.NoError(t, err)
		a, err := ps.Render()
		require.NoError(t, err)
		assert.Equal(t, backend.VegaLite, a.Backend)
	})
}

func TestPlotSystem_Describe(t *testing.T) {
	pie, err := models.NewPie(models.NewLayer().X(models.Strings{"a", "b"}).Color(models.Strings{"red", "blue"}))
	require.NoError(t, err)
	heat, err := models.NewHeatmap(models.NewMatrixLayer().Z(models.Grid[int]{{1}}))
	require.NoError(t, err)

	ps, err := NewPlotBuilder(backend.Plotly).Add(scatter(t, "pts")).Add(pie).Add(heat).Display(true).Build()
	require.NoError(t, err)

	d := ps.Describe()
	assert.Equal(t, "plotly", d.Backend)
	assert.True(t, d.Display)
	require.Len(t, d.Charts, 3)

	assert.Equal(t, "scatter", d.Charts[0].Kind)
	assert.Equal(t, "pts", d.Charts[0].Name)
	assert.Contains(t, d.Charts[0].Channels, "X")
	assert.Contains(t, d.Charts[0].Channels, "Y")
	assert.NotContains(t, d.Charts[0].Channels, "color")

	assert.Contains(t, d.Charts[1].Channels, "color")
	assert.NotContains(t, d.Charts[1].Channels, "Y")

	assert.Equal(t, 2, d.Charts[2].Index)
	assert.Contains(t, d.Charts[2].Channels, "Z")
}
