package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeChart(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

const lineDoc = `
charts:
  - kind: line
    x: [1, 2, 3]
    y: [3, 1, 2]
    name: trend
`

func TestBackendsCommand(t *testing.T) {
	out, err := execute(t, "backends")
	require.NoError(t, err)
	assert.Contains(t, out, "plotly\n")
	assert.Contains(t, out, "vegalite\n")
}

func TestRenderCommand(t *testing.T) {
	t.Run("Should write the artifact to the output path", func(t *testing.T) {
		chart := writeChart(t, lineDoc)
		target := filepath.Join(t.TempDir(), "plot.html")

		out, err := execute(t, "render", chart, "-o", target)
		require.NoError(t, err)
		assert.Equal(t, target, strings.TrimSpace(out))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "mode: 'lines'")
		assert.Contains(t, string(data), `name: "trend",`)
	})

	t.Run("Should honor the backend flag", func(t *testing.T) {
		chart := writeChart(t, lineDoc)
		target := filepath.Join(t.TempDir(), "plot.html")

		_, err := execute(t, "render", chart, "-o", target, "--backend", "vegalite")
		require.NoError(t, err)
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "vegaEmbed")
	})

	t.Run("Should fail on an invalid chart file", func(t *testing.T) {
		chart := writeChart(t, "charts: []\n")
		_, err := execute(t, "render", chart, "-o", filepath.Join(t.TempDir(), "plot.html"))
		assert.Error(t, err)
	})
}

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, "describe", writeChart(t, lineDoc))
	require.NoError(t, err)

	var d map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "plotly", d["backend"])
	charts := d["charts"].([]any)
	require.Len(t, charts, 1)
	assert.Equal(t, "line", charts[0].(map[string]any)["kind"])
}

func TestDemoPlot(t *testing.T) {
	ps, err := demoPlot(backend.Plotly)
	require.NoError(t, err)
	assert.Equal(t, 2, ps.Len())
	assert.True(t, ps.ShouldDisplay())

	a, err := ps.Render()
	require.NoError(t, err)
	doc := a.String()
	assert.Contains(t, doc, "size: 30.0,")
	assert.Contains(t, doc, `color: "blue",`)
	assert.Contains(t, doc, "let data = [trace0, trace1];")
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Sales")
	f.SetCellValue("Sheet1", "A2", 10)
	f.SetCellValue("Sheet1", "A3", 20)
	require.NoError(t, f.AddChart("Sheet1", "C1", &excelize.Chart{
		Type:   excelize.Line,
		Series: []excelize.ChartSeries{{Name: "Sheet1!$A$1", Values: "Sheet1!$A$2:$A$3"}},
	}))
	book := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(book))
	require.NoError(t, f.Close())

	target := filepath.Join(dir, "imported.html")
	_, err := execute(t, "import", book, "--sheet", "Sheet1", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: 'lines'")
	assert.Contains(t, string(data), `name: "Sales",`)
}
