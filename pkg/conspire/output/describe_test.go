package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	d := Description{
		Backend: "plotly",
		Display: true,
		Charts: []ChartDescription{
			{Index: 0, Kind: "scatter", Channels: map[string]any{"X": 3, "Y": 3}},
		},
	}

	t.Run("Should produce compact JSON", func(t *testing.T) {
		data, err := ToJSON(d, false)
		require.NoError(t, err)
		assert.JSONEq(t, `{"backend":"plotly","display":true,"charts":[{"index":0,"kind":"scatter","channels":{"X":3,"Y":3}}]}`, string(data))
		assert.NotContains(t, string(data), "\n")
	})

	t.Run("Should indent when pretty", func(t *testing.T) {
		data, err := ToJSON(d, true)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"backend\": \"plotly\"")
	})

	t.Run("Should emit an empty chart list", func(t *testing.T) {
		data, err := ToJSON(Description{Backend: "plotly"}, false)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, []any{}, decoded["charts"])
	})
}
