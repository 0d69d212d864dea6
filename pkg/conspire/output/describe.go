package output

import "encoding/json"

// Description is a JSON view of an assembly.
type Description struct {
	Backend string             `json:"backend"`
	Display bool               `json:"display"`
	Charts  []ChartDescription `json:"charts"`
}

// ChartDescription lists the bound channels of one chart.
type ChartDescription struct {
	Index    int            `json:"index"`
	Kind     string         `json:"kind"`
	Name     string         `json:"name,omitempty"`
	Channels map[string]any `json:"channels"`
}

// ToJSON serializes a description.
func ToJSON(d Description, pretty bool) ([]byte, error) {
	if d.Charts == nil {
		d.Charts = []ChartDescription{}
	}
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}
