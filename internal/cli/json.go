package cli

import (
	"encoding/json"
)

// JSONFormatter formats results as JSON Lines (one JSON object per value).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonValue is the JSON serialization format for a rendered value.
type jsonValue struct {
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	Input     string `json:"input,omitempty"`
	Text      string `json:"text"`
	Truncated bool   `json:"truncated,omitempty"`
}

func (f *JSONFormatter) Format(buf []byte, r Result, showInput bool) []byte {
	jv := jsonValue{
		Type:      "value",
		Kind:      r.Kind.String(),
		Text:      r.Text,
		Truncated: r.Truncated,
	}
	if showInput {
		jv.Input = r.Input
	}
	data, _ := json.Marshal(jv)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
