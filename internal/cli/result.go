package cli

// Result holds one rendered value.
type Result struct {
	Kind  Kind   // what the input was rendered as
	Input string // the raw input token
	Text  string // rendered text
	// Truncated is set when the rendering was cut to fit its budget,
	// either with an ellipsis or with the truncation marker.
	Truncated bool
}
