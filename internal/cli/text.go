package cli

// TextFormatter formats results as human-readable text with optional color.
type TextFormatter struct {
	styles   Styles
	useColor bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, useColor bool) *TextFormatter {
	return &TextFormatter{
		styles:   styles,
		useColor: useColor,
	}
}

func (f *TextFormatter) Format(buf []byte, r Result, showInput bool) []byte {
	if showInput {
		if f.useColor {
			buf = append(buf, f.styles.Kind.Render(r.Input)...)
			buf = append(buf, f.styles.Kind.Render(":")...)
			buf = append(buf, ' ')
		} else {
			buf = append(buf, r.Input...)
			buf = append(buf, ':', ' ')
		}
	}

	if f.useColor && r.Truncated {
		buf = append(buf, f.styles.Marker.Render(r.Text)...)
	} else if f.useColor {
		buf = append(buf, f.styles.Value.Render(r.Text)...)
	} else {
		buf = append(buf, r.Text...)
	}

	buf = append(buf, '\n')
	return buf
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
