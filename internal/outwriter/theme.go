package outwriter

import "github.com/fatih/color"

// Theme holds the color palette for the text report. It is a stateless
// value owned by the reporter; disabling colors disables them per theme
// rather than process-wide.
type Theme struct {
	Header *color.Color
	Label  *color.Color
	Accent *color.Color
	Date   *color.Color
	Add    *color.Color
	Del    *color.Color
}

// NewTheme builds the report palette. With useColors false every color
// is disabled and the theme degrades to plain text.
func NewTheme(useColors bool) *Theme {
	t := &Theme{
		Header: color.New(color.FgCyan, color.Bold),
		Label:  color.New(color.FgBlue),
		Accent: color.New(color.FgYellow),
		Date:   color.New(color.FgCyan),
		Add:    color.New(color.FgGreen),
		Del:    color.New(color.FgRed),
	}
	if !useColors {
		for _, c := range []*color.Color{t.Header, t.Label, t.Accent, t.Date, t.Add, t.Del} {
			c.DisableColor()
		}
	}
	return t
}
