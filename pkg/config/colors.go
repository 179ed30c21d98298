package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// colorNames maps the sixteen named terminal colors to their ANSI
// indices. The dark variants are the classic low intensity colors.
var colorNames = map[string]lipgloss.Color{
	"black":        lipgloss.Color("0"),
	"dark-red":     lipgloss.Color("1"),
	"dark-green":   lipgloss.Color("2"),
	"dark-yellow":  lipgloss.Color("3"),
	"dark-blue":    lipgloss.Color("4"),
	"dark-magenta": lipgloss.Color("5"),
	"dark-cyan":    lipgloss.Color("6"),
	"grey":         lipgloss.Color("7"),
	"dark-grey":    lipgloss.Color("8"),
	"red":          lipgloss.Color("9"),
	"green":        lipgloss.Color("10"),
	"yellow":       lipgloss.Color("11"),
	"blue":         lipgloss.Color("12"),
	"magenta":      lipgloss.Color("13"),
	"cyan":         lipgloss.Color("14"),
	"white":        lipgloss.Color("15"),
}

// ParseColor resolves a color name. The name "none" reports nil, the
// unset channel that renders as the terminal default.
func ParseColor(name string) (lipgloss.TerminalColor, error) {
	if name == "none" {
		return nil, nil
	}
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	return nil, &ErrUnknown{What: "color", Name: name}
}

// RGB builds a true color from 8 bit channels.
func RGB(r, g, b int32) (lipgloss.TerminalColor, error) {
	for _, ch := range [...]int32{r, g, b} {
		if ch < 0 || ch > 255 {
			return nil, &ErrChannel{Value: ch}
		}
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)), nil
}

// ColorString renders a color back to its configuration name.
func ColorString(c lipgloss.TerminalColor) string {
	switch c := c.(type) {
	case nil:
		return "none"
	case lipgloss.NoColor:
		return "none"
	case lipgloss.Color:
		for name, ansi := range colorNames {
			if ansi == c {
				return name
			}
		}
		return string(c)
	}
	return fmt.Sprint(c)
}
