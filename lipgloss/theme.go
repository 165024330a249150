// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/noahmasoud/autodoc"

// Compile-time interface verification.
var _ autodoc.Theme = (*Theme)(nil)

// Theme implements autodoc.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  autodoc.Styles
	palette autodoc.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() autodoc.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() autodoc.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ByName returns the theme for a config value, defaulting to dark.
func ByName(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Backgrounds are kept very dark so syntax colors stay readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: autodoc.Styles{
			Added: autodoc.ColorPair{
				Foreground: "#a6e3a1",
				Background: "#004000",
			},
			Removed: autodoc.ColorPair{
				Foreground: "#f38ba8",
				Background: "#3f0001",
			},
			Modified: autodoc.ColorPair{
				Foreground: "#f9e2af",
				Background: "#3a3000",
			},
			Unchanged: autodoc.ColorPair{
				Foreground: "#6c7086",
			},
			Header: autodoc.ColorPair{
				Foreground: "#89b4fa",
			},
			LineNumber: autodoc.ColorPair{
				Foreground: "#6c7086",
			},
			Notice: autodoc.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#89b4fa",
			},
			StatusBadge: autodoc.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f9e2af",
			},
			AddedHighlight: autodoc.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#a6e3a1",
			},
			RemovedHighlight: autodoc.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f38ba8",
			},
		},
		palette: autodoc.Palette{
			// Catppuccin Mocha
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Added:    "#a6e3a1",
			Removed:  "#f38ba8",
			Modified: "#f9e2af",
			Context:  "#6c7086",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: autodoc.Styles{
			Added: autodoc.ColorPair{
				Foreground: "#40a02b",
				Background: "#d4f4d4",
			},
			Removed: autodoc.ColorPair{
				Foreground: "#d20f39",
				Background: "#f4d4d4",
			},
			Modified: autodoc.ColorPair{
				Foreground: "#df8e1d",
				Background: "#f4ecd4",
			},
			Unchanged: autodoc.ColorPair{
				Foreground: "#9ca0b0",
			},
			Header: autodoc.ColorPair{
				Foreground: "#1e66f5",
			},
			LineNumber: autodoc.ColorPair{
				Foreground: "#9ca0b0",
			},
			Notice: autodoc.ColorPair{
				Foreground: "#eff1f5",
				Background: "#1e66f5",
			},
			StatusBadge: autodoc.ColorPair{
				Foreground: "#eff1f5",
				Background: "#df8e1d",
			},
			AddedHighlight: autodoc.ColorPair{
				Foreground: "#ffffff",
				Background: "#40a02b",
			},
			RemovedHighlight: autodoc.ColorPair{
				Foreground: "#ffffff",
				Background: "#d20f39",
			},
		},
		palette: autodoc.Palette{
			// Catppuccin Latte
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Added:    "#40a02b",
			Removed:  "#d20f39",
			Modified: "#df8e1d",
			Context:  "#9ca0b0",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",

			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#1e66f5",
		},
	}
}
