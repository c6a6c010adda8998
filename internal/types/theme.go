package types

import (
	"encoding/json"
	"fmt"
)

// DefaultThemeColor is the palette entry every new resume starts with.
const DefaultThemeColor = ThemeColor("#3357FF")

// ThemeColorPalette is the fixed set of selectable theme colors.
var ThemeColorPalette = []ThemeColor{
	"#3357FF", "#1f2937", "#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6",
}

// ThemeColor is a resume accent color. Stored documents may carry it as
// either a bare color string or a nested object with a "color" field;
// both forms are accepted on read and normalized to the bare string form,
// which is the only form ever written.
type ThemeColor string

// IsPaletteColor reports whether c is one of the palette entries.
func (c ThemeColor) IsPaletteColor() bool {
	for _, p := range ThemeColorPalette {
		if c == p {
			return true
		}
	}
	return false
}

// Normalize returns the color itself, or the default when empty.
func (c ThemeColor) Normalize() ThemeColor {
	if c == "" {
		return DefaultThemeColor
	}
	return c
}

// MarshalJSON always writes the bare string form.
func (c ThemeColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c.Normalize()))
}

// UnmarshalJSON accepts "#3357FF", {"color": "#3357FF"}, or null.
func (c *ThemeColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ThemeColor(s).Normalize()
		return nil
	}

	var wrapped struct {
		Color string `json:"color"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*c = ThemeColor(wrapped.Color).Normalize()
		return nil
	}

	if string(data) == "null" {
		*c = DefaultThemeColor
		return nil
	}

	return fmt.Errorf("theme color must be a string or an object with a color field")
}
