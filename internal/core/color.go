package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color. The zero value means "terminal default" and is
// never produced by RGB or ParseColor.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether c is the zero "use the default" color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil //#nosec G115 -- masked by uint8 conversion
}

// Colors used for HUD elements that are not configurable.
var (
	ColorHUD    = RGB(30, 30, 30)
	ColorButton = RGB(0, 135, 0)
	ColorLabel  = RGB(255, 255, 255)
	ColorShip   = RGB(40, 90, 200)
	ColorEnemy  = RGB(60, 160, 60)
	ColorBonus  = RGB(220, 40, 60)
)
