// Package theme resolves the app's color palette for a given brightness.
package theme

import "github.com/hanimtuba/medication-tracking/pkg/result"

// Brightness indicates whether a light or dark palette is in effect.
type Brightness int

const (
	// BrightnessLight selects the light palette.
	BrightnessLight Brightness = iota
	// BrightnessDark selects the dark palette.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ParseBrightness maps a config string to a Brightness. Unknown values
// fall back to light.
func ParseBrightness(s string) Brightness {
	if s == "dark" {
		return BrightnessDark
	}
	return BrightnessLight
}

// Color is a 32-bit ARGB color.
type Color uint32

// ColorScheme defines the color palette for one brightness.
type ColorScheme struct {
	Primary      Color
	Background   Color
	Surface      Color
	Error        Color
	OnPrimary    Color
	OnBackground Color
}

// Light returns the default light color scheme.
func Light() ColorScheme {
	return ColorScheme{
		Primary:      0xFF1565C0,
		Background:   0xFFFAFAFA,
		Surface:      0xFFFFFFFF,
		Error:        0xFFB00020,
		OnPrimary:    0xFFFFFFFF,
		OnBackground: 0xFF1C1B1F,
	}
}

// Dark returns the default dark color scheme.
func Dark() ColorScheme {
	return ColorScheme{
		Primary:      0xFF90CAF9,
		Background:   0xFF121212,
		Surface:      0xFF1E1E1E,
		Error:        0xFFCF6679,
		OnPrimary:    0xFF000000,
		OnBackground: 0xFFE6E1E5,
	}
}

// Resolve returns the scheme for the given brightness.
func Resolve(b Brightness) ColorScheme {
	if b == BrightnessDark {
		return Dark()
	}
	return Light()
}

// StatusColor maps a failure kind to the indicator color a page should use
// when rendering that failure.
func (c ColorScheme) StatusColor(kind result.Kind) Color {
	switch kind {
	case result.KindNetwork:
		return c.Primary
	case result.KindValidation:
		return c.OnBackground
	case result.KindServer, result.KindCache, result.KindUnexpected:
		return c.Error
	default:
		return c.Error
	}
}
