package nodes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// themeFile is the on-disk theme layout. Both tables are optional; any
// key left out keeps its default value.
type themeFile struct {
	Colors map[string]string  `toml:"colors"`
	Layout map[string]float64 `toml:"layout"`
}

// LoadTheme reads a TOML theme file and returns the default style with the
// file's overrides applied.
func LoadTheme(path string) (Style, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Style{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	return applyTheme(tf)
}

// ParseTheme decodes TOML theme data and returns the default style with the
// overrides applied.
func ParseTheme(data []byte) (Style, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return Style{}, fmt.Errorf("parse theme: %w", err)
	}
	return applyTheme(tf)
}

func applyTheme(tf themeFile) (Style, error) {
	style := DefaultStyle()

	for name, value := range tf.Colors {
		role, ok := colorRoles[name]
		if !ok {
			return Style{}, fmt.Errorf("parse theme: unknown color role %q", name)
		}
		c, err := parseHexColor(value)
		if err != nil {
			return Style{}, fmt.Errorf("parse theme: color %q: %w", name, err)
		}
		style.Colors[role] = c
	}

	for name, value := range tf.Layout {
		field, ok := layoutFields[name]
		if !ok {
			return Style{}, fmt.Errorf("parse theme: unknown layout value %q", name)
		}
		*field(&style) = value
	}

	return style, nil
}

var colorRoles = map[string]ColorRole{
	"node-background":          ColorNodeBackground,
	"node-background-hovered":  ColorNodeBackgroundHovered,
	"node-background-selected": ColorNodeBackgroundSelected,
	"node-header":              ColorNodeHeader,
	"node-header-hovered":      ColorNodeHeaderHovered,
	"node-header-selected":     ColorNodeHeaderSelected,
	"link":                     ColorLink,
	"link-hovered":             ColorLinkHovered,
	"link-selected":            ColorLinkSelected,
	"pin":                      ColorPin,
	"pin-hovered":              ColorPinHovered,
	"box-selector":             ColorBoxSelector,
	"box-selector-outline":     ColorBoxSelectorOutline,
	"grid-background":          ColorGridBackground,
	"grid-line":                ColorGridLine,
}

var layoutFields = map[string]func(*Style) *float64{
	"grid-spacing":             func(s *Style) *float64 { return &s.GridSpacing },
	"node-corner-rounding":     func(s *Style) *float64 { return &s.NodeCornerRounding },
	"node-padding-horizontal":  func(s *Style) *float64 { return &s.NodePaddingH },
	"node-padding-vertical":    func(s *Style) *float64 { return &s.NodePaddingV },
	"node-border-thickness":    func(s *Style) *float64 { return &s.NodeBorderThickness },
	"link-thickness":           func(s *Style) *float64 { return &s.LinkThickness },
	"link-segments-per-length": func(s *Style) *float64 { return &s.LinkSegmentsPerLength },
	"link-hover-distance":      func(s *Style) *float64 { return &s.LinkHoverDistance },
	"pin-circle-radius":        func(s *Style) *float64 { return &s.PinCircleRadius },
	"pin-quad-side-length":     func(s *Style) *float64 { return &s.PinQuadSideLength },
	"pin-triangle-side-length": func(s *Style) *float64 { return &s.PinTriangleSideLength },
	"pin-line-thickness":       func(s *Style) *float64 { return &s.PinLineThickness },
	"pin-hover-radius":         func(s *Style) *float64 { return &s.PinHoverRadius },
	"pin-hover-shape-radius":   func(s *Style) *float64 { return &s.PinHoverShapeRadius },
	"pin-offset":               func(s *Style) *float64 { return &s.PinOffset },
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa".
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	if len(hex) == 6 {
		return color.NRGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
