package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is the AttributeValue variant for the SVG <color> type: an sRGB
// triple, grounded on original_source/src/types/color.rs.
type Color struct {
	R, G, B uint8
}

func (Color) Kind() Kind { return KindColor }

func (c Color) IsDefault() bool { return false }

func (c Color) Equal(other Value) bool {
	mustSameKind(KindColor, other)
	o := other.(Color)
	return c == o
}

// String renders the color as a 6-digit hex triple; use FormatColor for
// the trim_hex_colors write option.
func (c Color) String() string { return FormatColor(c, false) }

// FormatColor renders c as "#rrggbb", or "#rgb" when trim is requested and
// the color is representable in short form - grounded on
// original_source/src/types/color.rs's WriteBuffer impl.
func FormatColor(c Color, trim bool) string {
	r1, r2 := hexDigits(c.R)
	g1, g2 := hexDigits(c.G)
	b1, b2 := hexDigits(c.B)
	if trim && r1 == r2 && g1 == g2 && b1 == b2 {
		return fmt.Sprintf("#%c%c%c", r1, g1, b1)
	}
	return fmt.Sprintf("#%c%c%c%c%c%c", r1, r2, g1, g2, b1, b2)
}

func hexDigits(n uint8) (byte, byte) {
	const chars = "0123456789abcdef"
	return chars[n>>4], chars[n&0xf]
}

var namedColors = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"navy":    {0, 0, 128},
	"olive":   {128, 128, 0},
	"lime":    {0, 255, 0},
	"teal":    {0, 128, 128},
	"aqua":    {0, 255, 255},
	"fuchsia": {255, 0, 255},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
	"transparent": {0, 0, 0},
}

// ParseColor parses an SVG <color>: "#rgb", "#rrggbb", "rgb(r,g,b)", or an
// SVG/CSS2 color keyword.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(strings.ToLower(s), "rgb("):
		return parseRGBFunc(s)
	default:
		if c, ok := namedColors[strings.ToLower(s)]; ok {
			return c, nil
		}
		return Color{}, fmt.Errorf("unrecognized color: %q", s)
	}
}

func parseHexColor(h string) (Color, error) {
	expand := func(c byte) uint8 {
		v, _ := strconv.ParseUint(string([]byte{c, c}), 16, 8)
		return uint8(v)
	}
	switch len(h) {
	case 3:
		return Color{R: expand(h[0]), G: expand(h[1]), B: expand(h[2])}, nil
	case 6:
		r, err := strconv.ParseUint(h[0:2], 16, 8)
		if err != nil {
			return Color{}, err
		}
		g, err := strconv.ParseUint(h[2:4], 16, 8)
		if err != nil {
			return Color{}, err
		}
		b, err := strconv.ParseUint(h[4:6], 16, 8)
		if err != nil {
			return Color{}, err
		}
		return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
	default:
		return Color{}, fmt.Errorf("invalid hex color: %q", h)
	}
}

func parseRGBFunc(s string) (Color, error) {
	open := strings.Index(s, "(")
	shut := strings.LastIndex(s, ")")
	if open < 0 || shut < open {
		return Color{}, fmt.Errorf("invalid rgb() color: %q", s)
	}
	inner := s[open+1 : shut]
	parts := splitListTokens(inner)
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid rgb() color: %q", s)
	}
	var vals [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasSuffix(p, "%") {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return Color{}, err
			}
			vals[i] = clampByte(pct * 255 / 100)
		} else {
			n, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return Color{}, err
			}
			vals[i] = clampByte(n)
		}
	}
	return Color{R: vals[0], G: vals[1], B: vals[2]}, nil
}

func clampByte(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
