package css

import (
	"fmt"
	"math"
)

// NormalizeColor converts accepted color representations to canonical textual
// form. Packed integers (0xRRGGBB) and 3- or 4-component sequences with
// channels in [0, 1] become hex strings, textual colors pass through
// unchanged. It is a total function - anything else is stringified as is.
func NormalizeColor(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case []float64:
		return componentsToHex(c)
	case []any:
		// YAML and similar decoders hand sequences over as []any.
		comps := make([]float64, 0, len(c))
		for _, e := range c {
			f, ok := asFloat(e)
			if !ok {
				return fmt.Sprint(v)
			}
			comps = append(comps, f)
		}
		return componentsToHex(comps)
	default:
		if n, ok := asPacked(v); ok {
			return fmt.Sprintf("#%06x", n&0xffffff)
		}
		return fmt.Sprint(v)
	}
}

// WithAlpha appends a two-digit hex alpha channel to a hex color when alpha
// is below 1. Non-hex colors are returned unchanged.
func WithAlpha(color string, alpha float64) string {
	if alpha >= 1 || len(color) == 0 || color[0] != '#' {
		return color
	}
	return fmt.Sprintf("%s%02x", color, clampByte(math.Round(alpha*255)))
}

func componentsToHex(comps []float64) string {
	switch len(comps) {
	case 3:
		return fmt.Sprintf("#%02x%02x%02x",
			clampByte(math.Round(comps[0]*255)),
			clampByte(math.Round(comps[1]*255)),
			clampByte(math.Round(comps[2]*255)))
	case 4:
		return fmt.Sprintf("#%02x%02x%02x%02x",
			clampByte(math.Round(comps[0]*255)),
			clampByte(math.Round(comps[1]*255)),
			clampByte(math.Round(comps[2]*255)),
			clampByte(math.Round(comps[3]*255)))
	default:
		return fmt.Sprint(comps)
	}
}

func asPacked(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		// whole numbers only - fractional values are not packed colors
		if n == math.Trunc(n) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
