package css

import (
	"math"
	"strings"
)

// Shadow describes text shadow geometry in logical units. Angle and Distance
// define the offset vector, Flip negates the vertical component to correct
// the known shadow inversion in one browser engine family.
type Shadow struct {
	Angle    float64 // radians
	Distance float64
	Blur     float64
	Color    string // normalized textual color
	Alpha    float64 // 0..1
	Flip     bool
}

// Offset resolves the shadow offset vector. Components are rounded before
// any scaling is applied.
func (sh Shadow) Offset() (x, y float64) {
	x = math.Round(math.Cos(sh.Angle) * sh.Distance)
	y = math.Round(math.Sin(sh.Angle) * sh.Distance)
	if sh.Flip {
		y = -y
	}
	return x, y
}

// Declaration emits a single text-shadow value at the requested scale. Blur
// clause is present only when blur is set, alpha below 1 is folded into hex
// colors as a trailing hex byte.
func (sh Shadow) Declaration(scale float64) string {
	x, y := sh.Offset()
	color := WithAlpha(sh.Color, sh.Alpha)

	var b strings.Builder
	b.WriteString(Px(x * scale))
	b.WriteByte(' ')
	b.WriteString(Px(y * scale))
	b.WriteByte(' ')
	if sh.Blur > 0 {
		b.WriteString(Px(sh.Blur * scale))
		b.WriteByte(' ')
	}
	b.WriteString(color)
	return b.String()
}
