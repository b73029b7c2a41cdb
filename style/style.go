// Package style keeps the base text style container: semantically typed
// visual properties at logical (unscaled) units plus a monotonically
// increasing version counter consumers use for cache invalidation.
//
// Capabilities the declarative output format cannot express (gradient fill
// stops and type, miter limit, baseline selection) are structurally absent
// from TextStyle - see the legacy adapter in the htmltext package.
package style

import (
	"math"
	"slices"

	"htstyle/css"
)

// DefaultFontFamily is the family stack a style starts with and returns to
// after its loaded fonts are released.
var DefaultFontFamily = []string{"Arial"}

// TextStyle holds text appearance properties. Every mutation goes through
// Mutate so that the version counter can never silently fall behind state.
// A zero TextStyle is not usable, call Reset or start from New.
type TextStyle struct {
	align              TextAlign
	breakWords         bool
	dropShadow         bool
	dropShadowAlpha    float64
	dropShadowAngle    float64
	dropShadowBlur     float64
	dropShadowColor    string
	dropShadowDistance float64
	fill               string
	fontFamily         []string
	fontSize           float64
	fontStyle          FontStyle
	fontVariant        FontVariant
	fontWeight         string
	letterSpacing      float64
	lineHeight         float64
	padding            float64
	stroke             string
	strokeThickness    float64
	whiteSpace         WhiteSpace
	wordWrap           bool
	wordWrapWidth      float64

	version uint64
	depth   int
	dirty   bool
}

// New returns a style with default property values.
func New() *TextStyle {
	s := &TextStyle{}
	s.Reset()
	return s
}

// Reset restores all properties to their defaults without touching the
// version counter history (single bump, as any other mutation).
func (s *TextStyle) Reset() {
	s.Mutate(func() bool {
		s.align = TextAlignLeft
		s.breakWords = false
		s.dropShadow = false
		s.dropShadowAlpha = 1
		s.dropShadowAngle = math.Pi / 6
		s.dropShadowBlur = 0
		s.dropShadowColor = "black"
		s.dropShadowDistance = 5
		s.fill = "black"
		s.fontFamily = slices.Clone(DefaultFontFamily)
		s.fontSize = 26
		s.fontStyle = FontStyleNormal
		s.fontVariant = FontVariantNormal
		s.fontWeight = "normal"
		s.letterSpacing = 0
		s.lineHeight = 0
		s.padding = 0
		s.stroke = "black"
		s.strokeThickness = 0
		s.whiteSpace = WhiteSpaceNormal
		s.wordWrap = false
		s.wordWrapWidth = 100
		return true
	})
}

// Version returns current value of the mutation counter. Any two compiler
// invocations that may produce different output are separated by at least
// one increment; read-only operations never change it.
func (s *TextStyle) Version() uint64 {
	return s.version
}

// Mutate is the single designated mutation funnel: apply performs the state
// change and reports whether anything observable actually changed, the
// version counter is bumped exactly when it did. Nested Mutate calls
// coalesce - a compound mutation costs one increment no matter how many
// setters it goes through.
func (s *TextStyle) Mutate(apply func() bool) {
	s.depth++
	changed := apply()
	s.depth--
	if changed {
		s.dirty = true
	}
	if s.depth == 0 && s.dirty {
		s.dirty = false
		s.version++
	}
}

func (s *TextStyle) Align() TextAlign { return s.align }
func (s *TextStyle) SetAlign(v TextAlign) {
	s.Mutate(func() bool {
		if s.align == v {
			return false
		}
		s.align = v
		return true
	})
}

func (s *TextStyle) BreakWords() bool { return s.breakWords }
func (s *TextStyle) SetBreakWords(v bool) {
	s.Mutate(func() bool {
		if s.breakWords == v {
			return false
		}
		s.breakWords = v
		return true
	})
}

func (s *TextStyle) DropShadow() bool { return s.dropShadow }
func (s *TextStyle) SetDropShadow(v bool) {
	s.Mutate(func() bool {
		if s.dropShadow == v {
			return false
		}
		s.dropShadow = v
		return true
	})
}

func (s *TextStyle) DropShadowAlpha() float64 { return s.dropShadowAlpha }
func (s *TextStyle) SetDropShadowAlpha(v float64) {
	s.Mutate(func() bool {
		if s.dropShadowAlpha == v {
			return false
		}
		s.dropShadowAlpha = v
		return true
	})
}

func (s *TextStyle) DropShadowAngle() float64 { return s.dropShadowAngle }
func (s *TextStyle) SetDropShadowAngle(v float64) {
	s.Mutate(func() bool {
		if s.dropShadowAngle == v {
			return false
		}
		s.dropShadowAngle = v
		return true
	})
}

func (s *TextStyle) DropShadowBlur() float64 { return s.dropShadowBlur }
func (s *TextStyle) SetDropShadowBlur(v float64) {
	s.Mutate(func() bool {
		if s.dropShadowBlur == v {
			return false
		}
		s.dropShadowBlur = v
		return true
	})
}

func (s *TextStyle) DropShadowColor() string { return s.dropShadowColor }

// SetDropShadowColor accepts packed numeric, component sequence or textual
// colors - the value is normalized on the way in.
func (s *TextStyle) SetDropShadowColor(v any) {
	c := css.NormalizeColor(v)
	s.Mutate(func() bool {
		if s.dropShadowColor == c {
			return false
		}
		s.dropShadowColor = c
		return true
	})
}

func (s *TextStyle) DropShadowDistance() float64 { return s.dropShadowDistance }
func (s *TextStyle) SetDropShadowDistance(v float64) {
	s.Mutate(func() bool {
		if s.dropShadowDistance == v {
			return false
		}
		s.dropShadowDistance = v
		return true
	})
}

func (s *TextStyle) Fill() string { return s.fill }

// SetFill accepts packed numeric, component sequence or textual colors -
// the value is normalized on the way in.
func (s *TextStyle) SetFill(v any) {
	c := css.NormalizeColor(v)
	s.Mutate(func() bool {
		if s.fill == c {
			return false
		}
		s.fill = c
		return true
	})
}

// FontFamily returns the current family stack. Callers must not modify the
// returned slice.
func (s *TextStyle) FontFamily() []string { return s.fontFamily }

func (s *TextStyle) SetFontFamily(families ...string) {
	s.Mutate(func() bool {
		if slices.Equal(s.fontFamily, families) {
			return false
		}
		s.fontFamily = slices.Clone(families)
		return true
	})
}

func (s *TextStyle) FontSize() float64 { return s.fontSize }
func (s *TextStyle) SetFontSize(v float64) {
	s.Mutate(func() bool {
		if s.fontSize == v {
			return false
		}
		s.fontSize = v
		return true
	})
}

func (s *TextStyle) FontStyle() FontStyle { return s.fontStyle }
func (s *TextStyle) SetFontStyle(v FontStyle) {
	s.Mutate(func() bool {
		if s.fontStyle == v {
			return false
		}
		s.fontStyle = v
		return true
	})
}

func (s *TextStyle) FontVariant() FontVariant { return s.fontVariant }
func (s *TextStyle) SetFontVariant(v FontVariant) {
	s.Mutate(func() bool {
		if s.fontVariant == v {
			return false
		}
		s.fontVariant = v
		return true
	})
}

func (s *TextStyle) FontWeight() string { return s.fontWeight }
func (s *TextStyle) SetFontWeight(v string) {
	s.Mutate(func() bool {
		if s.fontWeight == v {
			return false
		}
		s.fontWeight = v
		return true
	})
}

func (s *TextStyle) LetterSpacing() float64 { return s.letterSpacing }
func (s *TextStyle) SetLetterSpacing(v float64) {
	s.Mutate(func() bool {
		if s.letterSpacing == v {
			return false
		}
		s.letterSpacing = v
		return true
	})
}

func (s *TextStyle) LineHeight() float64 { return s.lineHeight }
func (s *TextStyle) SetLineHeight(v float64) {
	s.Mutate(func() bool {
		if s.lineHeight == v {
			return false
		}
		s.lineHeight = v
		return true
	})
}

func (s *TextStyle) Padding() float64 { return s.padding }
func (s *TextStyle) SetPadding(v float64) {
	s.Mutate(func() bool {
		if s.padding == v {
			return false
		}
		s.padding = v
		return true
	})
}

func (s *TextStyle) Stroke() string { return s.stroke }

// SetStroke accepts packed numeric, component sequence or textual colors -
// the value is normalized on the way in.
func (s *TextStyle) SetStroke(v any) {
	c := css.NormalizeColor(v)
	s.Mutate(func() bool {
		if s.stroke == c {
			return false
		}
		s.stroke = c
		return true
	})
}

func (s *TextStyle) StrokeThickness() float64 { return s.strokeThickness }
func (s *TextStyle) SetStrokeThickness(v float64) {
	s.Mutate(func() bool {
		if s.strokeThickness == v {
			return false
		}
		s.strokeThickness = v
		return true
	})
}

func (s *TextStyle) WhiteSpace() WhiteSpace { return s.whiteSpace }
func (s *TextStyle) SetWhiteSpace(v WhiteSpace) {
	s.Mutate(func() bool {
		if s.whiteSpace == v {
			return false
		}
		s.whiteSpace = v
		return true
	})
}

func (s *TextStyle) WordWrap() bool { return s.wordWrap }
func (s *TextStyle) SetWordWrap(v bool) {
	s.Mutate(func() bool {
		if s.wordWrap == v {
			return false
		}
		s.wordWrap = v
		return true
	})
}

func (s *TextStyle) WordWrapWidth() float64 { return s.wordWrapWidth }
func (s *TextStyle) SetWordWrapWidth(v float64) {
	s.Mutate(func() bool {
		if s.wordWrapWidth == v {
			return false
		}
		s.wordWrapWidth = v
		return true
	})
}
