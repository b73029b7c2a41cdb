// Package htmltext compiles a structured text style into a deterministic
// CSS declaration string plus an auxiliary @font-face stylesheet, so a
// canvas-style rendering engine can delegate text layout and rasterization
// to the browser's own markup engine.
package htmltext

import (
	"slices"

	"go.uber.org/zap"

	"htstyle/fonts"
	"htstyle/style"
)

// Style is one configured set of text appearance properties together with
// the fonts, overrides and custom stylesheet it owns. Not safe for
// concurrent use - a style belongs to a single render loop.
type Style struct {
	style.TextStyle

	reg *fonts.Registry
	log *zap.Logger

	fonts      []*fonts.Resource
	overrides  []string
	stylesheet string
	flipShadow bool
}

// New creates a style with default properties acquiring fonts from reg.
// Nil log means no warnings are reported anywhere.
func New(reg *fonts.Registry, log *zap.Logger) *Style {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Style{reg: reg, log: log.Named("html-style")}
	s.Reset()
	return s
}

// Registry returns the font registry this style acquires resources from.
func (s *Style) Registry() *fonts.Registry {
	return s.reg
}

// Fonts returns resources currently owned by this style, in load order.
func (s *Style) Fonts() []*fonts.Resource {
	return slices.Clone(s.fonts)
}

// Stylesheet returns the user-supplied block of auxiliary rules.
func (s *Style) Stylesheet() string {
	return s.stylesheet
}

// SetStylesheet replaces the user-supplied block of auxiliary rules that is
// emitted verbatim ahead of the generated @font-face blocks.
func (s *Style) SetStylesheet(v string) {
	s.Mutate(func() bool {
		if s.stylesheet == v {
			return false
		}
		s.stylesheet = v
		return true
	})
}

// FlipShadow returns the platform shadow correction flag.
func (s *Style) FlipShadow() bool {
	return s.flipShadow
}

// SetFlipShadow toggles negation of the vertical shadow offset, working
// around the known shadow inversion in one browser engine family.
func (s *Style) SetFlipShadow(v bool) {
	s.Mutate(func() bool {
		if s.flipShadow == v {
			return false
		}
		s.flipShadow = v
		return true
	})
}

// AddOverride appends raw declarations not already present, preserving
// first-seen order. Overrides are emitted after all computed declarations,
// so they win ties under last-declaration-wins semantics.
func (s *Style) AddOverride(decls ...string) {
	s.Mutate(func() bool {
		changed := false
		for _, d := range decls {
			if !slices.Contains(s.overrides, d) {
				s.overrides = append(s.overrides, d)
				changed = true
			}
		}
		return changed
	})
}

// RemoveOverride removes previously added raw declarations.
func (s *Style) RemoveOverride(decls ...string) {
	s.Mutate(func() bool {
		before := len(s.overrides)
		s.overrides = slices.DeleteFunc(s.overrides, func(o string) bool {
			return slices.Contains(decls, o)
		})
		return len(s.overrides) != before
	})
}

// Overrides returns stored raw declarations in emission order.
func (s *Style) Overrides() []string {
	return slices.Clone(s.overrides)
}
