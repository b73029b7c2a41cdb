package htmltext

import "go.uber.org/zap"

// The base style container historically carried a few capabilities the CSS
// output cannot express. The fields are structurally absent from
// style.TextStyle; these setters keep old call sites compiling - they warn
// and leave state untouched.

func (s *Style) SetFillGradientStops(_ []float64) {
	s.warnUnsupported("fillGradientStops")
}

func (s *Style) SetFillGradientType(_ int) {
	s.warnUnsupported("fillGradientType")
}

func (s *Style) SetMiterLimit(_ float64) {
	s.warnUnsupported("miterLimit")
}

func (s *Style) SetTextBaseline(_ string) {
	s.warnUnsupported("textBaseline")
}

func (s *Style) warnUnsupported(name string) {
	s.log.Warn("Property cannot be expressed in CSS output, ignoring",
		zap.String("property", name))
}
