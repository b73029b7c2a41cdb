package htmltext

import (
	"strings"

	"htstyle/css"
)

// CSS compiles the current state into an element style declaration at the
// requested scale. Pure: given equal state and scale the output is always
// the same, and compiling never changes the version counter.
//
// Declaration order is fixed and significant - later declarations for the
// same property win, which is also why caller overrides come last.
func (s *Style) CSS(scale float64) string {
	var l css.DeclarationList

	l.Add("display", "inline-block")
	l.Add("color", s.Fill())
	l.Add("font-size", css.Px(s.FontSize()*scale))
	l.Add("font-family", strings.Join(s.FontFamily(), ", "))
	l.Add("font-weight", s.FontWeight())
	l.Add("font-style", s.FontStyle().String())
	l.Add("font-variant", s.FontVariant().String())
	l.Add("letter-spacing", css.Px(s.LetterSpacing()*scale))
	l.Add("text-align", s.Align().String())
	l.Add("padding", css.Px(s.Padding()*scale))
	l.Add("white-space", s.WhiteSpace().String())

	if s.LineHeight() != 0 {
		l.Add("line-height", css.Px(s.LineHeight()*scale))
	}
	if s.WordWrap() {
		mode := "break-word"
		if s.BreakWords() {
			mode = "break-all"
		}
		l.Add("word-wrap", mode)
		l.Add("max-width", css.Px(s.WordWrapWidth()*scale))
	}
	if s.StrokeThickness() > 0 {
		width := css.Px(s.StrokeThickness() * scale)
		l.Add("-webkit-text-stroke-width", width)
		l.Add("-webkit-text-stroke-color", s.Stroke())
		l.Add("text-stroke-width", width)
		l.Add("text-stroke-color", s.Stroke())
		l.Add("paint-order", "stroke")
	}
	if s.DropShadow() {
		sh := css.Shadow{
			Angle:    s.DropShadowAngle(),
			Distance: s.DropShadowDistance(),
			Blur:     s.DropShadowBlur(),
			Color:    s.DropShadowColor(),
			Alpha:    s.DropShadowAlpha(),
			Flip:     s.flipShadow,
		}
		l.Add("text-shadow", sh.Declaration(scale))
	}
	for _, o := range s.overrides {
		l.AddRaw(o)
	}
	return l.String()
}

// GlobalCSS emits the auxiliary stylesheet: the user-supplied rules
// verbatim, then one @font-face block per owned font regardless of its
// installation status. Hosts register this in contexts the per-element
// declaration cannot reach, e.g. nested rendering documents.
func (s *Style) GlobalCSS() string {
	var sb strings.Builder
	sb.WriteString(s.stylesheet)

	for _, res := range s.fonts {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		ff := css.FontFace{
			Family: res.Family(),
			Src:    css.DataURL(res.MIME(), res.Data()),
			Style:  res.Style(),
			Weight: res.Weight(),
		}
		ff.WriteTo(&sb) //nolint:errcheck
	}
	return sb.String()
}
