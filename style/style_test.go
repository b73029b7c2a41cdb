package style_test

import (
	"testing"

	"htstyle/style"
)

func TestVersion_BumpOnChangeOnly(t *testing.T) {
	s := style.New()

	v := s.Version()
	s.SetFontSize(32)
	if s.Version() != v+1 {
		t.Errorf("expected version %d after change, got %d", v+1, s.Version())
	}

	v = s.Version()
	s.SetFontSize(32) // same value
	if s.Version() != v {
		t.Errorf("setting identical value should not bump version, got %d", s.Version())
	}

	v = s.Version()
	_ = s.FontSize()
	_ = s.Fill()
	_ = s.FontFamily()
	if s.Version() != v {
		t.Errorf("accessors should not bump version, got %d", s.Version())
	}
}

func TestVersion_EveryMutatorBumps(t *testing.T) {
	s := style.New()
	v := s.Version()

	muts := []func(){
		func() { s.SetAlign(style.TextAlignCenter) },
		func() { s.SetBreakWords(true) },
		func() { s.SetDropShadow(true) },
		func() { s.SetDropShadowAlpha(0.5) },
		func() { s.SetDropShadowAngle(1) },
		func() { s.SetDropShadowBlur(3) },
		func() { s.SetDropShadowColor(0x112233) },
		func() { s.SetDropShadowDistance(7) },
		func() { s.SetFill("#ff00ff") },
		func() { s.SetFontFamily("Georgia", "serif") },
		func() { s.SetFontSize(11) },
		func() { s.SetFontStyle(style.FontStyleItalic) },
		func() { s.SetFontVariant(style.FontVariantSmallCaps) },
		func() { s.SetFontWeight("bold") },
		func() { s.SetLetterSpacing(1) },
		func() { s.SetLineHeight(30) },
		func() { s.SetPadding(4) },
		func() { s.SetStroke(0x00ff00) },
		func() { s.SetStrokeThickness(2) },
		func() { s.SetWhiteSpace(style.WhiteSpacePreWrap) },
		func() { s.SetWordWrap(true) },
		func() { s.SetWordWrapWidth(300) },
	}
	for i, m := range muts {
		m()
		if s.Version() != v+uint64(i)+1 {
			t.Fatalf("mutator %d did not bump version: have %d, want %d", i, s.Version(), v+uint64(i)+1)
		}
	}
}

func TestColorNormalizationInSetters(t *testing.T) {
	a, b := style.New(), style.New()
	a.SetFill(0xff0000)
	b.SetFill("#ff0000")
	if a.Fill() != b.Fill() {
		t.Errorf("numeric %q and textual %q fill should match", a.Fill(), b.Fill())
	}

	a.SetStroke([]float64{0, 0, 1})
	if a.Stroke() != "#0000ff" {
		t.Errorf("expected #0000ff, got %q", a.Stroke())
	}
}

func TestParseWhiteSpace(t *testing.T) {
	for _, name := range style.WhiteSpaceNames() {
		ws, err := style.ParseWhiteSpace(name)
		if err != nil {
			t.Fatalf("ParseWhiteSpace(%q): %v", name, err)
		}
		if ws.String() != name {
			t.Errorf("round trip %q -> %q", name, ws.String())
		}
	}
	if _, err := style.ParseWhiteSpace("wrap"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDefaults(t *testing.T) {
	s := style.New()
	if s.FontSize() != 26 {
		t.Errorf("default font size should be 26, got %v", s.FontSize())
	}
	if s.WhiteSpace() != style.WhiteSpaceNormal {
		t.Errorf("default white-space should be normal, got %v", s.WhiteSpace())
	}
	if s.WordWrap() || s.DropShadow() || s.StrokeThickness() != 0 {
		t.Error("wrap, shadow and stroke should be off by default")
	}
	if got := s.FontFamily(); len(got) != 1 || got[0] != "Arial" {
		t.Errorf("unexpected default family stack %v", got)
	}
}
