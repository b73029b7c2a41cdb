package css_test

import (
	"math"
	"strings"
	"testing"

	"htstyle/css"
)

func TestNormalizeColor_PackedAndString(t *testing.T) {
	packed := css.NormalizeColor(0xff0000)
	textual := css.NormalizeColor("#ff0000")
	if packed != textual {
		t.Errorf("packed %q and textual %q should normalize identically", packed, textual)
	}
	if packed != "#ff0000" {
		t.Errorf("expected #ff0000, got %q", packed)
	}
}

func TestNormalizeColor_Components(t *testing.T) {
	if got := css.NormalizeColor([]float64{1, 0, 0}); got != "#ff0000" {
		t.Errorf("expected #ff0000, got %q", got)
	}
	if got := css.NormalizeColor([]float64{0, 0, 0, 0.5}); got != "#00000080" {
		t.Errorf("expected #00000080, got %q", got)
	}
	// decoder-shaped input
	if got := css.NormalizeColor([]any{1.0, 1.0, 1.0}); got != "#ffffff" {
		t.Errorf("expected #ffffff, got %q", got)
	}
}

func TestNormalizeColor_PassThrough(t *testing.T) {
	for _, c := range []string{"red", "rgba(255, 0, 0, 0.5)", "#abc"} {
		if got := css.NormalizeColor(c); got != c {
			t.Errorf("textual color %q changed to %q", c, got)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	if got := css.WithAlpha("#ff0000", 0.5); got != "#ff000080" {
		t.Errorf("expected #ff000080, got %q", got)
	}
	if got := css.WithAlpha("#ff0000", 1); got != "#ff0000" {
		t.Errorf("opaque color should be unchanged, got %q", got)
	}
	if got := css.WithAlpha("red", 0.5); got != "red" {
		t.Errorf("non-hex color should be unchanged, got %q", got)
	}
}

func TestShadow_Offset(t *testing.T) {
	sh := css.Shadow{Angle: 0, Distance: 5, Alpha: 1}
	x, y := sh.Offset()
	if x != 5 || y != 0 {
		t.Errorf("angle 0: expected (5, 0), got (%v, %v)", x, y)
	}

	sh.Angle = math.Pi / 2
	x, y = sh.Offset()
	if x != 0 || y != 5 {
		t.Errorf("angle pi/2: expected (0, 5), got (%v, %v)", x, y)
	}

	sh.Flip = true
	x, y = sh.Offset()
	if x != 0 || y != -5 {
		t.Errorf("flipped angle pi/2: expected (0, -5), got (%v, %v)", x, y)
	}

	sh.Angle = 0
	x, y = sh.Offset()
	if x != 5 || y != 0 {
		t.Errorf("flipped angle 0: expected (5, 0), got (%v, %v)", x, y)
	}
}

func TestShadow_Declaration(t *testing.T) {
	sh := css.Shadow{Angle: 0, Distance: 5, Blur: 2, Color: "#000000", Alpha: 1}
	if got := sh.Declaration(2); got != "10px 0px 4px #000000" {
		t.Errorf("unexpected declaration %q", got)
	}

	sh.Blur = 0
	sh.Alpha = 0.5
	if got := sh.Declaration(1); got != "5px 0px #00000080" {
		t.Errorf("unexpected declaration %q", got)
	}
}

func TestShadow_FlipKeepsZeroCanonical(t *testing.T) {
	// flipping a horizontal shadow negates a zero y-offset, which must not
	// leak IEEE negative zero into the output
	sh := css.Shadow{Angle: 0, Distance: 5, Color: "#000000", Alpha: 1, Flip: true}
	if got := sh.Declaration(1); got != "5px 0px #000000" {
		t.Errorf("expected 5px 0px #000000, got %q", got)
	}

	// same leak without flip: a small negative component rounding to zero
	sh = css.Shadow{Angle: -0.01, Distance: 5, Color: "#000000", Alpha: 1}
	if got := sh.Declaration(1); got != "5px 0px #000000" {
		t.Errorf("expected 5px 0px #000000, got %q", got)
	}
}

func TestDeclarationList_Order(t *testing.T) {
	var l css.DeclarationList
	l.Add("color", "red")
	l.Addf("font-size", "%spx", css.Num(13.5))
	l.AddRaw("padding: 0")

	want := "color: red; font-size: 13.5px; padding: 0"
	if got := l.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if l.Len() != 3 {
		t.Errorf("expected 3 declarations, got %d", l.Len())
	}
}

func TestPx(t *testing.T) {
	if got := css.Px(26); got != "26px" {
		t.Errorf("expected 26px, got %q", got)
	}
	if got := css.Px(13.52); got != "13.52px" {
		t.Errorf("expected 13.52px, got %q", got)
	}
	if got := css.Px(math.Copysign(0, -1)); got != "0px" {
		t.Errorf("negative zero should fold to 0px, got %q", got)
	}
}

func TestFontFace_WriteTo(t *testing.T) {
	ff := css.FontFace{
		Family: "Open Sans",
		Src:    css.DataURL("font/woff2", "AAAA"),
		Style:  "normal",
		Weight: "bold",
	}
	out := ff.String()

	for _, want := range []string{
		`font-family: "Open Sans";`,
		`src: url("data:font/woff2;base64,AAAA");`,
		`font-weight: bold;`,
		`font-style: normal;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	// stable order: family before src before weight before style
	if strings.Index(out, "font-family") > strings.Index(out, "src:") {
		t.Error("font-family should precede src")
	}
}

func TestExtractURL(t *testing.T) {
	cases := map[string]string{
		`url("fonts/a.woff2")`:             "fonts/a.woff2",
		`url('fonts/a.woff2')`:             "fonts/a.woff2",
		`url(fonts/a.woff2)`:               "fonts/a.woff2",
		`url( fonts/a.woff2 ) format("woff2")`: "fonts/a.woff2",
		`local("Arial")`:                   "",
	}
	for in, want := range cases {
		if got := css.ExtractURL(in); got != want {
			t.Errorf("ExtractURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScanFontFaces(t *testing.T) {
	sheet := []byte(`
.title { color: red; }
@font-face {
  font-family: "Heading";
  src: url("fonts/heading.woff2") format("woff2");
  font-weight: bold;
}
@font-face {
  font-family: NoSource;
  src: local("Arial");
}
@media screen {
  p { margin: 0; }
}
@font-face {
  font-family: 'Body';
  src: url(fonts/body.ttf);
  font-style: italic;
}
`)

	faces := css.ScanFontFaces(sheet, nil)
	if len(faces) != 2 {
		t.Fatalf("expected 2 usable faces, got %d: %+v", len(faces), faces)
	}

	if faces[0].Family != "Heading" || faces[0].Src != "fonts/heading.woff2" || faces[0].Weight != "bold" {
		t.Errorf("unexpected first face: %+v", faces[0])
	}
	if faces[1].Family != "Body" || faces[1].Src != "fonts/body.ttf" || faces[1].Style != "italic" {
		t.Errorf("unexpected second face: %+v", faces[1])
	}
}
