package style

import "fmt"

// WhiteSpace selects white-space collapsing mode. It extends the plain
// wrap on/off flag with the full set the declarative output understands.
type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpacePreLine
	WhiteSpaceNowrap
	WhiteSpacePreWrap
)

var whiteSpaceNames = [...]string{"normal", "pre", "pre-line", "nowrap", "pre-wrap"}

func (w WhiteSpace) String() string {
	if w < 0 || int(w) >= len(whiteSpaceNames) {
		return whiteSpaceNames[0]
	}
	return whiteSpaceNames[w]
}

// WhiteSpaceNames returns all accepted white-space mode names.
func WhiteSpaceNames() []string {
	return whiteSpaceNames[:]
}

// ParseWhiteSpace converts textual mode name to WhiteSpace.
func ParseWhiteSpace(name string) (WhiteSpace, error) {
	for i, n := range whiteSpaceNames {
		if n == name {
			return WhiteSpace(i), nil
		}
	}
	return WhiteSpaceNormal, fmt.Errorf("%s is not a valid white-space mode", name)
}

func (w WhiteSpace) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WhiteSpace) UnmarshalText(text []byte) (err error) {
	*w, err = ParseWhiteSpace(string(text))
	return
}

// TextAlign selects horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var textAlignNames = [...]string{"left", "center", "right", "justify"}

func (a TextAlign) String() string {
	if a < 0 || int(a) >= len(textAlignNames) {
		return textAlignNames[0]
	}
	return textAlignNames[a]
}

// ParseTextAlign converts textual alignment name to TextAlign.
func ParseTextAlign(name string) (TextAlign, error) {
	for i, n := range textAlignNames {
		if n == name {
			return TextAlign(i), nil
		}
	}
	return TextAlignLeft, fmt.Errorf("%s is not a valid text alignment", name)
}

func (a TextAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *TextAlign) UnmarshalText(text []byte) (err error) {
	*a, err = ParseTextAlign(string(text))
	return
}

// FontStyle selects font slant.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleNames = [...]string{"normal", "italic", "oblique"}

func (f FontStyle) String() string {
	if f < 0 || int(f) >= len(fontStyleNames) {
		return fontStyleNames[0]
	}
	return fontStyleNames[f]
}

// ParseFontStyle converts textual slant name to FontStyle.
func ParseFontStyle(name string) (FontStyle, error) {
	for i, n := range fontStyleNames {
		if n == name {
			return FontStyle(i), nil
		}
	}
	return FontStyleNormal, fmt.Errorf("%s is not a valid font style", name)
}

func (f FontStyle) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FontStyle) UnmarshalText(text []byte) (err error) {
	*f, err = ParseFontStyle(string(text))
	return
}

// FontVariant selects small-caps rendering.
type FontVariant int

const (
	FontVariantNormal FontVariant = iota
	FontVariantSmallCaps
)

var fontVariantNames = [...]string{"normal", "small-caps"}

func (f FontVariant) String() string {
	if f < 0 || int(f) >= len(fontVariantNames) {
		return fontVariantNames[0]
	}
	return fontVariantNames[f]
}

// ParseFontVariant converts textual variant name to FontVariant.
func ParseFontVariant(name string) (FontVariant, error) {
	for i, n := range fontVariantNames {
		if n == name {
			return FontVariant(i), nil
		}
	}
	return FontVariantNormal, fmt.Errorf("%s is not a valid font variant", name)
}

func (f FontVariant) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FontVariant) UnmarshalText(text []byte) (err error) {
	*f, err = ParseFontVariant(string(text))
	return
}
