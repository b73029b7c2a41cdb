package config

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"htstyle/htmltext"
	"htstyle/style"
)

// FontSpec names one font to preload for a style document. Family, weight
// and style are optional - the registry derives defaults from the URL.
type FontSpec struct {
	URL    string `yaml:"url"`
	Family string `yaml:"family,omitempty"`
	Weight string `yaml:"weight,omitempty"`
	Style  string `yaml:"style,omitempty"`
}

// ShadowSpec configures the drop shadow. Its presence in a document turns
// the shadow on.
type ShadowSpec struct {
	Alpha    *float64 `yaml:"alpha"`
	Angle    *float64 `yaml:"angle"`
	Blur     *float64 `yaml:"blur"`
	Color    any      `yaml:"color"`
	Distance *float64 `yaml:"distance"`
}

// Document is the YAML style description the CLI compiles. Absent fields
// keep their defaults; colors accept packed numbers, component sequences
// or textual values.
type Document struct {
	Align           *style.TextAlign   `yaml:"align"`
	BreakWords      *bool              `yaml:"break_words"`
	Fill            any                `yaml:"fill"`
	FontFamily      []string           `yaml:"font_family"`
	FontSize        *float64           `yaml:"font_size"`
	FontStyle       *style.FontStyle   `yaml:"font_style"`
	FontVariant     *style.FontVariant `yaml:"font_variant"`
	FontWeight      *string            `yaml:"font_weight"`
	LetterSpacing   *float64           `yaml:"letter_spacing"`
	LineHeight      *float64           `yaml:"line_height"`
	Padding         *float64           `yaml:"padding"`
	Stroke          any                `yaml:"stroke"`
	StrokeThickness *float64           `yaml:"stroke_thickness"`
	WhiteSpace      *style.WhiteSpace  `yaml:"white_space"`
	WordWrap        *bool              `yaml:"word_wrap"`
	WordWrapWidth   *float64           `yaml:"word_wrap_width"`
	FlipShadow      *bool              `yaml:"flip_shadow"`

	Shadow     *ShadowSpec `yaml:"shadow"`
	Fonts      []FontSpec  `yaml:"fonts"`
	Overrides  []string    `yaml:"overrides"`
	Stylesheet string      `yaml:"stylesheet"`
}

// ParseDocument reads a style document from YAML.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse style document: %w", err)
	}
	return &doc, nil
}

// Apply copies document values onto a style. Fonts are not loaded here -
// the caller drives preloading so it can control concurrency and failure
// handling.
func (d *Document) Apply(s *htmltext.Style) {
	s.Mutate(func() bool {
		if d.Align != nil {
			s.SetAlign(*d.Align)
		}
		if d.BreakWords != nil {
			s.SetBreakWords(*d.BreakWords)
		}
		if d.Fill != nil {
			s.SetFill(d.Fill)
		}
		if len(d.FontFamily) != 0 {
			s.SetFontFamily(d.FontFamily...)
		}
		if d.FontSize != nil {
			s.SetFontSize(*d.FontSize)
		}
		if d.FontStyle != nil {
			s.SetFontStyle(*d.FontStyle)
		}
		if d.FontVariant != nil {
			s.SetFontVariant(*d.FontVariant)
		}
		if d.FontWeight != nil {
			s.SetFontWeight(*d.FontWeight)
		}
		if d.LetterSpacing != nil {
			s.SetLetterSpacing(*d.LetterSpacing)
		}
		if d.LineHeight != nil {
			s.SetLineHeight(*d.LineHeight)
		}
		if d.Padding != nil {
			s.SetPadding(*d.Padding)
		}
		if d.Stroke != nil {
			s.SetStroke(d.Stroke)
		}
		if d.StrokeThickness != nil {
			s.SetStrokeThickness(*d.StrokeThickness)
		}
		if d.WhiteSpace != nil {
			s.SetWhiteSpace(*d.WhiteSpace)
		}
		if d.WordWrap != nil {
			s.SetWordWrap(*d.WordWrap)
		}
		if d.WordWrapWidth != nil {
			s.SetWordWrapWidth(*d.WordWrapWidth)
		}
		if d.FlipShadow != nil {
			s.SetFlipShadow(*d.FlipShadow)
		}
		if d.Shadow != nil {
			s.SetDropShadow(true)
			if d.Shadow.Alpha != nil {
				s.SetDropShadowAlpha(*d.Shadow.Alpha)
			}
			if d.Shadow.Angle != nil {
				s.SetDropShadowAngle(*d.Shadow.Angle)
			}
			if d.Shadow.Blur != nil {
				s.SetDropShadowBlur(*d.Shadow.Blur)
			}
			if d.Shadow.Color != nil {
				s.SetDropShadowColor(d.Shadow.Color)
			}
			if d.Shadow.Distance != nil {
				s.SetDropShadowDistance(*d.Shadow.Distance)
			}
		}
		if len(d.Stylesheet) != 0 {
			s.SetStylesheet(d.Stylesheet)
		}
		if len(d.Overrides) != 0 {
			s.AddOverride(d.Overrides...)
		}
		return false // nested setters track actual changes
	})
}
