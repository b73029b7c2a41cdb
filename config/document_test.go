package config_test

import (
	"strings"
	"testing"

	"htstyle/config"
	"htstyle/fonts"
	"htstyle/htmltext"
)

const sampleDoc = `
align: center
fill: 0xff0000
font_family: [heading, Georgia, serif]
font_size: 32
font_weight: bold
white_space: pre-wrap
word_wrap: true
word_wrap_width: 440
stroke: "#00ff00"
stroke_thickness: 2
shadow:
  angle: 0
  distance: 5
  color: [0, 0, 0]
  alpha: 0.5
fonts:
  - url: fonts/heading.woff2
    family: heading
    weight: bold
overrides:
  - "text-transform: uppercase"
stylesheet: |
  .em { font-style: italic; }
`

func TestParseDocument_Apply(t *testing.T) {
	doc, err := config.ParseDocument([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Fonts) != 1 || doc.Fonts[0].URL != "fonts/heading.woff2" {
		t.Fatalf("unexpected fonts: %+v", doc.Fonts)
	}

	s := htmltext.New(fonts.NewRegistry(nil, nil, nil), nil)
	v := s.Version()
	doc.Apply(s)
	if s.Version() != v+1 {
		t.Errorf("document application should cost one version bump, %d -> %d", v, s.Version())
	}

	if s.Fill() != "#ff0000" {
		t.Errorf("packed fill should normalize, got %q", s.Fill())
	}
	if s.Stroke() != "#00ff00" {
		t.Errorf("unexpected stroke %q", s.Stroke())
	}
	if !s.DropShadow() || s.DropShadowAlpha() != 0.5 || s.DropShadowColor() != "#000000" {
		t.Error("shadow block should enable and configure the shadow")
	}

	out := s.CSS(1)
	for _, want := range []string{
		"text-align: center",
		"font-size: 32px",
		"font-family: heading, Georgia, serif",
		"white-space: pre-wrap",
		"max-width: 440px",
		"text-shadow: 5px 0px #00000080",
		"text-transform: uppercase",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
	if !strings.Contains(s.GlobalCSS(), ".em { font-style: italic; }") {
		t.Error("stylesheet should be carried into global CSS")
	}
}

func TestParseDocument_Empty(t *testing.T) {
	doc, err := config.ParseDocument([]byte("{}"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	s := htmltext.New(fonts.NewRegistry(nil, nil, nil), nil)
	v := s.Version()
	doc.Apply(s)
	if s.Version() != v {
		t.Error("empty document should not bump version")
	}
	if s.FontSize() != 26 {
		t.Errorf("defaults should survive empty document, got %v", s.FontSize())
	}
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if cfg.Registry.TimeoutSec != 30 || cfg.Registry.BaseDir != "." {
		t.Errorf("unexpected registry defaults: %+v", cfg.Registry)
	}

	data, err := config.Dump(cfg)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(string(data), "timeout_sec: 30") {
		t.Errorf("dump should round trip defaults:\n%s", data)
	}
}
