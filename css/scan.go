package css

import (
	"bytes"
	"regexp"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssgram "github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// urlExtractPattern extracts URLs from raw CSS value strings such as
// @font-face src. It matches url("path"), url('path'), and url(path).
var urlExtractPattern = regexp.MustCompile(`url\s*\(\s*(?:["']([^"']*)["']|([^)"]*))\s*\)`)

// ScanFontFaces walks a stylesheet and collects @font-face declarations that
// carry both a family and a resolvable src URL. Everything else in the
// stylesheet is ignored - the caller keeps the text verbatim, scanning only
// feeds font preloading.
func ScanFontFaces(data []byte, log *zap.Logger) []FontFace {
	if log == nil {
		log = zap.NewNop()
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := cssgram.NewParser(input, false)

	var faces []FontFace

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case cssgram.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				log.Debug("CSS scan stopped", zap.Error(parser.Err()))
			}
			return faces

		case cssgram.BeginAtRuleGrammar:
			if string(tok) != "@font-face" {
				skipAtRuleBlock(parser)
				continue
			}
			ff := scanFontFaceBlock(parser)
			url := ExtractURL(ff.Src)
			if ff.Family == "" || url == "" {
				log.Debug("Skipping incomplete @font-face",
					zap.String("family", ff.Family),
					zap.String("src", ff.Src))
				continue
			}
			ff.Src = url
			faces = append(faces, ff)
		}
	}
}

// scanFontFaceBlock consumes declarations until the @font-face block ends.
func scanFontFaceBlock(parser *cssgram.Parser) FontFace {
	var ff FontFace

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case cssgram.ErrorGrammar, cssgram.EndAtRuleGrammar:
			return ff

		case cssgram.DeclarationGrammar:
			var parts []string
			for _, v := range parser.Values() {
				if v.TokenType != cssgram.WhitespaceToken {
					parts = append(parts, string(v.Data))
				}
			}
			val := strings.Join(parts, " ")

			switch string(tok) {
			case "font-family":
				ff.Family = strings.Trim(val, `"'`)
			case "src":
				ff.Src = val
			case "font-style":
				ff.Style = val
			case "font-weight":
				ff.Weight = val
			}
		}
	}
}

// skipAtRuleBlock consumes tokens until the current at-rule block ends.
func skipAtRuleBlock(parser *cssgram.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case cssgram.ErrorGrammar:
			return
		case cssgram.BeginAtRuleGrammar, cssgram.BeginRulesetGrammar:
			depth++
		case cssgram.EndAtRuleGrammar, cssgram.EndRulesetGrammar:
			depth--
		}
	}
}

// ExtractURL pulls the first url() reference out of a raw CSS value string.
// Handles url("path"), url('path') and url(path). Returns empty string when
// no reference is present.
func ExtractURL(src string) string {
	m := urlExtractPattern.FindStringSubmatch(src)
	if m == nil {
		return ""
	}
	// Group 1 is quoted URL, group 2 is unquoted.
	url := m[1]
	if url == "" {
		url = m[2]
	}
	return strings.TrimSpace(url)
}
