// Package css builds textual style declarations: ordered declaration lists,
// color and shadow normalization and @font-face blocks. It only serializes -
// nothing here validates that values make visual sense.
package css

import (
	"fmt"
	"strconv"
	"strings"
)

// DeclarationList accumulates "property: value" declarations in insertion
// order. Order matters - under CSS semantics a later declaration for the same
// property wins, which is how computed declarations get overridden.
type DeclarationList struct {
	decls []string
}

// Add appends a single property declaration.
func (l *DeclarationList) Add(property, value string) {
	l.decls = append(l.decls, property+": "+value)
}

// Addf appends a single property declaration with formatted value.
func (l *DeclarationList) Addf(property, format string, a ...any) {
	l.Add(property, fmt.Sprintf(format, a...))
}

// AddRaw appends an already assembled declaration verbatim.
func (l *DeclarationList) AddRaw(decl string) {
	l.decls = append(l.decls, decl)
}

// Len returns number of accumulated declarations.
func (l *DeclarationList) Len() int {
	return len(l.decls)
}

// String joins accumulated declarations into a single style string.
func (l *DeclarationList) String() string {
	return strings.Join(l.decls, "; ")
}

// Num formats a scalar the shortest way possible, without trailing zeros.
// Negative zero folds to canonical zero so offsets never render as "-0".
func Num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px formats a scaled scalar as a pixel dimension.
func Px(v float64) string {
	return Num(v) + "px"
}

// EscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func EscapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
