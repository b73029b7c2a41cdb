package css

import (
	"fmt"
	"io"
	"strings"
)

// FontFace represents an @font-face declaration.
type FontFace struct {
	Family string // font-family value
	Src    string // src value (URL or data: source)
	Style  string // font-style: normal, italic
	Weight string // font-weight: normal, bold, 400, 700
}

// DataURL builds a self-contained src value from MIME type and base64 payload.
func DataURL(mime, base64Data string) string {
	return fmt.Sprintf(`url("data:%s;base64,%s")`, mime, base64Data)
}

// WriteTo writes the @font-face block to w, implementing io.WriterTo.
// Properties are written in a stable order, empty ones are skipped.
func (ff FontFace) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := fmt.Fprint(w, "@font-face {\n")
	total += int64(n)
	if err != nil {
		return total, err
	}

	write := func(name, value string) {
		if err != nil || value == "" {
			return
		}
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, value)
		total += int64(n)
	}

	if ff.Family != "" {
		write("font-family", `"`+EscapeDoubleQuoted(ff.Family)+`"`)
	}
	write("src", ff.Src)
	write("font-weight", ff.Weight)
	write("font-style", ff.Style)
	if err != nil {
		return total, err
	}

	n, err = fmt.Fprint(w, "}\n")
	total += int64(n)
	return total, err
}

// String returns the CSS text of the @font-face block.
func (ff FontFace) String() string {
	var sb strings.Builder
	ff.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
