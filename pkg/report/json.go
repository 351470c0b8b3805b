package report

import (
	"bytes"
	"encoding/json"
	"io"

	"igosint/internal/jsonutil"
)

// EncodeJSON writes r as 2-space indented JSON. Non-ASCII text, including
// U+2028 and U+2029, and HTML characters are written literally.
func EncodeJSON(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}
	_, err := w.Write(jsonutil.LiteralLineSeparators(buf.Bytes()))
	return err
}
