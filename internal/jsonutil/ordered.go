// Package jsonutil holds small JSON helpers shared by the report types.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Member is one key/value pair of an ordered JSON object
type Member struct {
	Key   string
	Value interface{}
}

// Object is a JSON object that keeps its members in insertion order
type Object []Member

// Add appends a member
func (o *Object) Add(key string, value interface{}) {
	*o = append(*o, Member{Key: key, Value: value})
}

// MarshalJSON encodes the members in order. HTML characters are left
// unescaped so text copied from pages survives verbatim.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeRaw(&buf, m.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeRaw(&buf, m.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeRaw(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

var lineSeparatorEscapes = map[string]string{
	` `: " ",
	` `: " ",
}

// LiteralLineSeparators rewrites the   and   escapes that
// encoding/json always emits back into the raw characters. Escaped
// backslashes followed by the same text are left alone.
func LiteralLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			out = append(out, data[i])
			continue
		}
		if i+6 <= len(data) {
			if lit, ok := lineSeparatorEscapes[string(data[i:i+6])]; ok {
				out = append(out, lit...)
				i += 5
				continue
			}
		}
		// copy the escape pair so an escaped backslash is never re-read
		out = append(out, data[i])
		if i+1 < len(data) {
			out = append(out, data[i+1])
			i++
		}
	}
	return out
}
