package json

import (
	"strconv"
	"strings"
)

// Writer renders a document tree as compact JSON text. The variant switch
// in WriteValue is exhaustive over the closed Value set; a new output
// format means a new writer, not a change to the tree types. KeyFunc, when
// set, rewrites member keys on output; the tree itself is left untouched.
// Use one Writer per document.
type Writer struct {
	sb      strings.Builder
	KeyFunc func(string) string
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// WriteValue appends the rendering of v.
func (w *Writer) WriteValue(v Value) {
	if writeScalar(&w.sb, v) {
		return
	}
	switch v := v.(type) {
	case *Object:
		w.sb.WriteByte('{')
		for i := range v.members {
			if i > 0 {
				w.sb.WriteByte(',')
			}
			key := v.members[i].key
			if w.KeyFunc != nil {
				key = w.KeyFunc(key)
			}
			w.sb.WriteString(quote(key))
			w.sb.WriteByte(':')
			w.WriteValue(v.members[i].value)
		}
		w.sb.WriteByte('}')
	case *Array:
		w.sb.WriteByte('[')
		for i := range v.values {
			if i > 0 {
				w.sb.WriteByte(',')
			}
			w.WriteValue(v.values[i])
		}
		w.sb.WriteByte(']')
	}
}

// String returns the accumulated JSON text.
func (w *Writer) String() string { return w.sb.String() }

// IndentWriter renders a document tree as indented multi-line JSON text.
// KeyFunc, when set, rewrites member keys on output; the tree itself is
// left untouched. Use one IndentWriter per document.
type IndentWriter struct {
	sb      strings.Builder
	indent  string
	depth   int
	KeyFunc func(string) string
}

// NewIndentWriter returns an IndentWriter using indent as the per-level
// indentation unit.
func NewIndentWriter(indent string) *IndentWriter {
	return &IndentWriter{indent: indent}
}

// WriteValue appends the rendering of v.
func (w *IndentWriter) WriteValue(v Value) {
	if writeScalar(&w.sb, v) {
		return
	}
	switch v := v.(type) {
	case *Object:
		if len(v.members) == 0 {
			w.sb.WriteString("{}")
			return
		}
		w.sb.WriteString("{\n")
		w.depth++
		for i := range v.members {
			if i > 0 {
				w.sb.WriteString(",\n")
			}
			w.pad()
			key := v.members[i].key
			if w.KeyFunc != nil {
				key = w.KeyFunc(key)
			}
			w.sb.WriteString(quote(key))
			w.sb.WriteString(": ")
			w.WriteValue(v.members[i].value)
		}
		w.depth--
		w.sb.WriteByte('\n')
		w.pad()
		w.sb.WriteByte('}')
	case *Array:
		if len(v.values) == 0 {
			w.sb.WriteString("[]")
			return
		}
		w.sb.WriteString("[\n")
		w.depth++
		for i := range v.values {
			if i > 0 {
				w.sb.WriteString(",\n")
			}
			w.pad()
			w.WriteValue(v.values[i])
		}
		w.depth--
		w.sb.WriteByte('\n')
		w.pad()
		w.sb.WriteByte(']')
	}
}

// String returns the accumulated JSON text.
func (w *IndentWriter) String() string { return w.sb.String() }

func (w *IndentWriter) pad() {
	for i := 0; i < w.depth; i++ {
		w.sb.WriteString(w.indent)
	}
}

// writeScalar appends the rendering of a leaf value and reports whether v
// was a leaf.
func writeScalar(sb *strings.Builder, v Value) bool {
	switch v := v.(type) {
	case *String:
		sb.WriteString(quote(v.value))
	case *Bool:
		if v.value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case *Null:
		sb.WriteString("null")
	case *Number:
		sb.WriteString(formatNumber(v.value))
	default:
		return false
	}
	return true
}

// quote writes s double-quoted, re-escaping the two characters that would
// otherwise break the output: '"' and '\'. Escape decoding on the read
// path is lossier than this (see Lexer), so a parse/write round trip is
// stable but not byte-identical to arbitrary input.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

// formatNumber renders the shortest decimal text that round-trips back to f.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
