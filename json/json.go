// Package json parses JSON text into a typed, navigable document tree and
// serializes such trees back to text. Documents must have an object at the
// root, and the tree exposes default-valued getters so optional fields can
// be read without nil checks.
//
// The string escape table intentionally deviates from RFC 8259 for
// compatibility with documents written by earlier versions of this format:
// \uXXXX keeps its four hex digits as literal text instead of decoding a
// code point, and escapes other than \", \\ and \/ keep their backslash.
// The write path always emits standard, parseable JSON.
package json

import (
	"fmt"
	"os"
)

// Parse parses text and returns the root object. Any lexical or
// grammatical violation, including empty or whitespace-only input, returns
// a *ParseError carrying the offending line and column.
func Parse(text string) (*Object, error) {
	return NewParser(NewLexer(text)).Parse()
}

// Load reads the whole file at path and parses it. I/O failures surface as
// a *ParseError, same as parse failures.
func Load(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("reading %s", path), Err: err}
	}
	return Parse(string(data))
}

// Write serializes obj as compact JSON and replaces the content of the
// file at path.
func Write(obj *Object, path string) error {
	w := NewWriter()
	w.WriteValue(obj)
	if err := os.WriteFile(path, []byte(w.String()), 0644); err != nil {
		return &ParseError{Message: fmt.Sprintf("writing %s", path), Err: err}
	}
	return nil
}
