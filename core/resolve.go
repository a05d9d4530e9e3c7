package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
)

// ResolveInput turns raw range input into a sequence of candidates.
//
// Strings, byte slices and json.RawMessage values are decoded as JSON and
// must hold a top-level array. Any other slice or array is passed through
// element by element. Everything else, including malformed JSON, yields an
// empty sequence; this function never fails.
func ResolveInput(ranges any) []any {
	switch v := ranges.(type) {
	case nil:
		return []any{}
	case string:
		return decodeCandidates([]byte(v))
	case []byte:
		return decodeCandidates(v)
	case json.RawMessage:
		return decodeCandidates(v)
	case []any:
		return v
	}

	rv := reflect.ValueOf(ranges)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return ResolveInput(rv.Elem().Interface())
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{}
	}
	candidates := make([]any, rv.Len())
	for i := range candidates {
		candidates[i] = rv.Index(i).Interface()
	}
	return candidates
}

// decodeCandidates decodes a JSON document and keeps it only if it is an array.
// Numbers stay json.Number so that a literal outside the float64 range only
// invalidates its own entry.
func decodeCandidates(data []byte) []any {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return []any{}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		// Trailing data after the document
		return []any{}
	}
	candidates, ok := decoded.([]any)
	if !ok {
		return []any{}
	}
	return candidates
}
