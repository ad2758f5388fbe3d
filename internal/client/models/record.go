package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is an ordered, stringly-typed view of a fetched report row. The
// server may return more keys than the canonical report fields (SubmittedBy,
// future columns); the table derives its column set from whatever arrives, so
// key discovery order must survive decoding.
type Record struct {
	values map[string]string
	keys   []string
}

func NewRecord() *Record {
	return &Record{values: map[string]string{}}
}

// Set stores a value under key, appending the key on first sight.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = map[string]string{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value under key, or "" when absent.
func (r *Record) Get(key string) string {
	return r.values[key]
}

func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the record's keys in discovery order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Record) Len() int {
	return len(r.keys)
}

// UnmarshalJSON decodes a JSON object while preserving key order. Scalars are
// stringified: numbers keep their literal form, booleans become "true"/"false",
// null becomes "", nested objects and arrays stay as compact JSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = Record{values: map[string]string{}}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected object, got %v", tok)
	}

	out := Record{values: map[string]string{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: unexpected key token %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		out.Set(key, stringifyValue(raw))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// MarshalJSON emits the record as a JSON object with keys in discovery order.
// All values serialize as strings; this is the shape used for edit drafts.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func stringifyValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	case '{', '[':
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return string(trimmed)
		}
		return compact.String()
	default:
		// number, true or false: the literal is already the display form
		return string(trimmed)
	}
}
