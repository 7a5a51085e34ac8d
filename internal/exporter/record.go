package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named value within a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered collection of fields decoded from a JSON object.
// A plain map cannot serve here: the CSV header is derived from the key
// order of the first record, so decoding has to preserve it.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a record from fields in order. Later duplicates of a
// name overwrite the earlier value without changing its position.
func NewRecord(fields ...Field) Record {
	r := Record{}
	for _, f := range fields {
		r.set(f.Name, f.Value)
	}
	return r
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r.fields)
}

// Keys returns the field names in their original order
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Name
	}
	return keys
}

// Get returns the value for a field name and whether it is present
func (r Record) Get(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

func (r *Record) set(name string, value any) {
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		return
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// UnmarshalJSON decodes a JSON object token by token so the key order
// survives. Numbers decode as json.Number to keep their literal form.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object")
	}

	r.fields = nil
	r.index = make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record key must be a string")
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("invalid value for field %q: %w", key, err)
		}
		r.set(key, value)
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON renders the record as a JSON object preserving field order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
