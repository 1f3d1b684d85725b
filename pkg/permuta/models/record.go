package models

import (
	"bytes"
	"encoding/json"
)

// Record is one flat attribute map for a single combination. Keys keep
// their first-set order; setting an existing key overwrites its value in
// place. Records never remove keys.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set inserts or overwrites an attribute. A key keeps the position it
// had when first set.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether it is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the attribute names in first-set order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of attributes.
func (r *Record) Len() int {
	return len(r.keys)
}

// MarshalJSON serializes the record as a JSON object with keys in
// first-set order. encoding/json's map marshalling sorts keys, which
// would lose the ordering downstream consumers rely on.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
