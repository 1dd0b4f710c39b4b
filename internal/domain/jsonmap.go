// Package domain defines the persistence models for contact-form
// submissions. This file implements JSONMap, the loosely-typed document
// column used to persist arbitrary form payloads without a fixed schema.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONMap is a schema-less mapping of form field names to values. It is
// stored as a JSON TEXT column and round-trips through encoding/json, so
// values carry the usual dynamic JSON types (string, float64, bool, nested
// maps/slices, nil).
type JSONMap map[string]any

// Value implements driver.Valuer by serializing the map to JSON.
// A nil map is stored as an empty object so the column is never NULL.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner by deserializing a JSON TEXT/BLOB column.
func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("jsonmap: unsupported column type %T", src)
	}
	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	out := JSONMap{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*m = out
	return nil
}

// GormDataType tells GORM to map the column as TEXT.
func (JSONMap) GormDataType() string { return "text" }

// String returns the first string value stored under key, or "" when the
// key is absent or holds a non-string value.
func (m JSONMap) String(key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Clone returns a shallow copy of the map. Nested values are shared.
func (m JSONMap) Clone() JSONMap {
	if m == nil {
		return JSONMap{}
	}
	out := make(JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ErrNotObject is returned by DecodeObject when the body is valid JSON but
// not a JSON object.
var ErrNotObject = errors.New("body must be a JSON object")

// DecodeObject parses raw JSON into a JSONMap, rejecting anything that is
// not a JSON object (arrays, scalars, null).
func DecodeObject(raw []byte) (JSONMap, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	obj, ok := probe.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return JSONMap(obj), nil
}
