package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ClassKey is the representation key naming the entity type.
const ClassKey = "__class__"

// baseFields are never writable from a client payload.
var baseFields = []string{"id", "created_at", "updated_at"}

// FieldError reports a payload value that does not fit the entity field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "invalid value for " + e.Field
}

func (e *FieldError) Unwrap() error { return e.Err }

// ToDict returns the external representation of e.
func ToDict(e Entity) (map[string]any, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	out[ClassKey] = string(e.Kind())
	return out, nil
}

// Apply assigns every key of fields that names a field of e, skipping the
// base fields, the class key and the extra protected keys. Keys that do not
// name a field are ignored.
func Apply(e Entity, fields map[string]json.RawMessage, protected ...string) error {
	skip := make(map[string]struct{}, len(baseFields)+len(protected)+1)
	for _, k := range baseFields {
		skip[k] = struct{}{}
	}
	for _, k := range protected {
		skip[k] = struct{}{}
	}
	skip[ClassKey] = struct{}{}

	cur, err := json.Marshal(e)
	if err != nil {
		return err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(cur, &merged); err != nil {
		return err
	}

	changed := false
	for k, v := range fields {
		if _, ok := skip[k]; ok {
			continue
		}
		if _, known := merged[k]; !known {
			continue
		}
		// one key at a time so a type error names its field
		if err := decodeField(k, v, e); err != nil {
			return err
		}
		merged[k] = v
		changed = true
	}
	if !changed {
		return nil
	}

	buf, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, e)
}

func decodeField(key string, value json.RawMessage, e Entity) error {
	single, err := json.Marshal(map[string]json.RawMessage{key: value})
	if err != nil {
		return &FieldError{Field: key, Err: err}
	}
	scratch := e.Clone()
	if err := json.Unmarshal(single, scratch); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &FieldError{Field: key, Err: fmt.Errorf("expected %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return &FieldError{Field: key, Err: err}
	}
	return nil
}

// DecodeString decodes a string-valued payload key.
func DecodeString(fields map[string]json.RawMessage, key string) (string, error) {
	var s string
	if err := json.Unmarshal(fields[key], &s); err != nil {
		return "", &FieldError{Field: key, Err: err}
	}
	return s, nil
}
