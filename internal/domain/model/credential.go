package model

import (
	"encoding/json"
	"fmt"
)

// Conventional CredentialRecord field names. They are documented for callers
// but never validated; the record carries whatever fields the caller stores.
const (
	FieldAddress    = "address"
	FieldPrivateKey = "privateKey"
	FieldToken      = "token"
)

// CredentialRecord is the structured credential value being protected: a
// mapping from field name to any JSON-representable value. No fixed schema is
// enforced. Values must survive a JSON round trip without loss (no cycles, no
// non-serializable types).
type CredentialRecord map[string]any

// Marshal serializes the record to its canonical string form.
func (r CredentialRecord) Marshal() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal credential record: %w", err)
	}
	return string(data), nil
}

// UnmarshalRecord deserializes the canonical string form back into a record.
// The plaintext must be a JSON object; anything else (including the empty
// string a failed decrypt can produce) is an error.
func UnmarshalRecord(plaintext string) (CredentialRecord, error) {
	if plaintext == "" {
		return nil, fmt.Errorf("empty credential plaintext")
	}
	var record CredentialRecord
	if err := json.Unmarshal([]byte(plaintext), &record); err != nil {
		return nil, fmt.Errorf("unmarshal credential record: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("credential plaintext is not an object")
	}
	return record, nil
}

// Merge returns a new record with partial shallow-merged over r: fields named
// in partial overwrite same-named fields of r, fields not mentioned are
// preserved. Neither input is modified.
func (r CredentialRecord) Merge(partial CredentialRecord) CredentialRecord {
	merged := make(CredentialRecord, len(r)+len(partial))
	for k, v := range r {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// Field returns the named field's value. A field holding a falsy value (false,
// zero number, empty string, or null) is reported as absent, exactly like a
// field that was never stored. That quirk is part of the contract; callers who
// need to distinguish the two cases must read the whole record.
func (r CredentialRecord) Field(name string) (any, bool) {
	value, ok := r[name]
	if !ok || isFalsy(value) {
		return nil, false
	}
	return value, true
}

// isFalsy covers the JSON value domain plus the Go numeric types a caller may
// put into a record directly without a JSON round trip.
func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}
