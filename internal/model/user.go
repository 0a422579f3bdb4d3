package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DiabetesType is the closed set of values accepted by the
// users.diabetes_type column. The zero value means the field was never
// set and maps to NULL in the store.
type DiabetesType string

const (
	DiabetesUnset       DiabetesType = ""
	DiabetesType1       DiabetesType = "type 1"
	DiabetesType2       DiabetesType = "type 2"
	DiabetesGestational DiabetesType = "gestational"
	DiabetesOther       DiabetesType = "other"
)

// ParseDiabetesType validates a raw string against the known variants.
// The empty string parses to DiabetesUnset.
func ParseDiabetesType(s string) (DiabetesType, error) {
	switch DiabetesType(s) {
	case DiabetesUnset, DiabetesType1, DiabetesType2, DiabetesGestational, DiabetesOther:
		return DiabetesType(s), nil
	}
	return DiabetesUnset, fmt.Errorf("unknown diabetes type %q", s)
}

// Scan implements sql.Scanner so the column reads directly into the typed
// field. NULL scans to DiabetesUnset.
func (d *DiabetesType) Scan(src any) error {
	if src == nil {
		*d = DiabetesUnset
		return nil
	}
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into DiabetesType", src)
	}
	parsed, err := ParseDiabetesType(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer; DiabetesUnset is stored as NULL.
func (d DiabetesType) Value() (driver.Value, error) {
	if d == DiabetesUnset {
		return nil, nil
	}
	if _, err := ParseDiabetesType(string(d)); err != nil {
		return nil, err
	}
	return string(d), nil
}

// User mirrors the `users` table. Password holds only the bcrypt hash once
// a record has been persisted; plaintext never reaches this struct.
// Optional columns are pointers so NULL round-trips without sentinel
// values. Handlers define their own response types with JSON tags.
type User struct {
	ID           uint64       // users.id
	Username     string       // users.username (unique)
	Password     string       // users.password (bcrypt hash)
	Email        *string      // users.email (unique, nullable)
	DiabetesType DiabetesType // users.diabetes_type (nullable enum)
	Age          *int         // users.age
	Gender       *string      // users.gender
	Height       *int         // users.height
	Weight       *int         // users.weight
	CreatedAt    time.Time    // users.created_at
	UpdatedAt    time.Time    // users.updated_at
}
