package ingestion

import "fmt"

// Value represents a parsed cell value with deterministic coercion. A failed
// parse or coercion produces a missing Value, never an error: missing values
// are resolved later by row exclusion during cleaning.
type Value struct {
	Type       ValueType `json:"type"`
	NumericVal *float64  `json:"numeric_val,omitempty"`
	IsMissing  bool      `json:"is_missing"`
}

// ValueType defines the storage type for values
type ValueType string

const (
	ValueTypeNumeric ValueType = "numeric"
	ValueTypeMissing ValueType = "missing"
)

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing, IsMissing: true}
}

// String returns the string representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return fmt.Sprintf("%g", *v.NumericVal)
		}
	case ValueTypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// IsNumeric returns true if the value represents a valid number
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeNumeric && v.NumericVal != nil
}

// AsFloat64 returns the numeric value as float64, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumericVal != nil {
		return *v.NumericVal
	}
	return 0.0
}
