// internal/core/domain/value.go
package domain

import "strconv"

// Value is a nullable scalar cell. The zero Value is null.
type Value struct {
	Kind  Kind
	Valid bool

	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// NullValue returns a null cell.
func NullValue() Value { return Value{} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{Kind: KindString, Valid: true, Str: s} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{Kind: KindInt, Valid: true, Int: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Valid: true, Float: f} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Valid: true, Bool: b} }

// IsNull reports whether the cell holds no value.
func (v Value) IsNull() bool { return !v.Valid }

// String renders the cell. Null renders as the empty string.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Equal compares kind, validity and payload.
func (v Value) Equal(o Value) bool {
	if v.Valid != o.Valid {
		return false
	}
	if !v.Valid {
		return true
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindBool:
		return v.Bool == o.Bool
	default:
		return v.Str == o.Str
	}
}
