package types

// Field is a constant value produced by the lexer.
//
// The set of implementations is closed: Int32Field, Int64Field, Float32Field,
// Float64Field, DecimalField, StringField, BoolField and NullField. The variant
// is decided by literal syntax alone, so callers may switch on Type() or on the
// concrete type and treat any other case as unreachable.
type Field interface {
	Type() Type

	String() string

	Equals(other Field) bool

	// Value returns the payload as a plain Go value (nil for NullField).
	Value() any

	sealed()
}
