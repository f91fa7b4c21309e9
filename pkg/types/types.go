package types

// Type identifies which variant of a constant a Field holds.
type Type int

const (
	Int32Type Type = iota
	Int64Type
	Float32Type
	Float64Type
	DecimalType
	StringType
	BoolType
	NullType
)

// String returns a string representation of the type
func (t Type) String() string {
	switch t {
	case Int32Type:
		return "INT32_TYPE"
	case Int64Type:
		return "INT64_TYPE"
	case Float32Type:
		return "FLOAT32_TYPE"
	case Float64Type:
		return "FLOAT64_TYPE"
	case DecimalType:
		return "DECIMAL_TYPE"
	case StringType:
		return "STRING_TYPE"
	case BoolType:
		return "BOOL_TYPE"
	case NullType:
		return "NULL_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}

// IsNumeric reports whether values of this type came from a numeric literal.
func (t Type) IsNumeric() bool {
	switch t {
	case Int32Type, Int64Type, Float32Type, Float64Type, DecimalType:
		return true
	default:
		return false
	}
}
