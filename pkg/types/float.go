package types

import (
	"math"
	"strconv"
)

// Float32Field represents a single precision constant (f/F suffix).
type Float32Field struct {
	Val float32
}

func NewFloat32Field(value float32) *Float32Field {
	return &Float32Field{Val: value}
}

func (f *Float32Field) Type() Type {
	return Float32Type
}

func (f *Float32Field) String() string {
	return strconv.FormatFloat(float64(f.Val), 'g', -1, 32) + "f"
}

// Equals compares bit patterns so that NaN equals itself; literals never
// produce NaN but the comparison stays total.
func (f *Float32Field) Equals(other Field) bool {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false
	}
	return math.Float32bits(f.Val) == math.Float32bits(otherField.Val)
}

func (f *Float32Field) Value() any {
	return f.Val
}

func (*Float32Field) sealed() {}

// Float64Field represents a double precision constant, either written with a
// decimal point and no suffix or with the d/D suffix.
type Float64Field struct {
	Val float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Val: value}
}

func (f *Float64Field) Type() Type {
	return Float64Type
}

func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Val, 'g', -1, 64) + "d"
}

func (f *Float64Field) Equals(other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return math.Float64bits(f.Val) == math.Float64bits(otherField.Val)
}

func (f *Float64Field) Value() any {
	return f.Val
}

func (*Float64Field) sealed() {}
