package types

import "strconv"

// Int32Field represents a 32-bit signed integer constant
type Int32Field struct {
	Val int32
}

func NewInt32Field(value int32) *Int32Field {
	return &Int32Field{Val: value}
}

func (f *Int32Field) Type() Type {
	return Int32Type
}

func (f *Int32Field) String() string {
	return strconv.FormatInt(int64(f.Val), 10)
}

func (f *Int32Field) Equals(other Field) bool {
	otherField, ok := other.(*Int32Field)
	if !ok {
		return false
	}
	return f.Val == otherField.Val
}

func (f *Int32Field) Value() any {
	return f.Val
}

func (*Int32Field) sealed() {}

// Int64Field represents a 64-bit signed integer constant (L suffix)
type Int64Field struct {
	Val int64
}

func NewInt64Field(value int64) *Int64Field {
	return &Int64Field{Val: value}
}

func (f *Int64Field) Type() Type {
	return Int64Type
}

func (f *Int64Field) String() string {
	return strconv.FormatInt(f.Val, 10) + "L"
}

func (f *Int64Field) Equals(other Field) bool {
	otherField, ok := other.(*Int64Field)
	if !ok {
		return false
	}
	return f.Val == otherField.Val
}

func (f *Int64Field) Value() any {
	return f.Val
}

func (*Int64Field) sealed() {}
