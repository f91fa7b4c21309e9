package types

// BoolField represents the true and false literals.
type BoolField struct {
	Val bool
}

// NewBoolField creates a new BoolField instance with the specified boolean value.
func NewBoolField(value bool) *BoolField {
	return &BoolField{Val: value}
}

func (b *BoolField) Type() Type {
	return BoolType
}

func (b *BoolField) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

func (b *BoolField) Equals(other Field) bool {
	otherField, ok := other.(*BoolField)
	if !ok {
		return false
	}
	return b.Val == otherField.Val
}

func (b *BoolField) Value() any {
	return b.Val
}

func (*BoolField) sealed() {}

// NullField represents the null literal. All NullFields are equal.
type NullField struct{}

// Null is the shared null constant.
var Null = &NullField{}

func (*NullField) Type() Type {
	return NullType
}

func (*NullField) String() string {
	return "null"
}

func (*NullField) Equals(other Field) bool {
	_, ok := other.(*NullField)
	return ok
}

func (*NullField) Value() any {
	return nil
}

func (*NullField) sealed() {}
