package types

import "github.com/shopspring/decimal"

// DecimalField represents an arbitrary-precision decimal constant (m/M suffix).
type DecimalField struct {
	Val decimal.Decimal
}

func NewDecimalField(value decimal.Decimal) *DecimalField {
	return &DecimalField{Val: value}
}

// ParseDecimalField parses the digits of a decimal literal, without its suffix.
func ParseDecimalField(digits string) (*DecimalField, error) {
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return nil, err
	}
	return &DecimalField{Val: d}, nil
}

func (f *DecimalField) Type() Type {
	return DecimalType
}

func (f *DecimalField) String() string {
	return f.Val.String() + "m"
}

// Equals compares numerically, so 5.50m equals 5.5m.
func (f *DecimalField) Equals(other Field) bool {
	otherField, ok := other.(*DecimalField)
	if !ok {
		return false
	}
	return f.Val.Equal(otherField.Val)
}

func (f *DecimalField) Value() any {
	return f.Val
}

func (*DecimalField) sealed() {}
