package types

import "strconv"

// StringField represents a decoded string literal. Value holds the text after
// escape processing, without the surrounding quotes.
type StringField struct {
	Val string
}

func NewStringField(value string) *StringField {
	return &StringField{Val: value}
}

func (s *StringField) Type() Type {
	return StringType
}

// String renders the value as a Go-quoted string so that control characters
// produced by escapes stay visible.
func (s *StringField) String() string {
	return strconv.Quote(s.Val)
}

func (s *StringField) Equals(other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return s.Val == otherField.Val
}

func (s *StringField) Value() any {
	return s.Val
}

func (*StringField) sealed() {}
