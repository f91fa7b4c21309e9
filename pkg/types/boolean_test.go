package types

import "testing"

func TestBoolField(t *testing.T) {
	tests := []struct {
		value    bool
		expected string
	}{
		{true, "true"},
		{false, "false"},
	}

	for _, tt := range tests {
		field := NewBoolField(tt.value)
		if field.Type() != BoolType {
			t.Errorf("Expected type %v, got %v", BoolType, field.Type())
		}
		if field.String() != tt.expected {
			t.Errorf("Expected string %s, got %s", tt.expected, field.String())
		}
		if !field.Equals(NewBoolField(tt.value)) {
			t.Error("Expected equal bool fields to return true")
		}
		if field.Equals(NewBoolField(!tt.value)) {
			t.Error("Expected unequal bool fields to return false")
		}
	}
}

func TestNullField(t *testing.T) {
	if Null.Type() != NullType {
		t.Errorf("Expected type %v, got %v", NullType, Null.Type())
	}
	if Null.Value() != nil {
		t.Errorf("Expected nil payload, got %v", Null.Value())
	}
	if !Null.Equals(&NullField{}) {
		t.Error("Expected null fields to be equal")
	}
	if Null.Equals(NewBoolField(false)) {
		t.Error("Expected null to differ from false")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
		numeric  bool
	}{
		{Int32Type, "INT32_TYPE", true},
		{Int64Type, "INT64_TYPE", true},
		{Float32Type, "FLOAT32_TYPE", true},
		{Float64Type, "FLOAT64_TYPE", true},
		{DecimalType, "DECIMAL_TYPE", true},
		{StringType, "STRING_TYPE", false},
		{BoolType, "BOOL_TYPE", false},
		{NullType, "NULL_TYPE", false},
		{Type(99), "UNKNOWN_TYPE", false},
	}

	for _, tt := range tests {
		if tt.typ.String() != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, tt.typ.String())
		}
		if tt.typ.IsNumeric() != tt.numeric {
			t.Errorf("Expected IsNumeric()=%v for %s", tt.numeric, tt.expected)
		}
	}
}
