package ast

import "testing"

func TestValueType(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want ShenType
	}{
		{"integer", IntegerValue(1), Integer},
		{"float", FloatValue(1.5), Float},
		{"string", StringValue("hi"), String},
		{"boolean", BooleanValue(true), Boolean},
		{"nil", NilValue(), Nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Type(); got != tt.want {
				t.Errorf("Type() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTryConvertIdentity(t *testing.T) {
	lit := &LiteralNode{Value: IntegerValue(5)}
	got, ok := TryConvert(lit, Integer)
	if !ok || got != lit {
		t.Fatalf("identity conversion should return the same node unchanged")
	}
}

func TestTryConvertIntegerToFloat(t *testing.T) {
	lit := &LiteralNode{Value: IntegerValue(5)}
	got, ok := TryConvert(lit, Float)
	if !ok {
		t.Fatal("expected Integer->Float conversion to succeed")
	}
	out, isLit := got.(*LiteralNode)
	if !isLit || out.Value.Float != 5.0 {
		t.Fatalf("got %#v, want float literal 5.0", got)
	}
}

func TestTryConvertNumericToString(t *testing.T) {
	lit := &LiteralNode{Value: FloatValue(2.5)}
	got, ok := TryConvert(lit, String)
	if !ok {
		t.Fatal("expected Float->String conversion to succeed")
	}
	if got.(*LiteralNode).Value.Str != "2.5" {
		t.Errorf("got %q, want %q", got.(*LiteralNode).Value.Str, "2.5")
	}
}

func TestTryConvertNumericToBoolean(t *testing.T) {
	zero := &LiteralNode{Value: IntegerValue(0)}
	got, ok := TryConvert(zero, Boolean)
	if !ok || got.(*LiteralNode).Value.Bool != false {
		t.Fatalf("expected 0 to convert to false, got %#v, ok=%v", got, ok)
	}

	nonzero := &LiteralNode{Value: IntegerValue(7)}
	got, ok = TryConvert(nonzero, Boolean)
	if !ok || got.(*LiteralNode).Value.Bool != true {
		t.Fatalf("expected nonzero to convert to true, got %#v, ok=%v", got, ok)
	}
}

func TestTryConvertSymbolParsesLiteral(t *testing.T) {
	sym := &SymbolNode{Name: "42", TypeHint: Symbol}
	got, ok := TryConvert(sym, Integer)
	if !ok {
		t.Fatal("expected symbol \"42\" to parse as an Integer")
	}
	if got.(*LiteralNode).Value.Int != 42 {
		t.Errorf("got %d, want 42", got.(*LiteralNode).Value.Int)
	}
}

func TestTryConvertNoRule(t *testing.T) {
	lit := &LiteralNode{Value: StringValue("hello")}
	if _, ok := TryConvert(lit, Integer); ok {
		t.Fatal("expected String->Integer to have no conversion rule")
	}
}

func TestConditionalTypeFollowsTrueBranch(t *testing.T) {
	cond := &ConditionalNode{
		Condition:  &LiteralNode{Value: BooleanValue(true)},
		TrueBranch: &LiteralNode{Value: FloatValue(1.0)},
	}
	if got := cond.Type(); got != Float {
		t.Errorf("Conditional.Type() = %s, want Float", got)
	}
}
