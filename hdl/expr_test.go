package hdl

import (
	"testing"

	"fhdl/report"
)

func TestConstInference(t *testing.T) {
	c := Const(5)
	if c.Type != Unsigned(3) || c.Val != 5 {
		t.Errorf("Const(5) = %s, want 3'd5", c)
	}

	c = Const(-3)
	if c.Type != Signed(3) || c.Val != -3 {
		t.Errorf("Const(-3) = %s, want 3'sd-3", c)
	}

	c = Const(0)
	if c.Type != Unsigned(1) {
		t.Errorf("Const(0) has type %s, want 1'd", c.Type)
	}
}

func TestConstEquality(t *testing.T) {
	if !Const(5).Equals(Const(5)) {
		t.Error("two inferred 5 constants should be equal")
	}

	if Const(5).Equals(NewConstant(5, Unsigned(16))) {
		t.Error("constants of different types should not be equal")
	}

	if Const(5).Equals(Const(6)) {
		t.Error("constants of different values should not be equal")
	}
}

func TestBinConstant(t *testing.T) {
	c, err := BinConstant("1010", false)
	if err != nil {
		t.Fatalf("BinConstant returned error: %s", err)
	}

	if c.Val != 10 || c.Type != Unsigned(4) {
		t.Errorf("BinConstant(\"1010\") = %s, want 4'd10", c)
	}

	if _, err := BinConstant("10x1", false); err == nil {
		t.Error("BinConstant should reject non-binary digits")
	}
}

func TestSignalIdentity(t *testing.T) {
	s1 := NewSignal(Unsigned(8), "x")
	s2 := NewSignal(Unsigned(8), "x")

	if s1 == s2 {
		t.Error("signals with identical attributes should still be distinct")
	}

	if s2.Order <= s1.Order {
		t.Errorf("creation order should be strictly increasing: %d then %d", s1.Order, s2.Order)
	}
}

func TestSignalReset(t *testing.T) {
	s := NewSignalReset(Signed(4), "acc", -2)
	if !s.Reset.Equals(NewConstant(-2, Signed(4))) {
		t.Errorf("reset constant is %s, want 4'sd-2", s.Reset)
	}
}

func TestOperatorCoercion(t *testing.T) {
	s := NewSignal(Unsigned(8), "s")
	op := Add(s, 3)

	c, ok := op.Operands[1].(*Constant)
	if !ok {
		t.Fatalf("raw integer operand should be stored as *Constant, got %T", op.Operands[1])
	}

	if c.Type.Width != 2 {
		t.Errorf("coerced operand width = %d, want 2", c.Type.Width)
	}
}

func TestOperatorWidths(t *testing.T) {
	a := NewSignal(Unsigned(8), "a")
	b := NewSignal(Unsigned(4), "b")

	cases := []struct {
		name string
		op   *Operator
		want int
	}{
		{"add", Add(a, b), 9},
		{"sub", Sub(b, a), 9},
		{"mul", Mul(a, b), 12},
		{"shl", Shl(a, b), 8},
		{"shr", Shr(b, a), 4},
		{"and", And(a, b), 8},
		{"or", Or(a, b), 8},
		{"xor", Xor(a, b), 8},
		{"not", Not(b), 4},
		{"lt", Lt(a, b), 1},
		{"eq", EqCmp(a, b), 1},
		{"ne", Ne(a, b), 1},
		{"ge", Ge(a, b), 1},
	}

	for _, c := range cases {
		if got := c.op.Width(); got != c.want {
			t.Errorf("%s: width = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestOpSymbol(t *testing.T) {
	if got := OpSymbol(OpShl); got != "<<" {
		t.Errorf("OpSymbol(OpShl) = %q, want %q", got, "<<")
	}

	if got := OpSymbol(OpNot); got != "~" {
		t.Errorf("OpSymbol(OpNot) = %q, want %q", got, "~")
	}
}

func TestSliceClamp(t *testing.T) {
	e := NewSignal(Unsigned(8), "e")

	s := NewSlice(e, 2, 20)
	if s.Start != 2 || s.Stop != 8 {
		t.Errorf("slice [2, 20) of an 8-bit value should clip to [2, 8), got [%d, %d)", s.Start, s.Stop)
	}

	if s.Width() != 6 {
		t.Errorf("clipped slice width = %d, want 6", s.Width())
	}
}

func TestBit(t *testing.T) {
	e := NewSignal(Unsigned(8), "e")

	s := Bit(e, 3)
	if s.Start != 3 || s.Stop != 4 {
		t.Errorf("Bit(e, 3) = [%d, %d), want [3, 4)", s.Start, s.Stop)
	}

	if s.Width() != 1 {
		t.Errorf("bit width = %d, want 1", s.Width())
	}
}

func TestCatWidthAndOrder(t *testing.T) {
	a := NewSignal(Unsigned(3), "a")
	b := NewSignal(Unsigned(5), "b")
	c := NewSignal(Unsigned(7), "c")

	cat := NewCat(a, b, c)
	if cat.Width() != 15 {
		t.Errorf("Cat(a, b, c) width = %d, want 15", cat.Width())
	}

	// The first listed part occupies the least-significant bits.
	if cat.Parts[0] != Value(a) || cat.Parts[2] != Value(c) {
		t.Error("Cat must preserve operand order, least-significant first")
	}
}

func TestReplicateWidth(t *testing.T) {
	a := NewSignal(Unsigned(3), "a")

	if got := NewReplicate(a, 4).Width(); got != 12 {
		t.Errorf("Replicate(a, 4) width = %d, want 12", got)
	}

	if got := NewReplicate(a, 0).Width(); got != 0 {
		t.Errorf("Replicate(a, 0) width = %d, want 0", got)
	}
}

func TestToValueRejectsUnknownTypes(t *testing.T) {
	err := func() (err error) {
		defer report.CatchUsage(&err)
		ToValue(3.5)
		return nil
	}()

	if err == nil {
		t.Error("ToValue should raise a usage error for a float")
	}
}
