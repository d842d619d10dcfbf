package hdl

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"fhdl/report"
	"fhdl/util"
)

// Value represents a node of the expression algebra.  Every node is immutable
// once built and carries a derivable bit width; construction never fails on a
// width mismatch between sub-expressions -- width reconciliation is the
// elaborator's job.
type Value interface {
	// Width returns the bit width of the expression.
	Width() int
}

// ToValue is the single coercion entry point used by every constructor that
// accepts an expression-or-literal argument.  Raw integers become Constants
// with an inferred width; Values pass through unchanged.  Anything else is a
// usage error.
func ToValue(x interface{}) Value {
	switch v := x.(type) {
	case Value:
		return v
	case int:
		return Const(v)
	default:
		report.RaiseUsage("cannot use a %T as an expression", x)
		return nil
	}
}

// -----------------------------------------------------------------------------

// Constant represents a typed integer literal.
type Constant struct {
	// The storage type of the constant.
	Type BitVector

	// The integer value.
	Val int
}

// Const returns a constant of the given value with an inferred type: the
// minimum width per BitsFor, signed iff the value is negative.
func Const(n int) *Constant {
	return &Constant{Type: BitVector{Width: BitsFor(n), Signed: n < 0}, Val: n}
}

// NewConstant returns a constant of the given value with an explicit type.
func NewConstant(n int, bv BitVector) *Constant {
	return &Constant{Type: bv, Val: n}
}

// BinConstant parses a string of binary digits into a constant whose width is
// the digit count and whose signedness is given.
func BinConstant(digits string, signed bool) (*Constant, error) {
	n, err := strconv.ParseInt(digits, 2, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid binary constant %q: %w", digits, err)
	}

	return &Constant{Type: BitVector{Width: len(digits), Signed: signed}, Val: int(n)}, nil
}

func (c *Constant) Width() int {
	return c.Type.Width
}

// Equals returns whether two constants have the same type and value.  This is
// structural equality; constants are freely shared and duplicated.
func (c *Constant) Equals(other *Constant) bool {
	return c.Type == other.Type && c.Val == other.Val
}

func (c *Constant) String() string {
	return c.Type.Repr() + strconv.Itoa(c.Val)
}

// -----------------------------------------------------------------------------

// signalCounter is the global Signal creation-order counter.  It is updated
// atomically so that signals created from multiple goroutines still receive
// unique, strictly increasing order indices.
var signalCounter uint64

// Signal represents a named wire or register of a design.  Unlike constants,
// signals have identity: two signals built with identical attributes are
// distinct nodes, so they are always handled through pointers.
type Signal struct {
	// The storage type of the signal.
	Type BitVector

	// The reset value of the signal.  Always carries the signal's own type.
	Reset *Constant

	// Whether the signal has variable (blocking-assignment) semantics.
	Variable bool

	// The name override, which suppresses any inferred name downstream.
	NameOverride string

	// The name frames produced by the injected naming collaborator.
	Backtrace []NameFrame

	// The global creation-order index of the signal.
	Order uint64
}

// NewSignal returns a new signal of the given type.  The name is an optional
// hint for the naming collaborator and may be empty; the reset value is zero.
func NewSignal(bv BitVector, name string) *Signal {
	return NewSignalReset(bv, name, 0)
}

// NewSignalReset returns a new signal of the given type with an explicit
// reset value, encoded as a constant of the signal's own type.
func NewSignalReset(bv BitVector, name string, reset int) *Signal {
	return &Signal{
		Type:      bv,
		Reset:     NewConstant(reset, bv),
		Backtrace: nameFrames(name),
		Order:     atomic.AddUint64(&signalCounter, 1),
	}
}

func (s *Signal) Width() int {
	return s.Type.Width
}

func (s *Signal) String() string {
	return fmt.Sprintf("<Signal %s #%d>", s.EffectiveName(), s.Order)
}

// -----------------------------------------------------------------------------

// Enumeration of the expression operators.
const (
	OpNot = iota // ~
	OpAdd        // +
	OpSub        // -
	OpMul        // *
	OpShl        // <<
	OpShr        // >>
	OpAnd        // &
	OpXor        // ^
	OpOr         // |
	OpLt         // <
	OpLe         // <=
	OpEq         // ==
	OpNe         // !=
	OpGt         // >
	OpGe         // >=
)

// opSymbols maps operators to their conventional HDL symbols.
var opSymbols = map[int]string{
	OpNot: "~",
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpShl: "<<",
	OpShr: ">>",
	OpAnd: "&",
	OpXor: "^",
	OpOr:  "|",
	OpLt:  "<",
	OpLe:  "<=",
	OpEq:  "==",
	OpNe:  "!=",
	OpGt:  ">",
	OpGe:  ">=",
}

// OpSymbol returns the HDL symbol for an operator: eg. `<<` for OpShl.
func OpSymbol(op int) string {
	return opSymbols[op]
}

// Operator is an expression comprised of an operation applied to an ordered
// list of operands.  Raw integer operands are coerced to Constants before
// storage, so the operand list is homogeneous in representation.
type Operator struct {
	// The operation.  Must be one of the enumerated operators.
	Op int

	// The operand expressions, in order.
	Operands []Value
}

// NewOperator builds an operator node over the given operands, coercing raw
// integers to constants.
func NewOperator(op int, operands ...interface{}) *Operator {
	return &Operator{Op: op, Operands: util.Map(operands, ToValue)}
}

// Width returns the result width of the operation.  Comparisons are a single
// bit; arithmetic widens to avoid overflow; the remaining operations keep the
// width of their (widest) operand.  The rule is total over the operator set.
func (o *Operator) Width() int {
	switch o.Op {
	case OpLt, OpLe, OpEq, OpNe, OpGt, OpGe:
		return 1
	case OpAdd, OpSub:
		return maxOperandWidth(o.Operands) + 1
	case OpMul:
		w := 0
		for _, opd := range o.Operands {
			w += opd.Width()
		}
		return w
	case OpShl, OpShr:
		return o.Operands[0].Width()
	default:
		// ~, &, ^, |
		return maxOperandWidth(o.Operands)
	}
}

func maxOperandWidth(operands []Value) int {
	w := 0
	for _, opd := range operands {
		if ow := opd.Width(); ow > w {
			w = ow
		}
	}

	return w
}

// Per-operator combinators.  These are the primary construction API for
// operator nodes; all of them accept expressions or raw integers.

func Not(x interface{}) *Operator      { return NewOperator(OpNot, x) }
func Add(l, r interface{}) *Operator   { return NewOperator(OpAdd, l, r) }
func Sub(l, r interface{}) *Operator   { return NewOperator(OpSub, l, r) }
func Mul(l, r interface{}) *Operator   { return NewOperator(OpMul, l, r) }
func Shl(l, r interface{}) *Operator   { return NewOperator(OpShl, l, r) }
func Shr(l, r interface{}) *Operator   { return NewOperator(OpShr, l, r) }
func And(l, r interface{}) *Operator   { return NewOperator(OpAnd, l, r) }
func Xor(l, r interface{}) *Operator   { return NewOperator(OpXor, l, r) }
func Or(l, r interface{}) *Operator    { return NewOperator(OpOr, l, r) }
func Lt(l, r interface{}) *Operator    { return NewOperator(OpLt, l, r) }
func Le(l, r interface{}) *Operator    { return NewOperator(OpLe, l, r) }
func EqCmp(l, r interface{}) *Operator { return NewOperator(OpEq, l, r) }
func Ne(l, r interface{}) *Operator    { return NewOperator(OpNe, l, r) }
func Gt(l, r interface{}) *Operator    { return NewOperator(OpGt, l, r) }
func Ge(l, r interface{}) *Operator    { return NewOperator(OpGe, l, r) }

// -----------------------------------------------------------------------------

// Slice represents a half-open bit range [Start, Stop) of a source
// expression.
type Slice struct {
	// The sliced expression.
	Src Value

	// The half-open bit range.
	Start, Stop int
}

// NewSlice returns the slice [start, stop) of the given expression.  A stop
// beyond the source width is clamped to it.  Only unit-stride ranges exist:
// hardware bit addressing has no notion of a step.
func NewSlice(src Value, start, stop int) *Slice {
	if w := src.Width(); stop > w {
		stop = w
	}

	return &Slice{Src: src, Start: start, Stop: stop}
}

// Bit returns the 1-bit slice [i, i+1) of the given expression.
func Bit(src Value, i int) *Slice {
	return NewSlice(src, i, i+1)
}

func (s *Slice) Width() int {
	return s.Stop - s.Start
}

// -----------------------------------------------------------------------------

// Cat represents a concatenation of expressions.  Order is significant: the
// first part occupies the least-significant bits of the result and each
// subsequent part is placed at the running total of the prior widths.
type Cat struct {
	// The concatenated expressions, least-significant first.
	Parts []Value
}

// NewCat concatenates the given expressions or raw integers.
func NewCat(parts ...interface{}) *Cat {
	return &Cat{Parts: util.Map(parts, ToValue)}
}

func (c *Cat) Width() int {
	w := 0
	for _, p := range c.Parts {
		w += p.Width()
	}

	return w
}

// Replicate represents n copies of a source expression concatenated together,
// with the same bit-order rule as Cat.
type Replicate struct {
	// The replicated expression.
	Src Value

	// The repeat count.  May be zero.
	N int
}

// NewReplicate replicates the given expression or raw integer n times.
func NewReplicate(src interface{}, n int) *Replicate {
	return &Replicate{Src: ToValue(src), N: n}
}

func (r *Replicate) Width() int {
	return r.N * r.Src.Width()
}
