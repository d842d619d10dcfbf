package hdl

import (
	"fhdl/report"
	"fhdl/util"
)

// Statement represents a statement of the IR: an assignment, a conditional,
// or a case dispatch.  Statement lists are ordered; the elaborator assigns
// them combinational or synchronous semantics based on where the Fragment
// carries them.
type Statement interface {
	stmtNode()
}

// -----------------------------------------------------------------------------

// Assignment drives a target expression from a source expression.  Whether
// the target is actually assignable is an elaborator concern.
type Assignment struct {
	// The assigned expression.
	LHS Value

	// The driving expression.
	RHS Value
}

// Assign builds an assignment of rhs to lhs, coercing a raw integer rhs to a
// constant.  Neither operand is mutated.
func Assign(lhs Value, rhs interface{}) *Assignment {
	return &Assignment{LHS: lhs, RHS: ToValue(rhs)}
}

func (a *Assignment) stmtNode() {}

// -----------------------------------------------------------------------------

// If is a conditional statement.  Else/Elif chains are singly linked through
// the false branch: an Elif is carried as a false branch holding exactly one
// nested If.
type If struct {
	// The branch condition.
	Cond Value

	// The statements executed when the condition holds.
	Then []Statement

	// The statements executed otherwise.  Empty until an Elif or Else is
	// attached.
	Else []Statement
}

// NewIf builds a conditional with the given condition and true branch.
func NewIf(cond interface{}, then ...Statement) *If {
	return &If{Cond: ToValue(cond), Then: then}
}

// Elif attaches another condition/branch pair at the end of the chain.  It
// returns the receiver so that chains read top to bottom.
func (i *If) Elif(cond interface{}, then ...Statement) *If {
	i.insertElse([]Statement{NewIf(cond, then...)})
	return i
}

// ElseDo attaches the final fallback branch at the end of the chain.  It
// returns the receiver.
func (i *If) ElseDo(body ...Statement) *If {
	i.insertElse(body)
	return i
}

// insertElse walks to the terminal false-branch slot of the chain and fills
// it.  Each intermediate link must be a single nested If; finding anything
// else means the chain was already resolved by an ElseDo, which is a bug in
// the host program.
func (i *If) insertElse(clause []Statement) {
	o := i
	for len(o.Else) > 0 {
		report.Assert(len(o.Else) == 1, "Else/Elif attached to an already-resolved conditional chain")
		next, ok := o.Else[0].(*If)
		report.Assert(ok, "Else/Elif attached to an already-resolved conditional chain")
		o = next
	}

	o.Else = clause
}

func (i *If) stmtNode() {}

// -----------------------------------------------------------------------------

// CaseArm is one arm of a Case: a match constant and the statements selected
// by it.  An arm with a nil key is the default arm.
type CaseArm struct {
	// The match constant, or nil for the default arm.
	Key Value

	// The selected statements.
	Body []Statement
}

// When builds a match arm for the given key, coercing a raw integer key to a
// constant.
func When(key interface{}, body ...Statement) CaseArm {
	return CaseArm{Key: ToValue(key), Body: body}
}

// Default builds the default arm.  A Case accepts at most one.
func Default(body ...Statement) CaseArm {
	return CaseArm{Body: body}
}

// Case is a multi-way dispatch on a test expression.  Match arms keep their
// construction order; the default arm is stored separately.
type Case struct {
	// The dispatched expression.
	Test Value

	// The match arms, in order, excluding the default arm.
	Arms []CaseArm

	// The statements of the default arm.  Empty when none was supplied.
	Default []Statement
}

// NewCase builds a case statement from the given arms, separating out the
// default arm.  Supplying two default arms is a usage error.
func NewCase(test interface{}, arms ...CaseArm) *Case {
	c := &Case{Test: ToValue(test), Default: []Statement{}}

	haveDefault := false
	for _, arm := range arms {
		if arm.Key == nil {
			if haveDefault {
				report.RaiseUsage("case with two default arms")
			}
			haveDefault = true
			c.Default = arm.Body
		} else {
			c.Arms = append(c.Arms, arm)
		}
	}

	return c
}

func (c *Case) stmtNode() {}

// -----------------------------------------------------------------------------

// copyStatements returns a fresh copy of a statement list.  Used by Fragment
// merge so that merged fragments never alias their operands' lists.
func copyStatements(stmts []Statement) []Statement {
	return util.CopyOf(stmts)
}
