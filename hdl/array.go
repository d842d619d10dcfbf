package hdl

import "fhdl/report"

// FieldAccessible is the capability a candidate object must declare for a
// Proxy to forward field access to it.  The comma-ok result distinguishes a
// missing field from a present one.
type FieldAccessible interface {
	AccessField(name string) (interface{}, bool)
}

// Indexable is the capability a candidate object must declare for a Proxy to
// forward integer indexing to it.  Expression values need not declare it:
// indexing an expression candidate selects a bit, as it does everywhere else
// in the algebra.
type Indexable interface {
	AccessIndex(i int) (interface{}, bool)
}

// -----------------------------------------------------------------------------

// Array is an ordered sequence of elaboration-time objects that can be
// indexed by a runtime expression.  Indexing by a plain integer is ordinary
// Go slice indexing; indexing by an expression yields a Proxy that defers the
// multiplexer to elaboration.
type Array []interface{}

// Select indexes the array with a runtime expression (or raw integer, which
// is coerced to a constant selector).
func (a Array) Select(key interface{}) *Proxy {
	return &Proxy{Choices: a, Key: ToValue(key)}
}

// -----------------------------------------------------------------------------

// Proxy is the lazily-distributed view produced by selecting an Array with an
// expression: a list of candidate objects plus the selector that will pick
// among them during elaboration.  Field and index access forward pairwise
// across all candidates and re-wrap as a new Proxy with the same selector, so
// host code can write accessor chains without resolving the selection.
type Proxy struct {
	// The candidate objects, possibly themselves expressions.
	Choices []interface{}

	// The selector expression.
	Key Value
}

// Field applies a field access to every candidate and re-wraps the results.
// Every candidate must either be a nested Proxy or declare FieldAccessible
// and have the field; anything else is a usage error.
func (p *Proxy) Field(name string) *Proxy {
	picked := make([]interface{}, len(p.Choices))
	for i, choice := range p.Choices {
		switch c := choice.(type) {
		case *Proxy:
			picked[i] = c.Field(name)
		case FieldAccessible:
			v, ok := c.AccessField(name)
			if !ok {
				report.RaiseUsage("array candidate %T has no field %q", choice, name)
			}
			picked[i] = v
		default:
			report.RaiseUsage("array candidate %T does not support field access", choice)
		}
	}

	return &Proxy{Choices: picked, Key: p.Key}
}

// Index applies an integer index to every candidate and re-wraps the results.
// Expression candidates select the indexed bit.
func (p *Proxy) Index(i int) *Proxy {
	picked := make([]interface{}, len(p.Choices))
	for n, choice := range p.Choices {
		switch c := choice.(type) {
		case *Proxy:
			picked[n] = c.Index(i)
		case Indexable:
			v, ok := c.AccessIndex(i)
			if !ok {
				report.RaiseUsage("array candidate %T has no index %d", choice, i)
			}
			picked[n] = v
		case Value:
			picked[n] = Bit(c, i)
		default:
			report.RaiseUsage("array candidate %T does not support indexing", choice)
		}
	}

	return &Proxy{Choices: picked, Key: p.Key}
}

// Width returns the common width of the expression candidates.  The
// candidates must agree; a proxy over candidates of differing widths (or
// over no expression candidates at all) has no width and is a usage error.
func (p *Proxy) Width() int {
	w := -1
	for _, choice := range p.Choices {
		v, ok := choice.(Value)
		if !ok {
			continue
		}

		if w == -1 {
			w = v.Width()
		} else if v.Width() != w {
			report.RaiseUsage("array candidates disagree on width: %d vs %d", w, v.Width())
		}
	}

	if w == -1 {
		report.RaiseUsage("array selection over non-expression candidates has no width")
	}

	return w
}
