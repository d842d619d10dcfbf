package hdl

import "fhdl/report"

// InstanceItem is one entry of an instance's item bag: an I/O binding, a
// parameter, or a clock/reset port binding.  Instances are an opaque ordered
// bag of items rather than a fixed-shape record because black-box port lists
// vary per target module.
type InstanceItem interface {
	instanceItem()
}

// Enumeration of I/O binding directions.
const (
	IOInput = iota
	IOOutput
	IOInOut
)

// InstanceIO binds a signal to a named port of the instantiated module.
type InstanceIO struct {
	// The binding direction.  Must be one of the enumerated directions.
	Kind int

	// The port name on the instantiated module.
	Name string

	// The bound signal.
	Signal *Signal
}

func (io *InstanceIO) instanceItem() {}

// newIO builds an I/O binding from either an existing signal (reused as-is)
// or a bit-vector type (a fresh signal named after the port is allocated).
// Anything else is a type error.
func newIO(kind int, name string, signalOrType interface{}) *InstanceIO {
	switch v := signalOrType.(type) {
	case *Signal:
		return &InstanceIO{Kind: kind, Name: name, Signal: v}
	case BitVector:
		return &InstanceIO{Kind: kind, Name: name, Signal: NewSignal(v, name)}
	default:
		report.RaiseUsage("instance port %q bound to a %T; want a *Signal or a BitVector", name, signalOrType)
		return nil
	}
}

// Input binds an input port to a signal or allocates one from a type.
func Input(name string, signalOrType interface{}) *InstanceIO {
	return newIO(IOInput, name, signalOrType)
}

// Output binds an output port to a signal or allocates one from a type.
func Output(name string, signalOrType interface{}) *InstanceIO {
	return newIO(IOOutput, name, signalOrType)
}

// InOut binds a bidirectional port to a signal or allocates one from a type.
func InOut(name string, signalOrType interface{}) *InstanceIO {
	return newIO(IOInOut, name, signalOrType)
}

// InstanceParameter is a named elaboration parameter of the instantiated
// module.  Parameter values are opaque to this layer.
type InstanceParameter struct {
	Name  string
	Value interface{}
}

func (p *InstanceParameter) instanceItem() {}

// Parameter builds a named parameter item.
func Parameter(name string, value interface{}) *InstanceParameter {
	return &InstanceParameter{Name: name, Value: value}
}

// Enumeration of clock/reset binding kinds.
const (
	CRClock = iota
	CRReset
)

// InstanceClockRst binds the instantiated module's clock or reset port to a
// named clock domain of the surrounding design.
type InstanceClockRst struct {
	// The binding kind.  Must be one of the enumerated kinds.
	Kind int

	// The port name on the instantiated module.
	Port string

	// The clock domain the port is driven from.
	Domain string
}

func (cr *InstanceClockRst) instanceItem() {}

// ClockPort binds a clock port to a domain; the domain defaults to "sys".
func ClockPort(port string, domain ...string) *InstanceClockRst {
	return &InstanceClockRst{Kind: CRClock, Port: port, Domain: defaultDomain(domain)}
}

// ResetPort binds a reset port to a domain; the domain defaults to "sys".
func ResetPort(port string, domain ...string) *InstanceClockRst {
	return &InstanceClockRst{Kind: CRReset, Port: port, Domain: defaultDomain(domain)}
}

func defaultDomain(domain []string) string {
	if len(domain) > 0 {
		return domain[0]
	}

	return "sys"
}

// -----------------------------------------------------------------------------

// Instance describes a black-box sub-module: the target module name plus an
// ordered bag of bindings and parameters.  Instances have identity; they are
// always handled through pointers.
type Instance struct {
	// The name of the instantiated module.
	Of string

	// The bound items, in order.
	Items []InstanceItem

	// The instance name override.  Defaults to the module name.
	NameOverride string
}

// NewInstance builds an instance of the named module with the given items.
func NewInstance(of string, items ...InstanceItem) *Instance {
	return &Instance{Of: of, Items: items, NameOverride: of}
}

// GetIO scans the item bag for the first I/O binding with the given port name
// and returns its signal.  The second result reports whether one was found.
func (inst *Instance) GetIO(name string) (*Signal, bool) {
	for _, item := range inst.Items {
		if io, ok := item.(*InstanceIO); ok && io.Name == name {
			return io.Signal, true
		}
	}

	return nil, false
}

// AccessField resolves a field access on the instance as an I/O port lookup,
// so that an Array of instances can be selected and then port-accessed
// through a Proxy.
func (inst *Instance) AccessField(name string) (interface{}, bool) {
	sig, ok := inst.GetIO(name)
	if !ok {
		return nil, false
	}

	return sig, true
}
