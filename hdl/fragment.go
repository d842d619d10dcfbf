package hdl

import "fhdl/util"

// SimContext is the per-step context an external simulator passes to
// simulation hooks.  The cycle counter is monotonically increasing and is
// negative during the pre-start initialization pass.
type SimContext interface {
	CycleCounter() int
}

// SimHook is an opaque callback stored on a Fragment and invoked once per
// simulation step by an external simulator.  Hooks reporting Initialize are
// additionally invoked once before the first step.
type SimHook interface {
	Run(sim SimContext)
	Initialize() bool
}

// -----------------------------------------------------------------------------

// Fragment is the unit of design composition: combinational statements,
// per-clock-domain synchronous statements, black-box instances, memories, and
// simulation hooks for part or all of a design.  Fragments are created
// bottom-up by host code, merged with Add, and finally handed read-only to an
// elaborator.
type Fragment struct {
	// The combinational statements, in order.
	Comb []Statement

	// The synchronous statements, in order, keyed by clock-domain name.
	Sync map[string][]Statement

	// The instantiated sub-modules, in order.
	Instances []*Instance

	// The memory blocks, in order.
	Memories []*Memory

	// The simulation hooks, in order.
	Sim []SimHook
}

// NewFragment returns an empty fragment with fresh containers.  Containers
// are never shared between fragments.
func NewFragment() *Fragment {
	return &Fragment{Sync: map[string][]Statement{}}
}

// CombFragment returns a fragment holding only the given combinational
// statements.
func CombFragment(stmts ...Statement) *Fragment {
	f := NewFragment()
	f.Comb = stmts
	return f
}

// SyncFragment returns a fragment holding the given synchronous statements in
// the "sys" domain, the domain a bare statement list belongs to.
func SyncFragment(stmts ...Statement) *Fragment {
	return SyncFragmentIn("sys", stmts...)
}

// SyncFragmentIn returns a fragment holding the given synchronous statements
// in the named clock domain.
func SyncFragmentIn(domain string, stmts ...Statement) *Fragment {
	f := NewFragment()
	f.Sync[domain] = stmts
	return f
}

// Add merges two fragments into a new one: statement, instance, memory, and
// hook lists concatenate in left-then-right order, and sync lists concatenate
// per shared clock-domain key.  Merge never de-duplicates, and the result
// shares no containers with either operand.
func (f *Fragment) Add(other *Fragment) *Fragment {
	newSync := make(map[string][]Statement, len(f.Sync)+len(other.Sync))
	for k, v := range f.Sync {
		newSync[k] = copyStatements(v)
	}
	for k, v := range other.Sync {
		newSync[k] = append(newSync[k], v...)
	}

	return &Fragment{
		Comb:      util.Concat(f.Comb, other.Comb),
		Sync:      newSync,
		Instances: util.Concat(f.Instances, other.Instances),
		Memories:  util.Concat(f.Memories, other.Memories),
		Sim:       util.Concat(f.Sim, other.Sim),
	}
}

// ClockDomains returns the complete set of clock-domain names the fragment
// depends on: its sync keys, the domains referenced by instance clock/reset
// bindings, and the domains referenced by memory ports.  The elaborator uses
// this set to insert or validate ClockDomain definitions.
func (f *Fragment) ClockDomains() map[string]struct{} {
	domains := make(map[string]struct{}, len(f.Sync))
	for k := range f.Sync {
		domains[k] = struct{}{}
	}

	for _, inst := range f.Instances {
		for _, item := range inst.Items {
			if cr, ok := item.(*InstanceClockRst); ok {
				domains[cr.Domain] = struct{}{}
			}
		}
	}

	for _, mem := range f.Memories {
		for _, port := range mem.Ports {
			domains[port.ClockDomain] = struct{}{}
		}
	}

	return domains
}

// RenameClockDomain renames the clock domain old to new throughout the
// fragment: the sync key moves, and every instance clock/reset binding and
// memory port referencing old is rewritten.  Entries bound to other domains
// are left untouched.
func (f *Fragment) RenameClockDomain(old, new string) {
	if stmts, ok := f.Sync[old]; ok {
		f.Sync[new] = stmts
		delete(f.Sync, old)
	}

	for _, inst := range f.Instances {
		for _, item := range inst.Items {
			if cr, ok := item.(*InstanceClockRst); ok && cr.Domain == old {
				cr.Domain = new
			}
		}
	}

	for _, mem := range f.Memories {
		for _, port := range mem.Ports {
			if port.ClockDomain == old {
				port.ClockDomain = new
			}
		}
	}
}

// CallSim invokes the fragment's simulation hooks for one step.  Before the
// first step the simulator runs a pass with a negative cycle counter; only
// hooks marked Initialize run during it.
func (f *Fragment) CallSim(sim SimContext) {
	for _, hook := range f.Sim {
		if sim.CycleCounter() >= 0 || hook.Initialize() {
			hook.Run(sim)
		}
	}
}

// -----------------------------------------------------------------------------

// ClockDomain is a named pair of clock and reset signals.  The signals are
// independent identities; the type is purely a naming and grouping
// convenience consumed by the fragment's clock-domain bookkeeping.
type ClockDomain struct {
	Clk *Signal
	Rst *Signal
}

// NewClockDomain derives a clock domain from a single base name: the clock
// and reset signals get the override names `<name>_clk` and `<name>_rst`.
func NewClockDomain(name string) *ClockDomain {
	return NewClockDomainCR(name+"_clk", name+"_rst")
}

// NewClockDomainCR builds a clock domain from explicit clock and reset signal
// names, used verbatim as override names.
func NewClockDomainCR(clkName, rstName string) *ClockDomain {
	clk := NewSignal(Unsigned(1), "")
	clk.NameOverride = clkName

	rst := NewSignal(Unsigned(1), "")
	rst.NameOverride = rstName

	return &ClockDomain{Clk: clk, Rst: rst}
}
