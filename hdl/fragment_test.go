package hdl

import (
	"reflect"
	"testing"
)

func stmts(n int) []Statement {
	s := NewSignal(Unsigned(8), "s")

	out := make([]Statement, n)
	for i := range out {
		out[i] = Assign(s, i)
	}
	return out
}

func TestMergeComb(t *testing.T) {
	body := stmts(3)
	f1 := CombFragment(body[0], body[1])
	f2 := CombFragment(body[2])

	m := f1.Add(f2)

	if !reflect.DeepEqual(m.Comb, []Statement{body[0], body[1], body[2]}) {
		t.Error("merged comb list should be the operands' lists concatenated in order")
	}

	if !reflect.DeepEqual(f1.Comb, []Statement{body[0], body[1]}) {
		t.Error("merge must not mutate its left operand")
	}

	// The merged list must not alias either operand's backing array.
	m.Comb[0] = body[2]
	if f1.Comb[0] != body[0] {
		t.Error("merged comb list aliases the left operand")
	}
}

func TestMergeSync(t *testing.T) {
	body := stmts(3)
	f1 := SyncFragment(body[0])
	f2 := SyncFragmentIn("sys", body[1])
	f2.Sync["pix"] = []Statement{body[2]}

	m := f1.Add(f2)

	want := map[string][]Statement{
		"sys": {body[0], body[1]},
		"pix": {body[2]},
	}
	if !reflect.DeepEqual(m.Sync, want) {
		t.Errorf("merged sync map = %v, want %v", m.Sync, want)
	}

	if !reflect.DeepEqual(f1.Sync, map[string][]Statement{"sys": {body[0]}}) {
		t.Error("merge must not mutate its left operand's sync map")
	}
}

func TestMergeInstancesAndMemories(t *testing.T) {
	i1 := NewInstance("a")
	i2 := NewInstance("b")
	mem := NewMemory(8, 16)

	f1 := NewFragment()
	f1.Instances = []*Instance{i1}
	f2 := NewFragment()
	f2.Instances = []*Instance{i2}
	f2.Memories = []*Memory{mem}

	m := f1.Add(f2)

	if !reflect.DeepEqual(m.Instances, []*Instance{i1, i2}) {
		t.Error("instance lists should concatenate in order")
	}

	if !reflect.DeepEqual(m.Memories, []*Memory{mem}) {
		t.Error("memory lists should concatenate in order")
	}
}

func TestClockDomains(t *testing.T) {
	f := SyncFragment(stmts(1)...)
	f.Instances = []*Instance{
		NewInstance("dac", ResetPort("rst", "pix")),
	}

	got := f.ClockDomains()
	want := map[string]struct{}{"sys": {}, "pix": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClockDomains() = %v, want %v", got, want)
	}
}

func TestClockDomainsFromMemories(t *testing.T) {
	adr := NewSignal(Unsigned(4), "adr")
	datR := NewSignal(Unsigned(8), "dat_r")

	port := NewMemoryPort(adr, datR)
	port.ClockDomain = "vga"

	f := NewFragment()
	f.Memories = []*Memory{NewMemory(8, 16, port)}

	if _, ok := f.ClockDomains()["vga"]; !ok {
		t.Error("memory port domains should appear in ClockDomains()")
	}
}

// Renaming must key off the caller's arguments: a domain named anything other
// than the literal string "old" still gets renamed, and unrelated domains
// survive untouched.
func TestRenameClockDomain(t *testing.T) {
	body := stmts(2)
	f := SyncFragmentIn("pix", body[0])
	f.Sync["sys"] = []Statement{body[1]}

	adr := NewSignal(Unsigned(4), "adr")
	datR := NewSignal(Unsigned(8), "dat_r")
	port := NewMemoryPort(adr, datR)
	port.ClockDomain = "pix"

	f.Instances = []*Instance{NewInstance("dac", ClockPort("clk", "pix"), ResetPort("rst", "sys"))}
	f.Memories = []*Memory{NewMemory(8, 16, port)}

	f.RenameClockDomain("pix", "vga")

	if _, ok := f.Sync["pix"]; ok {
		t.Error("the old sync key should be gone after renaming")
	}

	if !reflect.DeepEqual(f.Sync["vga"], []Statement{body[0]}) {
		t.Error("the old domain's statements should move to the new key")
	}

	if !reflect.DeepEqual(f.Sync["sys"], []Statement{body[1]}) {
		t.Error("unrelated domains must be left untouched")
	}

	cr := f.Instances[0].Items[0].(*InstanceClockRst)
	if cr.Domain != "vga" {
		t.Errorf("instance clock binding domain = %q, want %q", cr.Domain, "vga")
	}

	rst := f.Instances[0].Items[1].(*InstanceClockRst)
	if rst.Domain != "sys" {
		t.Errorf("unrelated instance binding renamed to %q", rst.Domain)
	}

	if port.ClockDomain != "vga" {
		t.Errorf("memory port domain = %q, want %q", port.ClockDomain, "vga")
	}
}

// -----------------------------------------------------------------------------

type recordingHook struct {
	init   bool
	cycles []int
}

func (h *recordingHook) Run(sim SimContext) {
	h.cycles = append(h.cycles, sim.CycleCounter())
}

func (h *recordingHook) Initialize() bool {
	return h.init
}

type fakeSim struct {
	cycle int
}

func (fs *fakeSim) CycleCounter() int {
	return fs.cycle
}

func TestCallSim(t *testing.T) {
	plain := &recordingHook{}
	initHook := &recordingHook{init: true}

	f := NewFragment()
	f.Sim = []SimHook{plain, initHook}

	sim := &fakeSim{cycle: -1}
	f.CallSim(sim)
	sim.cycle = 0
	f.CallSim(sim)
	sim.cycle = 1
	f.CallSim(sim)

	if !reflect.DeepEqual(plain.cycles, []int{0, 1}) {
		t.Errorf("plain hook ran at cycles %v, want [0 1]", plain.cycles)
	}

	if !reflect.DeepEqual(initHook.cycles, []int{-1, 0, 1}) {
		t.Errorf("initialize hook ran at cycles %v, want [-1 0 1]", initHook.cycles)
	}
}

// -----------------------------------------------------------------------------

func TestClockDomainDerivedNames(t *testing.T) {
	cd := NewClockDomain("pix")

	if cd.Clk.EffectiveName() != "pix_clk" || cd.Rst.EffectiveName() != "pix_rst" {
		t.Errorf("derived names = %q/%q, want pix_clk/pix_rst",
			cd.Clk.EffectiveName(), cd.Rst.EffectiveName())
	}

	if cd.Clk == cd.Rst {
		t.Error("clock and reset must be independent signals")
	}
}

func TestClockDomainExplicitNames(t *testing.T) {
	cd := NewClockDomainCR("clk50", "por_n")

	if cd.Clk.EffectiveName() != "clk50" || cd.Rst.EffectiveName() != "por_n" {
		t.Errorf("explicit names = %q/%q, want clk50/por_n",
			cd.Clk.EffectiveName(), cd.Rst.EffectiveName())
	}
}
