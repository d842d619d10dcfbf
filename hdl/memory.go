package hdl

// Enumeration of read/write conflict-resolution modes: the policy applied
// when a port reads the address another (or the same) port writes in the
// same cycle.  Carried through to the elaborator unchanged.
const (
	ReadFirst = iota // The read returns the old contents.
	WriteFirst       // The read returns the newly written data.
	NoChange         // The read output holds its previous value.
)

// MemoryPort describes one read and/or write port of a memory block together
// with its timing and conflict policy.  Pure data: overlapping writes,
// duplicate ports, and granularity correctness are elaborator concerns.
type MemoryPort struct {
	// The address signal.
	Adr *Signal

	// The read-data signal.
	DatR *Signal

	// The write-enable and write-data signals.  Nil for read-only ports.
	WE   *Signal
	DatW *Signal

	// Whether reads are asynchronous (combinational) rather than registered.
	AsyncRead bool

	// The read-enable signal.  Nil when reads are unconditional.
	RE *Signal

	// The write granularity in bits.  Zero means whole-word writes.
	WEGranularity int

	// The conflict-resolution mode.  Must be one of the enumerated modes.
	Mode int

	// The clock domain the port is synchronous to.
	ClockDomain string
}

// NewMemoryPort builds a port over the given address and read-data signals
// with the reference defaults: whole-word synchronous reads, write-first
// conflict resolution, domain "sys".  Optional fields are set directly on the
// result before the port is attached to a memory.
func NewMemoryPort(adr, datR *Signal) *MemoryPort {
	return &MemoryPort{Adr: adr, DatR: datR, Mode: WriteFirst, ClockDomain: "sys"}
}

// Memory describes a memory block: a word width, a depth in words, the
// ordered list of ports, and optional initial contents.
type Memory struct {
	// The word width in bits.
	Width int

	// The number of words.
	Depth int

	// The ports, in order.  Attached at construction time only.
	Ports []*MemoryPort

	// The initial contents, one word per entry.  Nil when uninitialized.
	Init []int
}

// NewMemory builds a memory of the given geometry with the given ports.
func NewMemory(width, depth int, ports ...*MemoryPort) *Memory {
	return &Memory{Width: width, Depth: depth, Ports: ports}
}
