package cpu

// Subtarget describes the CPU variant being encoded for.
type Subtarget struct {
	// Name of the CPU model, e.g. "z80" or "ez80".
	Name string
	// ADL is true when the eZ80 runs with 24-bit registers. Forms
	// requiring it are rejected by the encoder either way, but the
	// flag travels with the instruction stream for later stages.
	ADL bool
}

// Z80 is the default classic subtarget.
var Z80 = Subtarget{Name: "z80"}

// EZ80 is the extended subtarget in ADL mode.
var EZ80 = Subtarget{Name: "ez80", ADL: true}
