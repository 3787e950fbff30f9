package encoder

import "github.com/Urethramancer/z80/cpu"

// The index register halves have no encoding of their own. Access is
// synthesized by pushing a scratch pair and the index register,
// popping the index bytes into the scratch pair, running the real
// opcode against the scratch half, then restoring. The scratch pair
// is HL unless the other operand already uses H or L, in which case
// DE aliases the index bytes instead.

// hlSlot returns the register code the half occupies once the index
// register is aliased into HL.
func hlSlot(r cpu.Reg) byte {
	if r.IsHighHalf() {
		return 4 // h
	}
	return 5 // l
}

// deSlot returns the register code the half occupies once the index
// register is aliased into DE.
func deSlot(r cpu.Reg) byte {
	if r.IsHighHalf() {
		return 2 // d
	}
	return 3 // e
}

// synthHL wraps body in the HL-scratch shuffle. With writeback the
// modified scratch pair is pushed back into the index register before
// both are restored; without it only HL is restored.
func (st *state) synthHL(pfx byte, writeback bool, body func()) {
	st.emit(0xE5)            // push hl
	st.emit(pfx, 0xE5)       // push ix/iy
	st.emit(0xE1)            // pop hl
	body()
	if writeback {
		st.emit(0xE5)      // push hl
		st.emit(pfx, 0xE1) // pop ix/iy
	}
	st.emit(0xE1) // pop hl
}

// synthDE wraps body in the DE-scratch shuffle.
func (st *state) synthDE(pfx byte, writeback bool, body func()) {
	st.emit(0xD5)            // push de
	st.emit(pfx, 0xE5)       // push ix/iy
	st.emit(0xD1)            // pop de
	body()
	if writeback {
		st.emit(0xD5)      // push de
		st.emit(pfx, 0xE1) // pop ix/iy
	}
	st.emit(0xD1) // pop de
}
