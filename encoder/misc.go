package encoder

import "github.com/Urethramancer/z80/cpu"

// misc encodes the operand-less control and flag instructions.
func (st *state) misc() error {
	switch st.inst.Op {
	case cpu.NOP:
		st.emit(0x00)
	case cpu.CCF:
		st.emit(0x3F)
	case cpu.CPL:
		st.emit(0x2F)
	case cpu.SCF:
		st.emit(0x37)
	case cpu.DI:
		st.emit(0xF3)
	case cpu.EI:
		st.emit(0xFB)
	case cpu.NEG:
		st.emit(0xED, 0x44)
	}
	return nil
}
