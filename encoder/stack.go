package encoder

import "github.com/Urethramancer/z80/cpu"

// stack encodes the push and pop forms.
func (st *state) stack() error {
	switch st.inst.Op {
	case cpu.PUSH16AF:
		st.emit(0xF5)
		return nil
	case cpu.POP16AF:
		st.emit(0xF1)
		return nil
	}

	o := st.inst.Operands[0]
	if !o.IsReg() {
		return st.badf("operand should be a register")
	}
	var op byte = 0xC5 // push
	if st.inst.Op == cpu.POP16r {
		op = 0xC1
	}
	switch o.Reg {
	case cpu.BC:
		st.emit(op)
	case cpu.DE:
		st.emit(op | 0x10)
	case cpu.HL:
		st.emit(op | 0x20)
	case cpu.IX:
		st.emit(prefixIX, op|0x20)
	case cpu.IY:
		st.emit(prefixIY, op|0x20)
	default:
		return st.badf("allowed registers are bc, de, hl, ix, iy")
	}
	return nil
}
