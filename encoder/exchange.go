package encoder

import "github.com/Urethramancer/z80/cpu"

// exchange encodes the register exchange forms.
func (st *state) exchange() error {
	switch st.inst.Op {
	case cpu.EXAF:
		st.emit(0x08)
	case cpu.EXX:
		st.emit(0xD9)
	case cpu.EX16DE:
		st.emit(0xEB)
	case cpu.EX16SP:
		ops := st.inst.Operands
		if !ops[0].IsReg() || !ops[1].IsReg() {
			return st.badf("both operands should be registers")
		}
		if ops[0].Reg != ops[1].Reg {
			return st.badf("operands should be the same register")
		}
		pfx, err := st.pairPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		if pfx != 0 {
			st.emit(pfx)
		}
		st.emit(0xE3)
	}
	return nil
}
