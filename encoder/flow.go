package encoder

import (
	"github.com/Urethramancer/z80/cpu"
	"github.com/Urethramancer/z80/fixup"
)

// flow encodes calls, returns and register jumps.
func (st *state) flow() error {
	ops := st.inst.Operands
	switch st.inst.Op {
	case cpu.CALL16:
		st.emit(0xCD)
		return st.emitAddr16(ops[0], "operand")

	case cpu.CALL16CC:
		cc, err := st.condCode(ops[1], 8, "second operand")
		if err != nil {
			return err
		}
		st.emit(cc<<3 | 0xC4)
		if ops[0].IsExpr() {
			// Only a plain symbol reference can be a call target.
			if !ops[0].Expr.IsSymRef() {
				return st.badf("first operand expression should be a call target")
			}
			st.addFixup(fixup.Kind16, ops[0].Expr)
			st.emit(0x00, 0x00)
			return nil
		}
		return st.emitAddr16(ops[0], "first operand")

	case cpu.JP16r:
		pfx, err := st.pairPrefix(ops[0], "operand")
		if err != nil {
			return err
		}
		if pfx != 0 {
			st.emit(pfx)
		}
		st.emit(0xE9)

	case cpu.RET16:
		st.emit(0xC9)

	case cpu.RET16CC:
		cc, err := st.condCode(ops[0], 8, "operand")
		if err != nil {
			return err
		}
		st.emit(cc<<3 | 0xC0)

	case cpu.RETI16:
		st.emit(0xED, 0x4D)

	case cpu.RETN16:
		st.emit(0xED, 0x45)
	}
	return nil
}
