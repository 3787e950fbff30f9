package encoder

import (
	"github.com/Urethramancer/z80/cpu"
	"github.com/Urethramancer/z80/fixup"
)

// Index register prefixes.
const (
	prefixIX = 0xDD
	prefixIY = 0xFD
)

// indexPrefix returns the DD/FD prefix for an index register operand.
func (st *state) indexPrefix(o cpu.Operand, what string) (byte, error) {
	if !o.IsReg() {
		return 0, st.badf("%s should be a register", what)
	}
	switch o.Reg {
	case cpu.IX:
		return prefixIX, nil
	case cpu.IY:
		return prefixIY, nil
	}
	return 0, st.badf("allowed registers for %s are ix, iy", what)
}

// emitAddr16 writes a 16-bit address or immediate operand: the bytes
// in little-endian order for a constant, two placeholder bytes plus a
// 16-bit fixup for an unresolved expression.
func (st *state) emitAddr16(o cpu.Operand, what string) error {
	switch {
	case o.IsExpr():
		st.addFixup(fixup.Kind16, o.Expr)
		st.emit(0x00, 0x00)
	case o.IsImm():
		st.emit(byte(o.Imm), byte(o.Imm>>8))
	default:
		return st.badf("%s should be an immediate or an expression", what)
	}
	return nil
}

// condCode validates a condition code operand against an upper bound.
func (st *state) condCode(o cpu.Operand, limit byte, what string) (byte, error) {
	if !o.IsImm() {
		return 0, st.badf("%s should be an immediate", what)
	}
	cc := byte(o.Imm)
	if cc >= limit {
		return 0, st.badf("%s should be in range 0..%d", what, limit-1)
	}
	return cc, nil
}

// bitIndex validates a bit index operand for the bit instructions.
func (st *state) bitIndex(o cpu.Operand) (byte, error) {
	if !o.IsImm() {
		return 0, st.badf("first operand should be an immediate")
	}
	b := byte(o.Imm)
	if b >= 8 {
		return 0, st.badf("first operand should be in range 0..7")
	}
	return b, nil
}

// displacement validates an index displacement operand.
func (st *state) displacement(o cpu.Operand, what string) (byte, error) {
	if !o.IsImm() {
		return 0, st.badf("%s should be an immediate", what)
	}
	return byte(o.Imm), nil
}
