package encoder

import (
	"fmt"

	"github.com/Urethramancer/z80/cpu"
	"github.com/Urethramancer/z80/fixup"
)

// pseudo expands the relaxable jump forms. True short/long selection
// needs final branch distances, which are unknown here, so the choice
// is fixed by Options: the long absolute form is always valid, the
// short PC-relative form is smaller but unchecked for range.
func (st *state) pseudo(form cpu.Form) error {
	if err := st.checkOperands(form.Operands); err != nil {
		return err
	}

	switch st.inst.Op {
	case cpu.JQ:
		o := st.inst.Operands[0]
		if !o.IsExpr() {
			return st.badf("operand should be an expression")
		}
		if st.opts.RelativeJumps {
			st.emit(0x18) // jr
			st.addFixup(fixup.Kind8PCRel, o.Expr)
			st.emit(0x00)
			return nil
		}
		st.emit(0xC3) // jp
		st.addFixup(fixup.Kind16, o.Expr)
		st.emit(0x00, 0x00)
		return nil

	case cpu.JQCC:
		target := st.inst.Operands[0]
		if !target.IsExpr() {
			return st.badf("first operand should be an expression")
		}
		if st.opts.RelativeJumps {
			// jr only encodes nz, z, nc, c.
			cc, err := st.condCode(st.inst.Operands[1], 4, "second operand")
			if err != nil {
				return err
			}
			st.emit(cc<<3 | 0x20)
			st.addFixup(fixup.Kind8PCRel, target.Expr)
			st.emit(0x00)
			return nil
		}
		cc, err := st.condCode(st.inst.Operands[1], 8, "second operand")
		if err != nil {
			return err
		}
		st.emit(cc<<3 | 0xC2)
		st.addFixup(fixup.Kind16, target.Expr)
		st.emit(0x00, 0x00)
		return nil
	}
	return fmt.Errorf("%w: %s: no pseudo expansion", ErrUnsupported, st.inst.Op)
}
