package encoder

import "github.com/Urethramancer/z80/cpu"

// rotateBase returns the operation bits within the 0xCB page for the
// rotate and shift instructions.
func rotateBase(op cpu.Op) byte {
	switch op {
	case cpu.RLC8o, cpu.RLC8p, cpu.RLC8r:
		return 0x00
	case cpu.RRC8o, cpu.RRC8p, cpu.RRC8r:
		return 0x08
	case cpu.RL8o, cpu.RL8p, cpu.RL8r:
		return 0x10
	case cpu.RR8o, cpu.RR8p, cpu.RR8r:
		return 0x18
	case cpu.SLA8o, cpu.SLA8p, cpu.SLA8r:
		return 0x20
	case cpu.SRA8o, cpu.SRA8p, cpu.SRA8r:
		return 0x28
	}
	return 0x38 // srl
}

// rotate encodes the rotate and shift forms.
func (st *state) rotate() error {
	base := rotateBase(st.inst.Op)
	switch st.inst.Op {
	case cpu.RL8o, cpu.RLC8o, cpu.RR8o, cpu.RRC8o,
		cpu.SLA8o, cpu.SRA8o, cpu.SRL8o:
		pfx, err := st.indexPrefix(st.inst.Operands[0], "first operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(st.inst.Operands[1], "second operand")
		if err != nil {
			return err
		}
		st.emit(pfx, 0xCB, d, base|0x06)
		return nil

	case cpu.RL8p, cpu.RLC8p, cpu.RR8p, cpu.RRC8p,
		cpu.SLA8p, cpu.SRA8p, cpu.SRL8p:
		o := st.inst.Operands[0]
		if !o.IsReg() {
			return st.badf("operand should be a register")
		}
		if o.Reg != cpu.HL {
			return st.badf("the only allowed register is hl")
		}
		st.emit(0xCB, base|0x06)
		return nil
	}

	// Register form.
	o := st.inst.Operands[0]
	if !o.IsReg() {
		return st.badf("operand should be a register")
	}
	if code, ok := cpu.RegCodes[o.Reg]; ok {
		st.emit(0xCB, base|code)
		return nil
	}
	if o.Reg.IsIndexHalf() {
		st.synthHL(o.Reg.IndexPrefix(), true, func() {
			st.emit(0xCB, base|hlSlot(o.Reg))
		})
		return nil
	}
	return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")
}
