package encoder

import "github.com/Urethramancer/z80/cpu"

// alu8Base returns the register-form base opcode for the 8-bit
// accumulator operations. The immediate form is base|0x46 and the
// (hl)/indexed forms are base|0x06.
func alu8Base(op cpu.Op) byte {
	switch op {
	case cpu.ADD8ai, cpu.ADD8ao, cpu.ADD8ap, cpu.ADD8ar:
		return 0x80
	case cpu.ADC8ai, cpu.ADC8ao, cpu.ADC8ap, cpu.ADC8ar:
		return 0x88
	case cpu.SUB8ai, cpu.SUB8ao, cpu.SUB8ap, cpu.SUB8ar:
		return 0x90
	case cpu.SBC8ai, cpu.SBC8ao, cpu.SBC8ap, cpu.SBC8ar:
		return 0x98
	case cpu.AND8ai, cpu.AND8ao, cpu.AND8ap, cpu.AND8ar:
		return 0xA0
	case cpu.XOR8ai, cpu.XOR8ao, cpu.XOR8ap, cpu.XOR8ar:
		return 0xA8
	case cpu.OR8ai, cpu.OR8ao, cpu.OR8ap, cpu.OR8ar:
		return 0xB0
	case cpu.CP8ai, cpu.CP8ao, cpu.CP8ap, cpu.CP8ar:
		return 0xB8
	}
	return 0
}

// alu8 encodes the 8-bit accumulator arithmetic and logic forms.
func (st *state) alu8() error {
	base := alu8Base(st.inst.Op)
	switch st.inst.Op {
	case cpu.ADD8ai, cpu.ADC8ai, cpu.SUB8ai, cpu.SBC8ai,
		cpu.AND8ai, cpu.XOR8ai, cpu.OR8ai, cpu.CP8ai:
		o := st.inst.Operands[0]
		if !o.IsImm() {
			return st.badf("operand should be an immediate")
		}
		st.emit(base|0x46, byte(o.Imm))
		return nil

	case cpu.ADD8ao, cpu.ADC8ao, cpu.SUB8ao, cpu.SBC8ao,
		cpu.AND8ao, cpu.XOR8ao, cpu.OR8ao, cpu.CP8ao:
		pfx, err := st.indexPrefix(st.inst.Operands[0], "first operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(st.inst.Operands[1], "second operand")
		if err != nil {
			return err
		}
		st.emit(pfx, base|0x06, d)
		return nil

	case cpu.ADD8ap, cpu.ADC8ap, cpu.SUB8ap, cpu.SBC8ap,
		cpu.AND8ap, cpu.XOR8ap, cpu.OR8ap, cpu.CP8ap:
		o := st.inst.Operands[0]
		if !o.IsReg() {
			return st.badf("operand should be a register")
		}
		if o.Reg != cpu.HL {
			return st.badf("the only allowed register is hl")
		}
		st.emit(base | 0x06)
		return nil
	}

	// Register form, including the synthesized index halves.
	o := st.inst.Operands[0]
	if !o.IsReg() {
		return st.badf("operand should be a register")
	}
	if code, ok := cpu.RegCodes[o.Reg]; ok {
		st.emit(base | code)
		return nil
	}
	if o.Reg.IsIndexHalf() {
		st.synthHL(o.Reg.IndexPrefix(), false, func() {
			st.emit(base | hlSlot(o.Reg))
		})
		return nil
	}
	return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")
}

// pairPrefix validates a 16-bit operand in the hl/ix/iy set and
// returns its index prefix, 0 for hl.
func (st *state) pairPrefix(o cpu.Operand, what string) (byte, error) {
	if !o.IsReg() {
		return 0, st.badf("%s should be a register", what)
	}
	switch o.Reg {
	case cpu.HL:
		return 0, nil
	case cpu.IX:
		return prefixIX, nil
	case cpu.IY:
		return prefixIY, nil
	}
	return 0, st.badf("allowed registers for %s are hl, ix, iy", what)
}

// arith16 encodes the 16-bit add and subtract-with-carry forms.
func (st *state) arith16() error {
	ops := st.inst.Operands
	switch st.inst.Op {
	case cpu.ADD16SP, cpu.ADD16aa:
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
		if st.inst.Op == cpu.ADD16SP {
			st.emit(0x39)
		} else {
			st.emit(0x29)
		}

	case cpu.ADD16ao:
		if !ops[0].IsReg() || !ops[1].IsReg() {
			return st.badf("first two operands should be registers")
		}
		if ops[0].Reg != ops[1].Reg {
			return st.badf("first two operands should be the same register")
		}
		pfx, err := st.pairPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		var op byte
		switch {
		case ops[2].IsReg() && ops[2].Reg == cpu.BC:
			op = 0x09
		case ops[2].IsReg() && ops[2].Reg == cpu.DE:
			op = 0x19
		default:
			return st.badf("allowed registers for the third operand are bc, de")
		}
		if pfx != 0 {
			st.emit(pfx)
		}
		st.emit(op)

	case cpu.SBC16SP:
		st.emit(0xED, 0x72)

	case cpu.SBC16aa:
		st.emit(0xED, 0x62)

	case cpu.SBC16ao:
		if !ops[0].IsReg() {
			return st.badf("operand should be a register")
		}
		switch ops[0].Reg {
		case cpu.BC:
			st.emit(0xED, 0x42)
		case cpu.DE:
			st.emit(0xED, 0x52)
		default:
			return st.badf("allowed registers are bc, de")
		}
	}
	return nil
}

// incdec encodes the increment and decrement forms.
func (st *state) incdec() error {
	dec := false
	switch st.inst.Op {
	case cpu.DEC16SP, cpu.DEC16r, cpu.DEC8o, cpu.DEC8p, cpu.DEC8r:
		dec = true
	}

	switch st.inst.Op {
	case cpu.INC16SP:
		st.emit(0x33)
		return nil
	case cpu.DEC16SP:
		st.emit(0x3B)
		return nil

	case cpu.INC16r, cpu.DEC16r:
		o := st.inst.Operands[0]
		if !o.IsReg() {
			return st.badf("operand should be a register")
		}
		var op byte = 0x03
		if dec {
			op = 0x0B
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

	case cpu.INC8o, cpu.DEC8o:
		pfx, err := st.indexPrefix(st.inst.Operands[0], "first operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(st.inst.Operands[1], "second operand")
		if err != nil {
			return err
		}
		if dec {
			st.emit(pfx, 0x35, d)
		} else {
			st.emit(pfx, 0x34, d)
		}
		return nil

	case cpu.INC8p, cpu.DEC8p:
		pfx, err := st.pairPrefix(st.inst.Operands[0], "operand")
		if err != nil {
			return err
		}
		var op byte = 0x34
		if dec {
			op = 0x35
		}
		if pfx == 0 {
			st.emit(op)
		} else {
			st.emit(pfx, op, 0x00)
		}
		return nil
	}

	// INC8r / DEC8r.
	var base byte = 0x04
	if dec {
		base = 0x05
	}
	o := st.inst.Operands[0]
	if !o.IsReg() {
		return st.badf("operand should be a register")
	}
	if code, ok := cpu.RegCodes[o.Reg]; ok {
		st.emit(base | code<<3)
		return nil
	}
	if o.Reg.IsIndexHalf() {
		st.synthHL(o.Reg.IndexPrefix(), true, func() {
			st.emit(base | hlSlot(o.Reg)<<3)
		})
		return nil
	}
	return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")
}
