package encoder

import "github.com/Urethramancer/z80/cpu"

// load16 encodes the 16-bit load forms.
func (st *state) load16() error {
	ops := st.inst.Operands
	switch st.inst.Op {
	case cpu.LD16SP:
		pfx, err := st.pairPrefix(ops[0], "operand")
		if err != nil {
			return err
		}
		if pfx != 0 {
			st.emit(pfx)
		}
		st.emit(0xF9)
		return nil

	case cpu.LD16am:
		pfx, err := st.pairPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		if pfx != 0 {
			st.emit(pfx)
		}
		st.emit(0x2A)
		return st.emitAddr16(ops[1], "second operand")

	case cpu.LD16ma:
		pfx, err := st.pairPrefix(ops[1], "second operand")
		if err != nil {
			return err
		}
		if pfx != 0 {
			st.emit(pfx)
		}
		st.emit(0x22)
		return st.emitAddr16(ops[0], "first operand")

	case cpu.LD16mo:
		if !ops[1].IsReg() {
			return st.badf("second operand should be a register")
		}
		switch ops[1].Reg {
		case cpu.BC:
			st.emit(0xED, 0x43)
		case cpu.DE:
			st.emit(0xED, 0x53)
		case cpu.HL:
			st.emit(0xED, 0x63)
		case cpu.IX:
			st.emit(prefixIX, 0x22)
		case cpu.IY:
			st.emit(prefixIY, 0x22)
		default:
			return st.badf("allowed registers are bc, de, hl, ix, iy")
		}
		return st.emitAddr16(ops[0], "first operand")

	case cpu.LD16om:
		if !ops[0].IsReg() {
			return st.badf("first operand should be a register")
		}
		switch ops[0].Reg {
		case cpu.BC:
			st.emit(0xED, 0x4B)
		case cpu.DE:
			st.emit(0xED, 0x5B)
		case cpu.HL:
			st.emit(0xED, 0x6B)
		case cpu.IX:
			st.emit(prefixIX, 0x2A)
		case cpu.IY:
			st.emit(prefixIY, 0x2A)
		default:
			return st.badf("allowed registers are bc, de, hl, ix, iy")
		}
		return st.emitAddr16(ops[1], "second operand")

	case cpu.LD16ri:
		if !ops[0].IsReg() {
			return st.badf("first operand should be a register")
		}
		switch ops[0].Reg {
		case cpu.BC:
			st.emit(0x01)
		case cpu.DE:
			st.emit(0x11)
		case cpu.HL:
			st.emit(0x21)
		case cpu.IX:
			st.emit(prefixIX, 0x21)
		case cpu.IY:
			st.emit(prefixIY, 0x21)
		default:
			return st.badf("allowed registers are bc, de, hl, ix, iy")
		}
		return st.emitAddr16(ops[1], "second operand")
	}
	return nil
}

// load8 encodes the 8-bit load forms.
func (st *state) load8() error {
	ops := st.inst.Operands
	switch st.inst.Op {
	case cpu.LD8am:
		st.emit(0x3A)
		return st.emitAddr16(ops[0], "operand")

	case cpu.LD8ma:
		st.emit(0x32)
		return st.emitAddr16(ops[0], "operand")

	case cpu.LD8gg, cpu.LD8xx, cpu.LD8yy:
		return st.loadRegReg()

	case cpu.LD8ri:
		o := ops[0]
		if !o.IsReg() {
			return st.badf("first operand should be a register")
		}
		imm, err := st.displacement(ops[1], "second operand")
		if err != nil {
			return err
		}
		if code, ok := cpu.RegCodes[o.Reg]; ok {
			st.emit(0x06|code<<3, imm)
			return nil
		}
		if o.Reg.IsIndexHalf() {
			st.synthHL(o.Reg.IndexPrefix(), true, func() {
				st.emit(0x06|hlSlot(o.Reg)<<3, imm)
			})
			return nil
		}
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")

	case cpu.LD8oi:
		pfx, err := st.indexPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(ops[1], "second operand")
		if err != nil {
			return err
		}
		imm, err := st.displacement(ops[2], "third operand")
		if err != nil {
			return err
		}
		st.emit(pfx, 0x36, d, imm)
		return nil

	case cpu.LD8pi:
		pfx, err := st.pairPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		imm, err := st.displacement(ops[1], "second operand")
		if err != nil {
			return err
		}
		if pfx == 0 {
			st.emit(0x36, imm)
		} else {
			st.emit(pfx, 0x36, 0x00, imm)
		}
		return nil

	case cpu.LD8go:
		dst := ops[0]
		if !dst.IsReg() {
			return st.badf("first operand should be a register")
		}
		mem, err := st.indexPrefix(ops[1], "second operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(ops[2], "third operand")
		if err != nil {
			return err
		}
		if code, ok := cpu.RegCodes[dst.Reg]; ok {
			st.emit(mem, 0x46|code<<3, d)
			return nil
		}
		if dst.Reg.IsIndexHalf() {
			st.synthHL(dst.Reg.IndexPrefix(), true, func() {
				st.emit(mem, 0x46|hlSlot(dst.Reg)<<3, d)
			})
			return nil
		}
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")

	case cpu.LD8og:
		mem, err := st.indexPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(ops[1], "second operand")
		if err != nil {
			return err
		}
		src := ops[2]
		if !src.IsReg() {
			return st.badf("third operand should be a register")
		}
		if code, ok := cpu.RegCodes[src.Reg]; ok {
			st.emit(mem, 0x70|code, d)
			return nil
		}
		if src.Reg.IsIndexHalf() {
			st.synthHL(src.Reg.IndexPrefix(), true, func() {
				st.emit(mem, 0x70|hlSlot(src.Reg), d)
			})
			return nil
		}
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")

	case cpu.LD8gp:
		dst := ops[0]
		if !dst.IsReg() {
			return st.badf("first operand should be a register")
		}
		mem, err := st.pairPrefix(ops[1], "second operand")
		if err != nil {
			return err
		}
		if code, ok := cpu.RegCodes[dst.Reg]; ok {
			if mem == 0 {
				st.emit(0x46 | code<<3)
			} else {
				st.emit(mem, 0x46|code<<3, 0x00)
			}
			return nil
		}
		if dst.Reg.IsIndexHalf() {
			// DE aliases the destination halves so the load through
			// hl (or the prefixed forms) stays addressable.
			st.synthDE(dst.Reg.IndexPrefix(), true, func() {
				if mem == 0 {
					st.emit(0x46 | deSlot(dst.Reg)<<3)
				} else {
					st.emit(mem, 0x46|deSlot(dst.Reg)<<3, 0x00)
				}
			})
			return nil
		}
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")

	case cpu.LD8pg:
		mem, err := st.pairPrefix(ops[0], "first operand")
		if err != nil {
			return err
		}
		src := ops[1]
		if !src.IsReg() {
			return st.badf("second operand should be a register")
		}
		if code, ok := cpu.RegCodes[src.Reg]; ok {
			if mem == 0 {
				st.emit(0x70 | code)
			} else {
				st.emit(mem, 0x70|code, 0x00)
			}
			return nil
		}
		if src.Reg.IsIndexHalf() {
			st.synthDE(src.Reg.IndexPrefix(), false, func() {
				if mem == 0 {
					st.emit(0x70 | deSlot(src.Reg))
				} else {
					st.emit(mem, 0x70|deSlot(src.Reg), 0x00)
				}
			})
			return nil
		}
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")
	}
	return nil
}

// loadRegReg encodes register-to-register 8-bit loads. The plain
// registers take a single byte; any index half needs the stack
// shuffle, and the scratch pair depends on which side holds the half
// and whether the other side uses h or l.
func (st *state) loadRegReg() error {
	dst, src := st.inst.Operands[0], st.inst.Operands[1]
	if !dst.IsReg() || !src.IsReg() {
		return st.badf("both operands should be registers")
	}
	dcode, dplain := cpu.RegCodes[dst.Reg]
	scode, splain := cpu.RegCodes[src.Reg]

	switch {
	case dplain && splain:
		st.emit(0x40 | dcode<<3 | scode)

	case dplain && src.Reg.IsIndexHalf():
		if dst.Reg == cpu.H || dst.Reg == cpu.L {
			// The destination occupies hl, so de aliases the source.
			st.synthDE(src.Reg.IndexPrefix(), false, func() {
				st.emit(0x40 | dcode<<3 | deSlot(src.Reg))
			})
			return nil
		}
		st.synthHL(src.Reg.IndexPrefix(), false, func() {
			st.emit(0x40 | dcode<<3 | hlSlot(src.Reg))
		})

	case dst.Reg.IsIndexHalf() && splain:
		if src.Reg == cpu.H || src.Reg == cpu.L {
			st.synthDE(dst.Reg.IndexPrefix(), true, func() {
				st.emit(0x40 | deSlot(dst.Reg)<<3 | scode)
			})
			return nil
		}
		st.synthHL(dst.Reg.IndexPrefix(), true, func() {
			st.emit(0x40 | hlSlot(dst.Reg)<<3 | scode)
		})

	case dst.Reg.IsIndexHalf() && src.Reg.IsIndexHalf():
		dpfx := dst.Reg.IndexPrefix()
		spfx := src.Reg.IndexPrefix()
		if dpfx == spfx {
			st.synthHL(dpfx, true, func() {
				st.emit(0x40 | hlSlot(dst.Reg)<<3 | hlSlot(src.Reg))
			})
			return nil
		}
		// Halves of different index registers: alias the destination
		// into hl and the source into de, restore in reverse.
		st.emit(0xE5)       // push hl
		st.emit(0xD5)       // push de
		st.emit(dpfx, 0xE5) // push dst index
		st.emit(0xE1)       // pop hl
		st.emit(spfx, 0xE5) // push src index
		st.emit(0xD1)       // pop de
		st.emit(0x40 | hlSlot(dst.Reg)<<3 | deSlot(src.Reg))
		st.emit(0xE5)       // push hl
		st.emit(dpfx, 0xE1) // pop dst index
		st.emit(0xD1)       // pop de
		st.emit(0xE1)       // pop hl

	default:
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")
	}
	return nil
}

// lea synthesizes a load of index register plus displacement into a
// 16-bit register. There is no such opcode, so bc is borrowed for the
// addition and everything touched is saved around it.
func (st *state) lea() error {
	ops := st.inst.Operands
	dst, idx := ops[0], ops[1]
	if !dst.IsReg() || !idx.IsReg() {
		return st.badf("first two operands should be registers")
	}
	pfx, err := st.indexPrefix(idx, "second operand")
	if err != nil {
		return err
	}
	d, err := st.displacement(ops[2], "third operand")
	if err != nil {
		return err
	}
	switch dst.Reg {
	case cpu.BC, cpu.DE, cpu.HL, cpu.IX, cpu.IY:
	default:
		return st.badf("allowed registers for the first operand are bc, de, hl, ix, iy")
	}

	st.emit(0xF5) // push af
	if dst.Reg != cpu.BC {
		st.emit(0xC5) // push bc
	}
	st.emit(0x06, 0x00) // ld b,0
	st.emit(0x0E, d)    // ld c,d
	if dst.Reg != idx.Reg {
		st.emit(pfx, 0xE5) // push ix/iy
	}
	st.emit(pfx, 0x09) // add ix/iy,bc
	if dst.Reg != idx.Reg {
		st.emit(pfx, 0xE5) // push the sum
		switch dst.Reg {
		case cpu.BC:
			st.emit(0xC1)
		case cpu.DE:
			st.emit(0xD1)
		case cpu.HL:
			st.emit(0xE1)
		case cpu.IX:
			st.emit(prefixIX, 0xE1)
		case cpu.IY:
			st.emit(prefixIY, 0xE1)
		}
		st.emit(pfx, 0xE1) // restore ix/iy
	}
	if dst.Reg != cpu.BC {
		st.emit(0xC1) // pop bc
	}
	st.emit(0xF1) // pop af
	return nil
}
