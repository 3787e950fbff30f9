package encoder

import "github.com/Urethramancer/z80/cpu"

// bitGroup returns the group bits within the 0xCB page for the bit
// instructions: 0x40 for bit, 0x80 for res, 0xC0 for set.
func bitGroup(op cpu.Op) byte {
	switch op {
	case cpu.BIT8bg, cpu.BIT8bo, cpu.BIT8bp:
		return 0x40
	case cpu.RES8bg, cpu.RES8bo, cpu.RES8bp:
		return 0x80
	}
	return 0xC0
}

// bits encodes the bit test, reset and set forms. All live on the
// 0xCB opcode page; the operation byte is group | bit<<3 | register.
func (st *state) bits() error {
	group := bitGroup(st.inst.Op)
	b, err := st.bitIndex(st.inst.Operands[0])
	if err != nil {
		return err
	}

	switch st.inst.Op {
	case cpu.BIT8bg, cpu.RES8bg, cpu.SET8bg:
		o := st.inst.Operands[1]
		if !o.IsReg() {
			return st.badf("second operand should be a register")
		}
		if code, ok := cpu.RegCodes[o.Reg]; ok {
			st.emit(0xCB, group|b<<3|code)
			return nil
		}
		if o.Reg.IsIndexHalf() {
			// bit only reads the half, yet its shuffle writes the
			// scratch pair back into the index register. res and
			// set skip the writeback.
			writeback := st.inst.Op == cpu.BIT8bg
			st.synthHL(o.Reg.IndexPrefix(), writeback, func() {
				st.emit(0xCB, group|b<<3|hlSlot(o.Reg))
			})
			return nil
		}
		return st.badf("allowed registers are a, b, c, d, e, h, l, ixh, ixl, iyh, iyl")

	case cpu.BIT8bo, cpu.RES8bo, cpu.SET8bo:
		pfx, err := st.indexPrefix(st.inst.Operands[1], "second operand")
		if err != nil {
			return err
		}
		d, err := st.displacement(st.inst.Operands[2], "third operand")
		if err != nil {
			return err
		}
		st.emit(pfx, 0xCB, d, group|b<<3|0x06)
		return nil
	}

	// bp: memory through hl, ix or iy with no displacement.
	pfx, err := st.pairPrefix(st.inst.Operands[1], "second operand")
	if err != nil {
		return err
	}
	if pfx == 0 {
		st.emit(0xCB, group|b<<3|0x06)
	} else {
		st.emit(pfx, 0xCB, 0x00, group|b<<3|0x06)
	}
	return nil
}
