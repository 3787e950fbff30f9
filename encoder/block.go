package encoder

import "github.com/Urethramancer/z80/cpu"

// blockOps maps the block transfer, compare and I/O instructions to
// their byte on the 0xED page.
var blockOps = map[cpu.Op]byte{
	cpu.LDI16:   0xA0,
	cpu.CPI16:   0xA1,
	cpu.INI16:   0xA2,
	cpu.OUTI16:  0xA3,
	cpu.LDD16:   0xA8,
	cpu.CPD16:   0xA9,
	cpu.IND16:   0xAA,
	cpu.OUTD16:  0xAB,
	cpu.LDIR16:  0xB0,
	cpu.CPIR16:  0xB1,
	cpu.INIR16:  0xB2,
	cpu.OUTIR16: 0xB3,
	cpu.LDDR16:  0xB8,
	cpu.CPDR16:  0xB9,
	cpu.INDR16:  0xBA,
	cpu.OUTDR16: 0xBB,
}

// block encodes the repeating and single-step block instructions.
func (st *state) block() error {
	st.emit(0xED, blockOps[st.inst.Op])
	return nil
}
