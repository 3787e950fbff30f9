package cpu

// Reg identifies a machine register, including the undocumented
// high/low halves of the index registers.
type Reg uint8

const (
	// NoReg is the zero value, indicating no register.
	NoReg Reg = iota

	// 8-bit general registers.
	A
	B
	C
	D
	E
	H
	L

	// Undocumented 8-bit halves of the index registers.
	IXH
	IXL
	IYH
	IYL

	// 16-bit register pairs.
	AF
	BC
	DE
	HL
	SP

	// 16-bit index registers.
	IX
	IY
)

var regNames = map[Reg]string{
	A:   "a",
	B:   "b",
	C:   "c",
	D:   "d",
	E:   "e",
	H:   "h",
	L:   "l",
	IXH: "ixh",
	IXL: "ixl",
	IYH: "iyh",
	IYL: "iyl",
	AF:  "af",
	BC:  "bc",
	DE:  "de",
	HL:  "hl",
	SP:  "sp",
	IX:  "ix",
	IY:  "iy",
}

func (r Reg) String() string {
	if n, ok := regNames[r]; ok {
		return n
	}
	return "?"
}

var regsByName = func() map[string]Reg {
	m := make(map[string]Reg, len(regNames))
	for r, n := range regNames {
		m[n] = r
	}
	return m
}()

// RegByName looks up a register by its lowercase name.
func RegByName(name string) (Reg, bool) {
	r, ok := regsByName[name]
	return r, ok
}

// RegCodes maps the directly encodable 8-bit registers to their
// three-bit field values. (HL) indirection uses the missing code 6.
var RegCodes = map[Reg]byte{
	B: 0,
	C: 1,
	D: 2,
	E: 3,
	H: 4,
	L: 5,
	A: 7,
}

// IsIndexHalf reports whether r is one of the undocumented index
// register halves, which have no direct encoding in most opcodes.
func (r Reg) IsIndexHalf() bool {
	switch r {
	case IXH, IXL, IYH, IYL:
		return true
	}
	return false
}

// IndexPrefix returns the instruction prefix byte selecting the index
// register r belongs to: 0xDD for IX and its halves, 0xFD for IY and
// its halves. Returns 0 for anything else.
func (r Reg) IndexPrefix() byte {
	switch r {
	case IX, IXH, IXL:
		return 0xDD
	case IY, IYH, IYL:
		return 0xFD
	}
	return 0
}

// IsHighHalf reports whether r occupies the high byte of its pair.
func (r Reg) IsHighHalf() bool {
	return r == IXH || r == IYH
}
