package cpu

// Op identifies one instruction form: a mnemonic combined with an
// operand shape. Many mnemonics appear several times because the
// encoding differs per addressing mode. The suffix letters follow the
// operand shape: a = accumulator, r/g = register, i = immediate,
// o = indexed with displacement, p = register indirect, m = memory
// address, b = bit index.
type Op uint16

const (
	OpInvalid Op = iota

	// Relaxable jumps, expanded to JP or JR forms by the encoder.
	JQ   // jq target
	JQCC // jq cc,target

	// 8-bit arithmetic and logic on the accumulator.
	ADC8ai // adc a,n
	ADC8ao // adc a,(ix/iy+d)
	ADC8ap // adc a,(hl)
	ADC8ar // adc a,r
	ADD8ai // add a,n
	ADD8ao // add a,(ix/iy+d)
	ADD8ap // add a,(hl)
	ADD8ar // add a,r
	AND8ai // and n
	AND8ao // and (ix/iy+d)
	AND8ap // and (hl)
	AND8ar // and r
	CP8ai  // cp n
	CP8ao  // cp (ix/iy+d)
	CP8ap  // cp (hl)
	CP8ar  // cp r
	OR8ai  // or n
	OR8ao  // or (ix/iy+d)
	OR8ap  // or (hl)
	OR8ar  // or r
	SBC8ai // sbc a,n
	SBC8ao // sbc a,(ix/iy+d)
	SBC8ap // sbc a,(hl)
	SBC8ar // sbc a,r
	SUB8ai // sub n
	SUB8ao // sub (ix/iy+d)
	SUB8ap // sub (hl)
	SUB8ar // sub r
	XOR8ai // xor n
	XOR8ao // xor (ix/iy+d)
	XOR8ap // xor (hl)
	XOR8ar // xor r

	// 16-bit arithmetic.
	ADD16SP // add rr,sp
	ADD16aa // add rr,rr
	ADD16ao // add rr,rr,bc/de
	SBC16SP // sbc hl,sp
	SBC16aa // sbc hl,hl
	SBC16ao // sbc hl,bc/de

	// Bit test, reset and set.
	BIT8bg // bit b,r
	BIT8bo // bit b,(ix/iy+d)
	BIT8bp // bit b,(hl/ix/iy)
	RES8bg // res b,r
	RES8bo // res b,(ix/iy+d)
	RES8bp // res b,(hl/ix/iy)
	SET8bg // set b,r
	SET8bo // set b,(ix/iy+d)
	SET8bp // set b,(hl/ix/iy)

	// Calls and returns.
	CALL16   // call nn
	CALL16CC // call cc,nn
	RET16    // ret
	RET16CC  // ret cc
	RETI16   // reti
	RETN16   // retn

	// Flag and CPU control.
	CCF // ccf
	CPL // cpl
	SCF // scf
	NOP // nop
	DI  // di
	EI  // ei
	NEG // neg

	// Exchanges.
	EXAF   // ex af,af'
	EXX    // exx
	EX16DE // ex de,hl
	EX16SP // ex (sp),hl/ix/iy

	// Block transfer, compare and I/O.
	CPD16   // cpd
	CPDR16  // cpdr
	CPI16   // cpi
	CPIR16  // cpir
	LDD16   // ldd
	LDDR16  // lddr
	LDI16   // ldi
	LDIR16  // ldir
	IND16   // ind
	INDR16  // indr
	INI16   // ini
	INIR16  // inir
	OUTD16  // outd
	OUTDR16 // otdr
	OUTI16  // outi
	OUTIR16 // otir

	// Increment and decrement.
	DEC16SP // dec sp
	DEC16r  // dec rr
	DEC8o   // dec (ix/iy+d)
	DEC8p   // dec (hl/ix/iy)
	DEC8r   // dec r
	INC16SP // inc sp
	INC16r  // inc rr
	INC8o   // inc (ix/iy+d)
	INC8p   // inc (hl/ix/iy)
	INC8r   // inc r

	// Jumps through a register.
	JP16r // jp (hl/ix/iy)

	// 16-bit loads.
	LD16SP // ld sp,hl/ix/iy
	LD16am // ld hl/ix/iy,(nn)
	LD16ma // ld (nn),hl/ix/iy
	LD16mo // ld (nn),rr
	LD16om // ld rr,(nn)
	LD16ri // ld rr,nn

	// 8-bit loads.
	LD8am // ld a,(nn)
	LD8ma // ld (nn),a
	LD8gg // ld r,r
	LD8xx // ld r,r (ix halves)
	LD8yy // ld r,r (iy halves)
	LD8go // ld r,(ix/iy+d)
	LD8gp // ld r,(hl/ix/iy)
	LD8og // ld (ix/iy+d),r
	LD8oi // ld (ix/iy+d),n
	LD8pg // ld (hl/ix/iy),r
	LD8pi // ld (hl/ix/iy),n
	LD8ri // ld r,n

	// Load effective address, synthesized.
	LEA16ro // lea rr,ix/iy+d

	// Stack.
	PUSH16AF // push af
	PUSH16r  // push rr
	POP16AF  // pop af
	POP16r   // pop rr

	// Rotates and shifts.
	RL8o   // rl (ix/iy+d)
	RL8p   // rl (hl)
	RL8r   // rl r
	RLC8o  // rlc (ix/iy+d)
	RLC8p  // rlc (hl)
	RLC8r  // rlc r
	RR8o   // rr (ix/iy+d)
	RR8p   // rr (hl)
	RR8r   // rr r
	RRC8o  // rrc (ix/iy+d)
	RRC8p  // rrc (hl)
	RRC8r  // rrc r
	SLA8o  // sla (ix/iy+d)
	SLA8p  // sla (hl)
	SLA8r  // sla r
	SRA8o  // sra (ix/iy+d)
	SRA8p  // sra (hl)
	SRA8r  // sra r
	SRL8o  // srl (ix/iy+d)
	SRL8p  // srl (hl)
	SRL8r  // srl r

	// Forms with no defined encoding in this encoder.
	ADC16SP // adc hl,sp
	ADC16aa // adc hl,hl
	ADC16ao // adc hl,bc/de
	JP16    // jp nn
	JP16CC  // jp cc,nn
	JR      // jr e
	JRCC    // jr cc,e
	LD16or  // ld (ix/iy+d),rr
	LD16pr  // ld (hl),rr
	LD16ro  // ld rr,(ix/iy+d)
	LD16rp  // ld rr,(hl)

	// 24-bit forms, only meaningful in eZ80 ADL mode.
	LD24ri  // ld rr,nnn
	ADD24ao // add rr,rr,bc/de
	PUSH24r // push rr
	POP24r  // pop rr
	LEA24ro // lea rr,ix/iy+d
)

var opNames = map[Op]string{
	JQ:       "JQ",
	JQCC:     "JQCC",
	ADC8ai:   "ADC8ai",
	ADC8ao:   "ADC8ao",
	ADC8ap:   "ADC8ap",
	ADC8ar:   "ADC8ar",
	ADD8ai:   "ADD8ai",
	ADD8ao:   "ADD8ao",
	ADD8ap:   "ADD8ap",
	ADD8ar:   "ADD8ar",
	AND8ai:   "AND8ai",
	AND8ao:   "AND8ao",
	AND8ap:   "AND8ap",
	AND8ar:   "AND8ar",
	CP8ai:    "CP8ai",
	CP8ao:    "CP8ao",
	CP8ap:    "CP8ap",
	CP8ar:    "CP8ar",
	OR8ai:    "OR8ai",
	OR8ao:    "OR8ao",
	OR8ap:    "OR8ap",
	OR8ar:    "OR8ar",
	SBC8ai:   "SBC8ai",
	SBC8ao:   "SBC8ao",
	SBC8ap:   "SBC8ap",
	SBC8ar:   "SBC8ar",
	SUB8ai:   "SUB8ai",
	SUB8ao:   "SUB8ao",
	SUB8ap:   "SUB8ap",
	SUB8ar:   "SUB8ar",
	XOR8ai:   "XOR8ai",
	XOR8ao:   "XOR8ao",
	XOR8ap:   "XOR8ap",
	XOR8ar:   "XOR8ar",
	ADD16SP:  "ADD16SP",
	ADD16aa:  "ADD16aa",
	ADD16ao:  "ADD16ao",
	SBC16SP:  "SBC16SP",
	SBC16aa:  "SBC16aa",
	SBC16ao:  "SBC16ao",
	BIT8bg:   "BIT8bg",
	BIT8bo:   "BIT8bo",
	BIT8bp:   "BIT8bp",
	RES8bg:   "RES8bg",
	RES8bo:   "RES8bo",
	RES8bp:   "RES8bp",
	SET8bg:   "SET8bg",
	SET8bo:   "SET8bo",
	SET8bp:   "SET8bp",
	CALL16:   "CALL16",
	CALL16CC: "CALL16CC",
	RET16:    "RET16",
	RET16CC:  "RET16CC",
	RETI16:   "RETI16",
	RETN16:   "RETN16",
	CCF:      "CCF",
	CPL:      "CPL",
	SCF:      "SCF",
	NOP:      "NOP",
	DI:       "DI",
	EI:       "EI",
	NEG:      "NEG",
	EXAF:     "EXAF",
	EXX:      "EXX",
	EX16DE:   "EX16DE",
	EX16SP:   "EX16SP",
	CPD16:    "CPD16",
	CPDR16:   "CPDR16",
	CPI16:    "CPI16",
	CPIR16:   "CPIR16",
	LDD16:    "LDD16",
	LDDR16:   "LDDR16",
	LDI16:    "LDI16",
	LDIR16:   "LDIR16",
	IND16:    "IND16",
	INDR16:   "INDR16",
	INI16:    "INI16",
	INIR16:   "INIR16",
	OUTD16:   "OUTD16",
	OUTDR16:  "OUTDR16",
	OUTI16:   "OUTI16",
	OUTIR16:  "OUTIR16",
	DEC16SP:  "DEC16SP",
	DEC16r:   "DEC16r",
	DEC8o:    "DEC8o",
	DEC8p:    "DEC8p",
	DEC8r:    "DEC8r",
	INC16SP:  "INC16SP",
	INC16r:   "INC16r",
	INC8o:    "INC8o",
	INC8p:    "INC8p",
	INC8r:    "INC8r",
	JP16r:    "JP16r",
	LD16SP:   "LD16SP",
	LD16am:   "LD16am",
	LD16ma:   "LD16ma",
	LD16mo:   "LD16mo",
	LD16om:   "LD16om",
	LD16ri:   "LD16ri",
	LD8am:    "LD8am",
	LD8ma:    "LD8ma",
	LD8gg:    "LD8gg",
	LD8xx:    "LD8xx",
	LD8yy:    "LD8yy",
	LD8go:    "LD8go",
	LD8gp:    "LD8gp",
	LD8og:    "LD8og",
	LD8oi:    "LD8oi",
	LD8pg:    "LD8pg",
	LD8pi:    "LD8pi",
	LD8ri:    "LD8ri",
	LEA16ro:  "LEA16ro",
	PUSH16AF: "PUSH16AF",
	PUSH16r:  "PUSH16r",
	POP16AF:  "POP16AF",
	POP16r:   "POP16r",
	RL8o:     "RL8o",
	RL8p:     "RL8p",
	RL8r:     "RL8r",
	RLC8o:    "RLC8o",
	RLC8p:    "RLC8p",
	RLC8r:    "RLC8r",
	RR8o:     "RR8o",
	RR8p:     "RR8p",
	RR8r:     "RR8r",
	RRC8o:    "RRC8o",
	RRC8p:    "RRC8p",
	RRC8r:    "RRC8r",
	SLA8o:    "SLA8o",
	SLA8p:    "SLA8p",
	SLA8r:    "SLA8r",
	SRA8o:    "SRA8o",
	SRA8p:    "SRA8p",
	SRA8r:    "SRA8r",
	SRL8o:    "SRL8o",
	SRL8p:    "SRL8p",
	SRL8r:    "SRL8r",
	ADC16SP:  "ADC16SP",
	ADC16aa:  "ADC16aa",
	ADC16ao:  "ADC16ao",
	JP16:     "JP16",
	JP16CC:   "JP16CC",
	JR:       "JR",
	JRCC:     "JRCC",
	LD16or:   "LD16or",
	LD16pr:   "LD16pr",
	LD16ro:   "LD16ro",
	LD16rp:   "LD16rp",
	LD24ri:   "LD24ri",
	ADD24ao:  "ADD24ao",
	PUSH24r:  "PUSH24r",
	POP24r:   "POP24r",
	LEA24ro:  "LEA24ro",
}

func (op Op) String() string {
	if n, ok := opNames[op]; ok {
		return n
	}
	return "?"
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for op, n := range opNames {
		m[n] = op
	}
	return m
}()

// OpByName looks up an instruction form by its name.
func OpByName(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}
