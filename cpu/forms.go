package cpu

// Mode selects the CPU addressing mode an instruction form requires.
type Mode uint8

const (
	// ModeZ80 is the classic 16-bit mode.
	ModeZ80 Mode = iota
	// ModeEZ80 is the extended 24-bit ADL mode.
	ModeEZ80
)

// Form holds the static shape metadata for an instruction form:
// expected operand count, whether the form is a pseudo-instruction
// expanded by the encoder, and which CPU mode it requires.
type Form struct {
	Operands int
	Pseudo   bool
	Mode     Mode
}

// Forms maps every instruction form to its shape metadata.
var Forms = map[Op]Form{
	JQ:   {Operands: 1, Pseudo: true},
	JQCC: {Operands: 2, Pseudo: true},

	ADC8ai: {Operands: 1},
	ADC8ao: {Operands: 2},
	ADC8ap: {Operands: 1},
	ADC8ar: {Operands: 1},
	ADD8ai: {Operands: 1},
	ADD8ao: {Operands: 2},
	ADD8ap: {Operands: 1},
	ADD8ar: {Operands: 1},
	AND8ai: {Operands: 1},
	AND8ao: {Operands: 2},
	AND8ap: {Operands: 1},
	AND8ar: {Operands: 1},
	CP8ai:  {Operands: 1},
	CP8ao:  {Operands: 2},
	CP8ap:  {Operands: 1},
	CP8ar:  {Operands: 1},
	OR8ai:  {Operands: 1},
	OR8ao:  {Operands: 2},
	OR8ap:  {Operands: 1},
	OR8ar:  {Operands: 1},
	SBC8ai: {Operands: 1},
	SBC8ao: {Operands: 2},
	SBC8ap: {Operands: 1},
	SBC8ar: {Operands: 1},
	SUB8ai: {Operands: 1},
	SUB8ao: {Operands: 2},
	SUB8ap: {Operands: 1},
	SUB8ar: {Operands: 1},
	XOR8ai: {Operands: 1},
	XOR8ao: {Operands: 2},
	XOR8ap: {Operands: 1},
	XOR8ar: {Operands: 1},

	ADD16SP: {Operands: 2},
	ADD16aa: {Operands: 2},
	ADD16ao: {Operands: 3},
	SBC16SP: {Operands: 0},
	SBC16aa: {Operands: 0},
	SBC16ao: {Operands: 1},

	BIT8bg: {Operands: 2},
	BIT8bo: {Operands: 3},
	BIT8bp: {Operands: 2},
	RES8bg: {Operands: 2},
	RES8bo: {Operands: 3},
	RES8bp: {Operands: 2},
	SET8bg: {Operands: 2},
	SET8bo: {Operands: 3},
	SET8bp: {Operands: 2},

	CALL16:   {Operands: 1},
	CALL16CC: {Operands: 2},
	RET16:    {Operands: 0},
	RET16CC:  {Operands: 1},
	RETI16:   {Operands: 0},
	RETN16:   {Operands: 0},

	CCF: {Operands: 0},
	CPL: {Operands: 0},
	SCF: {Operands: 0},
	NOP: {Operands: 0},
	DI:  {Operands: 0},
	EI:  {Operands: 0},
	NEG: {Operands: 0},

	EXAF:   {Operands: 0},
	EXX:    {Operands: 0},
	EX16DE: {Operands: 0},
	EX16SP: {Operands: 2},

	CPD16:   {Operands: 0},
	CPDR16:  {Operands: 0},
	CPI16:   {Operands: 0},
	CPIR16:  {Operands: 0},
	LDD16:   {Operands: 0},
	LDDR16:  {Operands: 0},
	LDI16:   {Operands: 0},
	LDIR16:  {Operands: 0},
	IND16:   {Operands: 0},
	INDR16:  {Operands: 0},
	INI16:   {Operands: 0},
	INIR16:  {Operands: 0},
	OUTD16:  {Operands: 0},
	OUTDR16: {Operands: 0},
	OUTI16:  {Operands: 0},
	OUTIR16: {Operands: 0},

	DEC16SP: {Operands: 0},
	DEC16r:  {Operands: 1},
	DEC8o:   {Operands: 2},
	DEC8p:   {Operands: 1},
	DEC8r:   {Operands: 1},
	INC16SP: {Operands: 0},
	INC16r:  {Operands: 1},
	INC8o:   {Operands: 2},
	INC8p:   {Operands: 1},
	INC8r:   {Operands: 1},

	JP16r: {Operands: 1},

	LD16SP: {Operands: 1},
	LD16am: {Operands: 2},
	LD16ma: {Operands: 2},
	LD16mo: {Operands: 2},
	LD16om: {Operands: 2},
	LD16ri: {Operands: 2},

	LD8am: {Operands: 1},
	LD8ma: {Operands: 1},
	LD8gg: {Operands: 2},
	LD8xx: {Operands: 2},
	LD8yy: {Operands: 2},
	LD8go: {Operands: 3},
	LD8gp: {Operands: 2},
	LD8og: {Operands: 3},
	LD8oi: {Operands: 3},
	LD8pg: {Operands: 2},
	LD8pi: {Operands: 2},
	LD8ri: {Operands: 2},

	LEA16ro: {Operands: 3},

	PUSH16AF: {Operands: 0},
	PUSH16r:  {Operands: 1},
	POP16AF:  {Operands: 0},
	POP16r:   {Operands: 1},

	RL8o:  {Operands: 2},
	RL8p:  {Operands: 1},
	RL8r:  {Operands: 1},
	RLC8o: {Operands: 2},
	RLC8p: {Operands: 1},
	RLC8r: {Operands: 1},
	RR8o:  {Operands: 2},
	RR8p:  {Operands: 1},
	RR8r:  {Operands: 1},
	RRC8o: {Operands: 2},
	RRC8p: {Operands: 1},
	RRC8r: {Operands: 1},
	SLA8o: {Operands: 2},
	SLA8p: {Operands: 1},
	SLA8r: {Operands: 1},
	SRA8o: {Operands: 2},
	SRA8p: {Operands: 1},
	SRA8r: {Operands: 1},
	SRL8o: {Operands: 2},
	SRL8p: {Operands: 1},
	SRL8r: {Operands: 1},

	ADC16SP: {Operands: 2},
	ADC16aa: {Operands: 2},
	ADC16ao: {Operands: 3},
	JP16:    {Operands: 1},
	JP16CC:  {Operands: 2},
	JR:      {Operands: 1},
	JRCC:    {Operands: 2},
	LD16or:  {Operands: 3},
	LD16pr:  {Operands: 2},
	LD16ro:  {Operands: 3},
	LD16rp:  {Operands: 2},

	LD24ri:  {Operands: 2, Mode: ModeEZ80},
	ADD24ao: {Operands: 3, Mode: ModeEZ80},
	PUSH24r: {Operands: 1, Mode: ModeEZ80},
	POP24r:  {Operands: 1, Mode: ModeEZ80},
	LEA24ro: {Operands: 3, Mode: ModeEZ80},
}
