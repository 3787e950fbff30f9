// Package encoder turns decoded Z80 instructions into machine code
// bytes plus the fixup records needed for unresolved symbols.
package encoder

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/z80/cpu"
	"github.com/Urethramancer/z80/fixup"
)

var (
	// ErrMalformed reports a wrong operand count, kind, range or
	// register for the instruction form being encoded.
	ErrMalformed = errors.New("malformed instruction")
	// ErrUnsupported reports an instruction form this encoder has no
	// encoding for, or one requiring an unsupported CPU mode.
	ErrUnsupported = errors.New("unsupported instruction")
)

// Options select encoding choices that the caller fixes per build.
type Options struct {
	// RelativeJumps emits relaxable jumps as short PC-relative forms
	// instead of the always-valid long absolute forms. The short form
	// is not range-checked here; the caller must know targets fit.
	RelativeJumps bool
}

// Encoder encodes one instruction at a time. It holds no mutable
// state, so a single Encoder is safe for concurrent use.
type Encoder struct {
	opts Options
}

// New creates an Encoder with the given options.
func New(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

// Encode produces the byte sequence and fixup list for one
// instruction. Nothing is returned on error.
func (e *Encoder) Encode(inst cpu.Instruction, sub cpu.Subtarget) ([]byte, []fixup.Fixup, error) {
	form, ok := cpu.Forms[inst.Op]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: no encoding defined", ErrUnsupported, inst.Op)
	}
	if form.Mode == cpu.ModeEZ80 {
		return nil, nil, fmt.Errorf("%w: %s: ez80 machine instructions not supported", ErrUnsupported, inst.Op)
	}

	st := &state{inst: inst, opts: e.opts}
	var err error
	if form.Pseudo {
		err = st.pseudo(form)
	} else {
		err = st.encode(form)
	}
	if err != nil {
		return nil, nil, err
	}
	return st.buf, st.fixups, nil
}

// state is the per-call working buffer.
type state struct {
	inst   cpu.Instruction
	opts   Options
	buf    []byte
	fixups []fixup.Fixup
}

// encode dispatches one real (non-pseudo) instruction.
func (st *state) encode(form cpu.Form) error {
	switch st.inst.Op {
	case cpu.ADC16SP, cpu.ADC16aa, cpu.ADC16ao,
		cpu.JP16, cpu.JP16CC, cpu.JR, cpu.JRCC,
		cpu.LD16or, cpu.LD16pr, cpu.LD16ro, cpu.LD16rp:
		return fmt.Errorf("%w: %s: not implemented", ErrUnsupported, st.inst.Op)
	}

	if err := st.checkOperands(form.Operands); err != nil {
		return err
	}

	switch op := st.inst.Op; op {
	case cpu.ADC8ai, cpu.ADC8ao, cpu.ADC8ap, cpu.ADC8ar,
		cpu.ADD8ai, cpu.ADD8ao, cpu.ADD8ap, cpu.ADD8ar,
		cpu.AND8ai, cpu.AND8ao, cpu.AND8ap, cpu.AND8ar,
		cpu.CP8ai, cpu.CP8ao, cpu.CP8ap, cpu.CP8ar,
		cpu.OR8ai, cpu.OR8ao, cpu.OR8ap, cpu.OR8ar,
		cpu.SBC8ai, cpu.SBC8ao, cpu.SBC8ap, cpu.SBC8ar,
		cpu.SUB8ai, cpu.SUB8ao, cpu.SUB8ap, cpu.SUB8ar,
		cpu.XOR8ai, cpu.XOR8ao, cpu.XOR8ap, cpu.XOR8ar:
		return st.alu8()

	case cpu.ADD16SP, cpu.ADD16aa, cpu.ADD16ao,
		cpu.SBC16SP, cpu.SBC16aa, cpu.SBC16ao:
		return st.arith16()

	case cpu.INC16SP, cpu.INC16r, cpu.INC8o, cpu.INC8p, cpu.INC8r,
		cpu.DEC16SP, cpu.DEC16r, cpu.DEC8o, cpu.DEC8p, cpu.DEC8r:
		return st.incdec()

	case cpu.BIT8bg, cpu.BIT8bo, cpu.BIT8bp,
		cpu.RES8bg, cpu.RES8bo, cpu.RES8bp,
		cpu.SET8bg, cpu.SET8bo, cpu.SET8bp:
		return st.bits()

	case cpu.RL8o, cpu.RL8p, cpu.RL8r,
		cpu.RLC8o, cpu.RLC8p, cpu.RLC8r,
		cpu.RR8o, cpu.RR8p, cpu.RR8r,
		cpu.RRC8o, cpu.RRC8p, cpu.RRC8r,
		cpu.SLA8o, cpu.SLA8p, cpu.SLA8r,
		cpu.SRA8o, cpu.SRA8p, cpu.SRA8r,
		cpu.SRL8o, cpu.SRL8p, cpu.SRL8r:
		return st.rotate()

	case cpu.LD16SP, cpu.LD16am, cpu.LD16ma, cpu.LD16mo, cpu.LD16om, cpu.LD16ri:
		return st.load16()

	case cpu.LD8am, cpu.LD8ma, cpu.LD8gg, cpu.LD8xx, cpu.LD8yy,
		cpu.LD8go, cpu.LD8gp, cpu.LD8og, cpu.LD8oi,
		cpu.LD8pg, cpu.LD8pi, cpu.LD8ri:
		return st.load8()

	case cpu.LEA16ro:
		return st.lea()

	case cpu.CALL16, cpu.CALL16CC, cpu.JP16r,
		cpu.RET16, cpu.RET16CC, cpu.RETI16, cpu.RETN16:
		return st.flow()

	case cpu.PUSH16AF, cpu.PUSH16r, cpu.POP16AF, cpu.POP16r:
		return st.stack()

	case cpu.EXAF, cpu.EXX, cpu.EX16DE, cpu.EX16SP:
		return st.exchange()

	case cpu.CPD16, cpu.CPDR16, cpu.CPI16, cpu.CPIR16,
		cpu.LDD16, cpu.LDDR16, cpu.LDI16, cpu.LDIR16,
		cpu.IND16, cpu.INDR16, cpu.INI16, cpu.INIR16,
		cpu.OUTD16, cpu.OUTDR16, cpu.OUTI16, cpu.OUTIR16:
		return st.block()

	case cpu.CCF, cpu.CPL, cpu.SCF, cpu.NOP, cpu.DI, cpu.EI, cpu.NEG:
		return st.misc()

	default:
		return fmt.Errorf("%w: %s: no encoding defined", ErrUnsupported, op)
	}
}

// emit appends raw bytes to the instruction buffer.
func (st *state) emit(bs ...byte) {
	st.buf = append(st.buf, bs...)
}

// addFixup records a patch request at the current byte offset.
func (st *state) addFixup(k fixup.Kind, ex *cpu.Expr) {
	st.fixups = append(st.fixups, fixup.Fixup{
		Offset: len(st.buf),
		Expr:   ex,
		Kind:   k,
		Loc:    st.inst.Loc,
	})
}

// badf builds a malformed-instruction error carrying the mnemonic.
func (st *state) badf(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformed, st.inst.Op, fmt.Sprintf(format, args...))
}

// checkOperands asserts the exact operand count for the form.
func (st *state) checkOperands(want int) error {
	if got := len(st.inst.Operands); got != want {
		return st.badf("want %d operands, got %d", want, got)
	}
	return nil
}
