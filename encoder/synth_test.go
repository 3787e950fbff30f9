package encoder_test

import (
	"testing"

	"github.com/Urethramancer/z80/cpu"
)

// stackBalanced walks a byte sequence counting register-pair pushes
// and pops, treating DD/FD as a prefix on the following byte. The
// shuffles pop into a different pair than was pushed, so only the
// depth is checked: it must never go negative and must end at zero.
func stackBalanced(t *testing.T, name string, code []byte) {
	t.Helper()
	depth, pushes := 0, 0
	for i := 0; i < len(code); i++ {
		b := code[i]
		if b == 0xDD || b == 0xFD {
			i++
			if i >= len(code) {
				t.Errorf("[%s] dangling prefix at end of % X", name, code)
				return
			}
			b = code[i]
		}
		switch b {
		case 0xE5, 0xD5, 0xC5, 0xF5:
			depth++
			pushes++
		case 0xE1, 0xD1, 0xC1, 0xF1:
			depth--
			if depth < 0 {
				t.Errorf("[%s] pop %02x with empty stack in % X", name, b, code)
				return
			}
		}
	}
	if depth != 0 {
		t.Errorf("[%s] %d unmatched pushes in % X", name, depth, code)
	}
	if pushes == 0 {
		t.Errorf("[%s] expected at least one push in % X", name, code)
	}
}

func TestSynthesisStackDiscipline(t *testing.T) {
	tests := []struct {
		name string
		inst cpu.Instruction
	}{
		{"OR_IXH", cpu.New(cpu.OR8ar, cpu.RegOp(cpu.IXH))},
		{"CP_IYL", cpu.New(cpu.CP8ar, cpu.RegOp(cpu.IYL))},
		{"INC_IXH", cpu.New(cpu.INC8r, cpu.RegOp(cpu.IXH))},
		{"DEC_IYL", cpu.New(cpu.DEC8r, cpu.RegOp(cpu.IYL))},
		{"BIT_5_IXH", cpu.New(cpu.BIT8bg, cpu.ImmOp(5), cpu.RegOp(cpu.IXH))},
		{"SET_2_IYH", cpu.New(cpu.SET8bg, cpu.ImmOp(2), cpu.RegOp(cpu.IYH))},
		{"SLA_IXL", cpu.New(cpu.SLA8r, cpu.RegOp(cpu.IXL))},
		{"LD_B_IXH", cpu.New(cpu.LD8gg, cpu.RegOp(cpu.B), cpu.RegOp(cpu.IXH))},
		{"LD_H_IXL", cpu.New(cpu.LD8gg, cpu.RegOp(cpu.H), cpu.RegOp(cpu.IXL))},
		{"LD_IXH_C", cpu.New(cpu.LD8gg, cpu.RegOp(cpu.IXH), cpu.RegOp(cpu.C))},
		{"LD_IYL_H", cpu.New(cpu.LD8gg, cpu.RegOp(cpu.IYL), cpu.RegOp(cpu.H))},
		{"LD_IXH_IYH", cpu.New(cpu.LD8gg, cpu.RegOp(cpu.IXH), cpu.RegOp(cpu.IYH))},
		{"LD_IYL_IXL", cpu.New(cpu.LD8gg, cpu.RegOp(cpu.IYL), cpu.RegOp(cpu.IXL))},
		{"LD_IXH_43", cpu.New(cpu.LD8ri, cpu.RegOp(cpu.IXH), cpu.ImmOp(0x43))},
		{"LEA_DE_IX", cpu.New(cpu.LEA16ro, cpu.RegOp(cpu.DE), cpu.RegOp(cpu.IX), cpu.ImmOp(0x12))},
		{"LEA_IX_IX", cpu.New(cpu.LEA16ro, cpu.RegOp(cpu.IX), cpu.RegOp(cpu.IX), cpu.ImmOp(0x12))},
		{"LEA_BC_IY", cpu.New(cpu.LEA16ro, cpu.RegOp(cpu.BC), cpu.RegOp(cpu.IY), cpu.ImmOp(0x12))},
	}
	for _, tc := range tests {
		code, fixups, err := encodeZ80(t, tc.inst)
		if err != nil {
			t.Errorf("[%s] failed to encode: %v", tc.name, err)
			continue
		}
		if len(fixups) != 0 {
			t.Errorf("[%s] unexpected fixups: %v", tc.name, fixups)
		}
		stackBalanced(t, tc.name, code)
	}
}

func TestImmediateRoundTrip(t *testing.T) {
	for v := int64(0); v <= 0xFF; v++ {
		code, _, err := encodeZ80(t, cpu.New(cpu.LD8ri, cpu.RegOp(cpu.B), cpu.ImmOp(v)))
		if err != nil {
			t.Fatalf("[LD B,%d] failed to encode: %v", v, err)
		}
		if len(code) != 2 || int64(code[1]) != v {
			t.Fatalf("[LD B,%d] expected immediate %02x, got % X", v, v, code)
		}
	}
	for v := int64(0); v <= 0xFFFF; v++ {
		code, _, err := encodeZ80(t, cpu.New(cpu.LD16ri, cpu.RegOp(cpu.BC), cpu.ImmOp(v)))
		if err != nil {
			t.Fatalf("[LD BC,%d] failed to encode: %v", v, err)
		}
		if len(code) != 3 || int64(code[1])|int64(code[2])<<8 != v {
			t.Fatalf("[LD BC,%d] expected little-endian %04x, got % X", v, v, code)
		}
	}
}
