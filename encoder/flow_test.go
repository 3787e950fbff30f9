package encoder_test

import (
	"bytes"
	"testing"

	"github.com/Urethramancer/z80/cpu"
	"github.com/Urethramancer/z80/encoder"
	"github.com/Urethramancer/z80/fixup"
)

func TestCallsAndReturns(t *testing.T) {
	tests := []struct {
		name string
		inst cpu.Instruction
		hex  string
	}{
		{"CALL_nn", cpu.New(cpu.CALL16, cpu.ImmOp(0x1234)), "cd 34 12"},
		{"CALL_NZ_nn", cpu.New(cpu.CALL16CC, cpu.ImmOp(0x8000), cpu.ImmOp(0)), "c4 00 80"},
		{"RET", cpu.New(cpu.RET16), "c9"},
		{"RET_NZ", cpu.New(cpu.RET16CC, cpu.ImmOp(0)), "c0"},
		{"RET_C", cpu.New(cpu.RET16CC, cpu.ImmOp(3)), "d8"},
		{"RET_M", cpu.New(cpu.RET16CC, cpu.ImmOp(7)), "f8"},
		{"RETI", cpu.New(cpu.RETI16), "ed 4d"},
		{"RETN", cpu.New(cpu.RETN16), "ed 45"},
		{"JP_HLind", cpu.New(cpu.JP16r, cpu.RegOp(cpu.HL)), "e9"},
		{"JP_IYind", cpu.New(cpu.JP16r, cpu.RegOp(cpu.IY)), "fd e9"},
	}
	for _, tc := range tests {
		encodeAndMatchHex(t, tc.name, tc.inst, tc.hex)
	}

	encodeWithFixup(t, "CALL_sym",
		cpu.New(cpu.CALL16, cpu.ExprOp("entry", 0)),
		"cd 00 00", fixup.Kind16, 1)
	encodeWithFixup(t, "CALL_NC_sym",
		cpu.New(cpu.CALL16CC, cpu.ExprOp("foo", 0), cpu.ImmOp(2)),
		"d4 00 00", fixup.Kind16, 1)

	expectMalformed(t, "RET_CC_range", cpu.New(cpu.RET16CC, cpu.ImmOp(8)))
	expectMalformed(t, "CALL_CC_range",
		cpu.New(cpu.CALL16CC, cpu.ExprOp("foo", 0), cpu.ImmOp(8)))
	// A conditional call target must be a plain symbol reference.
	expectMalformed(t, "CALL_CC_addend",
		cpu.New(cpu.CALL16CC, cpu.ExprOp("foo", 4), cpu.ImmOp(2)))
	expectMalformed(t, "JP_BCind", cpu.New(cpu.JP16r, cpu.RegOp(cpu.BC)))
}

func TestRelaxableJumpLong(t *testing.T) {
	encodeWithFixup(t, "JQ_long",
		cpu.New(cpu.JQ, cpu.ExprOp("loop", 0)),
		"c3 00 00", fixup.Kind16, 1)
	encodeWithFixup(t, "JQCC_long_NC",
		cpu.New(cpu.JQCC, cpu.ExprOp("loop", 0), cpu.ImmOp(2)),
		"d2 00 00", fixup.Kind16, 1)
	encodeWithFixup(t, "JQCC_long_M",
		cpu.New(cpu.JQCC, cpu.ExprOp("loop", 0), cpu.ImmOp(7)),
		"fa 00 00", fixup.Kind16, 1)

	expectMalformed(t, "JQ_imm", cpu.New(cpu.JQ, cpu.ImmOp(0x1234)))
	expectMalformed(t, "JQCC_range",
		cpu.New(cpu.JQCC, cpu.ExprOp("loop", 0), cpu.ImmOp(8)))
}

func TestRelaxableJumpShort(t *testing.T) {
	enc := encoder.New(encoder.Options{RelativeJumps: true})

	code, fixups, err := enc.Encode(cpu.New(cpu.JQ, cpu.ExprOp("loop", 0)), cpu.Z80)
	if err != nil {
		t.Fatalf("[JQ_short] failed to encode: %v", err)
	}
	if !bytes.Equal(code, []byte{0x18, 0x00}) {
		t.Errorf("[JQ_short] expected 18 00, got % X", code)
	}
	if len(fixups) != 1 || fixups[0].Kind != fixup.Kind8PCRel || fixups[0].Offset != 1 {
		t.Errorf("[JQ_short] expected fixup_8_pcrel at offset 1, got %v", fixups)
	}

	code, fixups, err = enc.Encode(cpu.New(cpu.JQCC, cpu.ExprOp("loop", 0), cpu.ImmOp(3)), cpu.Z80)
	if err != nil {
		t.Fatalf("[JQCC_short] failed to encode: %v", err)
	}
	if !bytes.Equal(code, []byte{0x38, 0x00}) {
		t.Errorf("[JQCC_short] expected 38 00, got % X", code)
	}
	if len(fixups) != 1 || fixups[0].Kind != fixup.Kind8PCRel || fixups[0].Offset != 1 {
		t.Errorf("[JQCC_short] expected fixup_8_pcrel at offset 1, got %v", fixups)
	}

	// jr only has the four low condition codes.
	for cc := int64(0); cc < 4; cc++ {
		if _, _, err := enc.Encode(cpu.New(cpu.JQCC, cpu.ExprOp("loop", 0), cpu.ImmOp(cc)), cpu.Z80); err != nil {
			t.Errorf("[JQCC_short cc %d] unexpected error: %v", cc, err)
		}
	}
	if _, _, err := enc.Encode(cpu.New(cpu.JQCC, cpu.ExprOp("loop", 0), cpu.ImmOp(4)), cpu.Z80); err == nil {
		t.Error("[JQCC_short cc 4] expected error")
	}
}
