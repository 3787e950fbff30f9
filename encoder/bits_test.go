package encoder_test

import (
	"testing"

	"github.com/Urethramancer/z80/cpu"
)

func TestBitOps(t *testing.T) {
	tests := []struct {
		name string
		inst cpu.Instruction
		hex  string
	}{
		{"BIT_3_B", cpu.New(cpu.BIT8bg, cpu.ImmOp(3), cpu.RegOp(cpu.B)), "cb 58"},
		{"BIT_7_A", cpu.New(cpu.BIT8bg, cpu.ImmOp(7), cpu.RegOp(cpu.A)), "cb 7f"},
		{"RES_0_A", cpu.New(cpu.RES8bg, cpu.ImmOp(0), cpu.RegOp(cpu.A)), "cb 87"},
		{"SET_1_L", cpu.New(cpu.SET8bg, cpu.ImmOp(1), cpu.RegOp(cpu.L)), "cb cd"},
		{"BIT_1_IXd", cpu.New(cpu.BIT8bo, cpu.ImmOp(1), cpu.RegOp(cpu.IX), cpu.ImmOp(4)), "dd cb 04 4e"},
		{"SET_6_IYd", cpu.New(cpu.SET8bo, cpu.ImmOp(6), cpu.RegOp(cpu.IY), cpu.ImmOp(-3)), "fd cb fd f6"},
		{"SET_7_HLind", cpu.New(cpu.SET8bp, cpu.ImmOp(7), cpu.RegOp(cpu.HL)), "cb fe"},
		{"RES_2_IYind", cpu.New(cpu.RES8bp, cpu.ImmOp(2), cpu.RegOp(cpu.IY)), "fd cb 00 96"},
		// bit writes the index register back even though it only
		// reads; res and set restore without the writeback.
		{"BIT_5_IXH", cpu.New(cpu.BIT8bg, cpu.ImmOp(5), cpu.RegOp(cpu.IXH)), "e5 dd e5 e1 cb 6c e5 dd e1 e1"},
		{"RES_5_IYL", cpu.New(cpu.RES8bg, cpu.ImmOp(5), cpu.RegOp(cpu.IYL)), "e5 fd e5 e1 cb ad e1"},
		{"SET_0_IXL", cpu.New(cpu.SET8bg, cpu.ImmOp(0), cpu.RegOp(cpu.IXL)), "e5 dd e5 e1 cb c5 e1"},
	}
	for _, tc := range tests {
		encodeAndMatchHex(t, tc.name, tc.inst, tc.hex)
	}
}

func TestBitIndexRange(t *testing.T) {
	// Bit 8 and up is rejected across the family, 0..7 all encode.
	family := []cpu.Op{cpu.BIT8bg, cpu.RES8bg, cpu.SET8bg}
	for _, op := range family {
		for b := int64(0); b < 8; b++ {
			inst := cpu.New(op, cpu.ImmOp(b), cpu.RegOp(cpu.B))
			if _, _, err := encodeZ80(t, inst); err != nil {
				t.Errorf("[%s bit %d] unexpected error: %v", op, b, err)
			}
		}
		expectMalformed(t, op.String()+"_bit8",
			cpu.New(op, cpu.ImmOp(8), cpu.RegOp(cpu.B)))
	}
	expectMalformed(t, "BIT8bo_bit8",
		cpu.New(cpu.BIT8bo, cpu.ImmOp(8), cpu.RegOp(cpu.IX), cpu.ImmOp(0)))
	expectMalformed(t, "RES8bp_bit8",
		cpu.New(cpu.RES8bp, cpu.ImmOp(8), cpu.RegOp(cpu.HL)))
	expectMalformed(t, "SET8bo_bit9",
		cpu.New(cpu.SET8bo, cpu.ImmOp(9), cpu.RegOp(cpu.IY), cpu.ImmOp(0)))
}

func TestRotates(t *testing.T) {
	tests := []struct {
		name string
		inst cpu.Instruction
		hex  string
	}{
		{"RLC_B", cpu.New(cpu.RLC8r, cpu.RegOp(cpu.B)), "cb 00"},
		{"RRC_D", cpu.New(cpu.RRC8r, cpu.RegOp(cpu.D)), "cb 0a"},
		{"RL_A", cpu.New(cpu.RL8r, cpu.RegOp(cpu.A)), "cb 17"},
		{"RR_C", cpu.New(cpu.RR8r, cpu.RegOp(cpu.C)), "cb 19"},
		{"SLA_E", cpu.New(cpu.SLA8r, cpu.RegOp(cpu.E)), "cb 23"},
		{"SRA_H", cpu.New(cpu.SRA8r, cpu.RegOp(cpu.H)), "cb 2c"},
		{"SRL_L", cpu.New(cpu.SRL8r, cpu.RegOp(cpu.L)), "cb 3d"},
		{"SLA_HLind", cpu.New(cpu.SLA8p, cpu.RegOp(cpu.HL)), "cb 26"},
		{"SRA_IXd", cpu.New(cpu.SRA8o, cpu.RegOp(cpu.IX), cpu.ImmOp(1)), "dd cb 01 2e"},
		{"RLC_IYd", cpu.New(cpu.RLC8o, cpu.RegOp(cpu.IY), cpu.ImmOp(-8)), "fd cb f8 06"},
		{"RL_IXH", cpu.New(cpu.RL8r, cpu.RegOp(cpu.IXH)), "e5 dd e5 e1 cb 14 e5 dd e1 e1"},
		{"SRL_IYL", cpu.New(cpu.SRL8r, cpu.RegOp(cpu.IYL)), "e5 fd e5 e1 cb 3d e5 fd e1 e1"},
	}
	for _, tc := range tests {
		encodeAndMatchHex(t, tc.name, tc.inst, tc.hex)
	}

	expectMalformed(t, "RL_BC", cpu.New(cpu.RL8r, cpu.RegOp(cpu.BC)))
	expectMalformed(t, "SLA_IXind", cpu.New(cpu.SLA8p, cpu.RegOp(cpu.IX)))
}
