// enc80 encodes a YAML instruction listing and prints the machine
// code bytes with any fixups each instruction needs.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Urethramancer/z80/cpu"
	"github.com/Urethramancer/z80/encoder"
	"github.com/Urethramancer/z80/zelf"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// Listing is the YAML input format. Fields left out fall back to the
// ENC80_CPU and ENC80_JR environment variables.
type Listing struct {
	CPU           string        `yaml:"cpu"`
	RelativeJumps *bool         `yaml:"relative-jumps"`
	Program       []Instruction `yaml:"program"`
}

// Instruction is one line of the listing: a form name plus operands.
// A number is an immediate, a register name is a register and any
// other string is a symbol reference.
type Instruction struct {
	Op       string `yaml:"op"`
	Operands []any  `yaml:"operands"`
}

func main() {
	if len(os.Args) < 2 {
		fail("usage: enc80 <listing.yaml>")
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fail("%v", err)
	}

	var l Listing
	if err := yaml.Unmarshal(data, &l); err != nil {
		fail("%s: %v", os.Args[1], err)
	}

	model := l.CPU
	if model == "" {
		model = env.Str("ENC80_CPU", "z80")
	}
	sub := cpu.Z80
	if model == "ez80" {
		sub = cpu.EZ80
	}

	opts := encoder.Options{RelativeJumps: env.Bool("ENC80_JR")}
	if l.RelativeJumps != nil {
		opts.RelativeJumps = *l.RelativeJumps
	}

	enc := encoder.New(opts)
	offset := 0
	for i, line := range l.Program {
		inst, err := parseInstruction(line)
		if err != nil {
			fail("program[%d]: %v", i, err)
		}
		code, fixups, err := enc.Encode(inst, sub)
		if err != nil {
			fail("program[%d]: %v", i, err)
		}

		hex := make([]string, len(code))
		for j, b := range code {
			hex[j] = fmt.Sprintf("%02x", b)
		}
		fmt.Printf("%04x: %-24s %s\n", offset, strings.Join(hex, " "), inst.Op)
		for _, f := range fixups {
			reloc, err := zelf.RelocFor(f.Kind)
			if err != nil {
				fail("program[%d]: %v", i, err)
			}
			fmt.Printf("      %s @ %d -> %s (%s)\n", f.Kind, f.Offset, reloc, f.Expr)
		}
		offset += len(code)
	}
}

func parseInstruction(line Instruction) (cpu.Instruction, error) {
	op, ok := cpu.OpByName(line.Op)
	if !ok {
		return cpu.Instruction{}, fmt.Errorf("unknown instruction form %q", line.Op)
	}
	operands := make([]cpu.Operand, 0, len(line.Operands))
	for _, raw := range line.Operands {
		o, err := parseOperand(raw)
		if err != nil {
			return cpu.Instruction{}, fmt.Errorf("%s: %w", line.Op, err)
		}
		operands = append(operands, o)
	}
	return cpu.New(op, operands...), nil
}

func parseOperand(raw any) (cpu.Operand, error) {
	switch v := raw.(type) {
	case int:
		return cpu.ImmOp(int64(v)), nil
	case int64:
		return cpu.ImmOp(v), nil
	case uint64:
		return cpu.ImmOp(int64(v)), nil
	case string:
		if r, ok := cpu.RegByName(strings.ToLower(v)); ok {
			return cpu.RegOp(r), nil
		}
		return cpu.ExprOp(v, 0), nil
	}
	return cpu.Operand{}, fmt.Errorf("cannot parse operand %v", raw)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
