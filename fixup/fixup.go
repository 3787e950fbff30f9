// Package fixup defines the relocation patch requests the encoder can
// attach to emitted machine code, and their per-kind metadata.
package fixup

import "github.com/Urethramancer/z80/cpu"

// Kind identifies one relocation semantics. The declaration order is
// stable and shared with the object writer.
type Kind uint8

const (
	// Kind8 patches an absolute 8-bit value.
	Kind8 Kind = iota
	// Kind8Dis patches an 8-bit index displacement.
	Kind8Dis
	// Kind8PCRel patches an 8-bit PC-relative branch target.
	Kind8PCRel
	// Kind16 patches an absolute little-endian 16-bit value.
	Kind16
	// Kind24 patches an absolute little-endian 24-bit value.
	Kind24
	// Kind32 patches an absolute little-endian 32-bit value.
	Kind32
	// KindByte0 through KindByte3 patch one byte slice of a 32-bit
	// linked address, for bank-switched addressing schemes.
	KindByte0
	KindByte1
	KindByte2
	KindByte3
	// KindWord0 and KindWord1 patch one 16-bit slice of a 32-bit
	// linked address.
	KindWord0
	KindWord1
	// Kind16BE patches a big-endian 16-bit value.
	Kind16BE

	numKinds
)

var kindNames = map[Kind]string{
	Kind8:      "fixup_8",
	Kind8Dis:   "fixup_8_dis",
	Kind8PCRel: "fixup_8_pcrel",
	Kind16:     "fixup_16",
	Kind24:     "fixup_24",
	Kind32:     "fixup_32",
	KindByte0:  "fixup_byte0",
	KindByte1:  "fixup_byte1",
	KindByte2:  "fixup_byte2",
	KindByte3:  "fixup_byte3",
	KindWord0:  "fixup_word0",
	KindWord1:  "fixup_word1",
	Kind16BE:   "fixup_16_be",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "?"
}

// Info is the metadata the object writer needs to apply a fixup.
// The slice kinds declare 32 bits even though the patched window is
// narrower: the resolver computes the full 32-bit address first, then
// truncates to the slice.
type Info struct {
	Offset int // starting bit offset within the patch window
	Bits   int // bit width of the value being resolved
	PCRel  bool
}

// Infos maps every kind to its metadata.
var Infos = map[Kind]Info{
	Kind8:      {Offset: 0, Bits: 8},
	Kind8Dis:   {Offset: 0, Bits: 8},
	Kind8PCRel: {Offset: 0, Bits: 8, PCRel: true},
	Kind16:     {Offset: 0, Bits: 16},
	Kind24:     {Offset: 0, Bits: 24},
	Kind32:     {Offset: 0, Bits: 32},
	KindByte0:  {Offset: 0, Bits: 32},
	KindByte1:  {Offset: 0, Bits: 32},
	KindByte2:  {Offset: 0, Bits: 32},
	KindByte3:  {Offset: 0, Bits: 32},
	KindWord0:  {Offset: 0, Bits: 32},
	KindWord1:  {Offset: 0, Bits: 32},
	Kind16BE:   {Offset: 0, Bits: 16},
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}

// ForcedRelocation reports whether a fixup of this kind must always
// be turned into a relocation instead of being resolved in place.
func ForcedRelocation(k Kind) bool {
	switch k {
	case Kind8Dis, Kind8PCRel, Kind16:
		return true
	}
	return false
}

// Fixup is one patch request: a window of the emitted bytes to
// rewrite once the expression's symbol is resolved.
type Fixup struct {
	Offset int // byte offset within the instruction's emitted bytes
	Expr   *cpu.Expr
	Kind   Kind
	Loc    cpu.Loc
}
