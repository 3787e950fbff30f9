// Package zelf maps fixup kinds to ELF relocation types for the
// object writer.
package zelf

import (
	"fmt"

	"github.com/Urethramancer/z80/fixup"
)

// RelocType is an ELF relocation type code.
type RelocType uint32

// Relocation types.
const (
	RNone RelocType = iota
	R8
	R8Dis
	R8PCRel
	R16
	R24
	R32
	RByte0
	RByte1
	RByte2
	RByte3
	RWord0
	RWord1
	R16BE
)

var relocNames = map[RelocType]string{
	RNone:   "R_Z80_NONE",
	R8:      "R_Z80_8",
	R8Dis:   "R_Z80_8_DIS",
	R8PCRel: "R_Z80_8_PCREL",
	R16:     "R_Z80_16",
	R24:     "R_Z80_24",
	R32:     "R_Z80_32",
	RByte0:  "R_Z80_BYTE0",
	RByte1:  "R_Z80_BYTE1",
	RByte2:  "R_Z80_BYTE2",
	RByte3:  "R_Z80_BYTE3",
	RWord0:  "R_Z80_WORD0",
	RWord1:  "R_Z80_WORD1",
	R16BE:   "R_Z80_16_BE",
}

func (r RelocType) String() string {
	if n, ok := relocNames[r]; ok {
		return n
	}
	return "?"
}

var relocForKind = map[fixup.Kind]RelocType{
	fixup.Kind8:      R8,
	fixup.Kind8Dis:   R8Dis,
	fixup.Kind8PCRel: R8PCRel,
	fixup.Kind16:     R16,
	fixup.Kind24:     R24,
	fixup.Kind32:     R32,
	fixup.KindByte0:  RByte0,
	fixup.KindByte1:  RByte1,
	fixup.KindByte2:  RByte2,
	fixup.KindByte3:  RByte3,
	fixup.KindWord0:  RWord0,
	fixup.KindWord1:  RWord1,
	fixup.Kind16BE:   R16BE,
}

// RelocFor returns the relocation type for a fixup kind. A kind with
// no mapping means the kind registry and this table have diverged.
func RelocFor(k fixup.Kind) (RelocType, error) {
	r, ok := relocForKind[k]
	if !ok {
		return RNone, fmt.Errorf("no relocation type for fixup kind %d (%s)", k, k)
	}
	return r, nil
}
