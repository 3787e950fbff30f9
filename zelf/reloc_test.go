package zelf_test

import (
	"testing"

	"github.com/Urethramancer/z80/fixup"
	"github.com/Urethramancer/z80/zelf"
)

func TestRelocForAllKinds(t *testing.T) {
	for _, k := range fixup.Kinds() {
		r, err := zelf.RelocFor(k)
		if err != nil {
			t.Errorf("%s: %v", k, err)
			continue
		}
		if r.String() == "?" {
			t.Errorf("%s maps to unnamed relocation type %d", k, r)
		}
	}
}

func TestRelocForUnknownKind(t *testing.T) {
	if _, err := zelf.RelocFor(fixup.Kind(200)); err == nil {
		t.Error("expected error for unknown fixup kind")
	}
}

func TestRelocMapping(t *testing.T) {
	tests := []struct {
		kind fixup.Kind
		want zelf.RelocType
		name string
	}{
		{fixup.Kind8, zelf.R8, "R_Z80_8"},
		{fixup.Kind8Dis, zelf.R8Dis, "R_Z80_8_DIS"},
		{fixup.Kind8PCRel, zelf.R8PCRel, "R_Z80_8_PCREL"},
		{fixup.Kind16, zelf.R16, "R_Z80_16"},
		{fixup.Kind24, zelf.R24, "R_Z80_24"},
		{fixup.Kind16BE, zelf.R16BE, "R_Z80_16_BE"},
	}
	for _, tc := range tests {
		r, err := zelf.RelocFor(tc.kind)
		if err != nil {
			t.Errorf("%s: %v", tc.kind, err)
			continue
		}
		if r != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.kind, tc.want, r)
		}
		if r.String() != tc.name {
			t.Errorf("%s: expected name %q, got %q", tc.kind, tc.name, r.String())
		}
	}
}
