package controller

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/skx/st7036emu/bus"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		b        byte
		extended bool
		set      InstructionSet
		expected OpKind
	}{
		{"clear", 0x01, false, 0, OpClearDisplay},
		{"home", 0x02, false, 0, OpReturnHome},
		{"home ignores bit 0", 0x03, true, 0, OpReturnHome},
		{"entry", 0x06, false, 0, OpSetEntryMode},
		{"display", 0x0C, true, 1, OpSwitchDisplay},
		{"basic shift", 0x1C, false, 0, OpShift},
		{"is0 shift", 0x10, true, 0, OpShift},
		{"is1 bias", 0x1D, true, 1, OpSetBias},
		{"is2 double height", 0x18, true, 2, OpSetDoubleHeightPosition},
		{"function", 0x38, false, 0, OpSetFunction},
		{"function beats lower bits", 0x3F, true, 2, OpSetFunction},
		{"basic cgram", 0x40, false, 0, OpSetCGRAMAddress},
		{"is0 cgram", 0x7F, true, 0, OpSetCGRAMAddress},
		{"is1 icon address", 0x4F, true, 1, OpSetIconAddress},
		{"is1 power", 0x5C, true, 1, OpSetPowerIconContrastHigh},
		{"is1 follower", 0x6C, true, 1, OpControlFollower},
		{"is1 contrast low", 0x7F, true, 1, OpSetContrastLow},
		{"ddram", 0x80, true, 2, OpSetDDRAMAddress},
		{"ddram beats everything", 0xFF, false, 0, OpSetDDRAMAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(tt.b, bus.Instruction, bus.Write, tt.extended, tt.set)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op.Kind)
			assert.Equal(t, tt.b, op.Arg)
		})
	}
}

func TestDecodeRegisters(t *testing.T) {
	op, err := Decode('A', bus.Data, bus.Write, true, 0)
	assert.NoError(t, err)
	assert.Equal(t, Operation{Kind: OpWriteData, Arg: 'A'}, op)

	op, err = Decode(0xFF, bus.Data, bus.Read, true, 0)
	assert.NoError(t, err)
	assert.Equal(t, OpReadData, op.Kind)

	op, err = Decode(0x01, bus.Instruction, bus.Read, true, 0)
	assert.NoError(t, err)
	assert.Equal(t, OpReadBusyAndAddress, op.Kind)

	// data access works in any table
	_, err = Decode('A', bus.Data, bus.Write, true, 3)
	assert.NoError(t, err)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(0x00, bus.Instruction, bus.Write, false, 0)
	assert.True(t, errors.Is(err, ErrUnknownInstruction))

	_, err = Decode(0x00, bus.Instruction, bus.Write, true, 1)
	assert.True(t, errors.Is(err, ErrUnknownInstruction))

	for b := 0x40; b < 0x80; b++ {
		_, err = Decode(byte(b), bus.Instruction, bus.Write, true, 2)
		assert.True(t, errors.Is(err, ErrReservedInstruction))
	}

	for _, b := range []byte{0x01, 0x38, 0x80} {
		_, err = Decode(b, bus.Instruction, bus.Write, true, 3)
		assert.True(t, errors.Is(err, ErrReservedTable))
		assert.True(t, errors.Is(err, ErrConfiguration))
	}

	// in basic mode the table doesn't matter
	_, err = Decode(0x01, bus.Instruction, bus.Write, false, 3)
	assert.NoError(t, err)
}

func TestOpKindString(t *testing.T) {
	for k := OpReadData; k <= OpSetDoubleHeightPosition; k++ {
		assert.NotEmpty(t, k.String())
		assert.False(t, k.String()[0] == 'O', "missing name")
	}
	assert.Equal(t, "OpKind(99)", OpKind(99).String())
	assert.Equal(t, "set-ddram-address(0x85)", Operation{Kind: OpSetDDRAMAddress, Arg: 0x85}.String())

	assert.Equal(t, "ddram", MemoryDDRAM.String())
	assert.Equal(t, "MemoryTag(9)", MemoryTag(9).String())
}
