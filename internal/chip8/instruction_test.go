package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeFields(t *testing.T) {
	ins := Decode(0xD12A)

	assert.Equal(t, uint16(0xD12A), ins.Word)
	assert.Equal(t, byte(0x1), ins.X)
	assert.Equal(t, byte(0x2), ins.Y)
	assert.Equal(t, byte(0xA), ins.N)
	assert.Equal(t, byte(0x2A), ins.NN)
	assert.Equal(t, uint16(0x12A), ins.NNN)
	assert.True(t, ins.Known())
}

func TestDecodeUnknown(t *testing.T) {
	for _, word := range []uint16{0x0000, 0x0123, 0x00E1, 0x5FFF, 0x5121, 0x8008, 0x800F, 0x9001, 0xE000, 0xE19F, 0xF000, 0xF0FF} {
		ins := Decode(word)
		assert.False(t, ins.Known(), "word %04X", word)
		assert.Equal(t, "", ins.Name())
	}
}

func TestDecodeInstructions(t *testing.T) {
	tests := []struct {
		word        uint16
		instruction *chip8.Instruction
	}{
		{0x00E0, chip8.Cls},
		{0x00EE, chip8.Ret},
		{0x1234, chip8.Jp},
		{0x2234, chip8.Call},
		{0x3456, chip8.Se},
		{0x4456, chip8.Sne},
		{0x5450, chip8.Se},
		{0x6456, chip8.Ld},
		{0x7456, chip8.Add},
		{0x8450, chip8.Ld},
		{0x8451, chip8.Or},
		{0x8452, chip8.And},
		{0x8453, chip8.Xor},
		{0x8454, chip8.Add},
		{0x8455, chip8.Sub},
		{0x8456, chip8.Shr},
		{0x8457, chip8.Subn},
		{0x845E, chip8.Shl},
		{0x9450, chip8.Sne},
		{0xA123, chip8.Ld},
		{0xB123, chip8.Jp},
		{0xC4FF, chip8.Rnd},
		{0xD123, chip8.Drw},
		{0xE49E, chip8.Skp},
		{0xE4A1, chip8.Sknp},
		{0xF407, chip8.Ld},
		{0xF40A, chip8.Ld},
		{0xF415, chip8.Ld},
		{0xF418, chip8.Ld},
		{0xF41E, chip8.Add},
		{0xF429, chip8.Ld},
		{0xF433, chip8.Ld},
		{0xF455, chip8.Ld},
		{0xF465, chip8.Ld},
	}

	for _, tt := range tests {
		ins := Decode(tt.word)
		assert.True(t, ins.Known(), "word %04X", tt.word)
		assert.Equal(t, tt.instruction, ins.opcode.instruction)
		assert.Equal(t, strings.ToUpper(tt.instruction.Name), ins.Name())
	}
}

func TestIsSkip(t *testing.T) {
	for _, word := range []uint16{0x3000, 0x4000, 0x5000, 0x9000, 0xE09E, 0xE0A1} {
		assert.True(t, Decode(word).IsSkip(), "word %04X", word)
	}
	assert.False(t, Decode(0x1200).IsSkip())
	assert.False(t, Decode(0x0000).IsSkip())
}

func TestDisassemble(t *testing.T) {
	name := func(ins *chip8.Instruction) string {
		return strings.ToUpper(ins.Name)
	}

	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, name(chip8.Cls)},
		{0x00EE, name(chip8.Ret)},
		{0x1234, name(chip8.Jp) + " $234"},
		{0x2ABC, name(chip8.Call) + " $ABC"},
		{0x3A05, name(chip8.Se) + " VA, $05"},
		{0x5AB0, name(chip8.Se) + " VA, VB"},
		{0x6005, name(chip8.Ld) + " V0, $05"},
		{0x8014, name(chip8.Add) + " V0, V1"},
		{0x8016, name(chip8.Shr) + " V0, V1"},
		{0xA2F0, name(chip8.Ld) + " I, $2F0"},
		{0xB300, name(chip8.Jp) + " V0, $300"},
		{0xC10F, name(chip8.Rnd) + " V1, $0F"},
		{0xD125, name(chip8.Drw) + " V1, V2, $5"},
		{0xE59E, name(chip8.Skp) + " V5"},
		{0xF307, name(chip8.Ld) + " V3, DT"},
		{0xF30A, name(chip8.Ld) + " V3, K"},
		{0xF315, name(chip8.Ld) + " DT, V3"},
		{0xF318, name(chip8.Ld) + " ST, V3"},
		{0xF31E, name(chip8.Add) + " I, V3"},
		{0xF329, name(chip8.Ld) + " F, V3"},
		{0xF333, name(chip8.Ld) + " B, V3"},
		{0xF355, name(chip8.Ld) + " [I], V3"},
		{0xF365, name(chip8.Ld) + " V3, [I]"},
		{0x5FFF, "DW $5FFF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Disassemble(tt.word))
	}
}
