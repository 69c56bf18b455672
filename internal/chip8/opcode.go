package chip8

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// opcode describes one entry of the instruction set: the bits that identify it,
// the instruction it belongs to and how it executes and formats.
type opcode struct {
	mask  uint16
	value uint16
	skip  bool

	instruction *chip8.Instruction
	execute     func(c *CPU, ins Instruction) error
	format      func(ins Instruction) string
}

// opcodes is indexed by the high nibble of the instruction word. Families that share
// a high nibble are told apart by the low nibble or low byte in the mask.
var opcodes = [16][]opcode{
	0x0: {
		{mask: 0xFFFF, value: 0x00E0, instruction: chip8.Cls, execute: (*CPU).clearScreen, format: formatNone},
		{mask: 0xFFFF, value: 0x00EE, instruction: chip8.Ret, execute: (*CPU).returnFromSubroutine, format: formatNone},
	},
	0x1: {
		{mask: 0xF000, value: 0x1000, instruction: chip8.Jp, execute: (*CPU).jump, format: formatAddress},
	},
	0x2: {
		{mask: 0xF000, value: 0x2000, instruction: chip8.Call, execute: (*CPU).call, format: formatAddress},
	},
	0x3: {
		{mask: 0xF000, value: 0x3000, skip: true, instruction: chip8.Se, execute: (*CPU).skipEqualImmediate, format: formatRegisterByte},
	},
	0x4: {
		{mask: 0xF000, value: 0x4000, skip: true, instruction: chip8.Sne, execute: (*CPU).skipNotEqualImmediate, format: formatRegisterByte},
	},
	0x5: {
		{mask: 0xF00F, value: 0x5000, skip: true, instruction: chip8.Se, execute: (*CPU).skipEqualRegister, format: formatRegisters},
	},
	0x6: {
		{mask: 0xF000, value: 0x6000, instruction: chip8.Ld, execute: (*CPU).loadImmediate, format: formatRegisterByte},
	},
	0x7: {
		{mask: 0xF000, value: 0x7000, instruction: chip8.Add, execute: (*CPU).addImmediate, format: formatRegisterByte},
	},
	0x8: {
		{mask: 0xF00F, value: 0x8000, instruction: chip8.Ld, execute: (*CPU).move, format: formatRegisters},
		{mask: 0xF00F, value: 0x8001, instruction: chip8.Or, execute: (*CPU).or, format: formatRegisters},
		{mask: 0xF00F, value: 0x8002, instruction: chip8.And, execute: (*CPU).and, format: formatRegisters},
		{mask: 0xF00F, value: 0x8003, instruction: chip8.Xor, execute: (*CPU).xor, format: formatRegisters},
		{mask: 0xF00F, value: 0x8004, instruction: chip8.Add, execute: (*CPU).addRegister, format: formatRegisters},
		{mask: 0xF00F, value: 0x8005, instruction: chip8.Sub, execute: (*CPU).subtract, format: formatRegisters},
		{mask: 0xF00F, value: 0x8006, instruction: chip8.Shr, execute: (*CPU).shiftRight, format: formatRegisters},
		{mask: 0xF00F, value: 0x8007, instruction: chip8.Subn, execute: (*CPU).subtractReverse, format: formatRegisters},
		{mask: 0xF00F, value: 0x800E, instruction: chip8.Shl, execute: (*CPU).shiftLeft, format: formatRegisters},
	},
	0x9: {
		{mask: 0xF00F, value: 0x9000, skip: true, instruction: chip8.Sne, execute: (*CPU).skipNotEqualRegister, format: formatRegisters},
	},
	0xA: {
		{mask: 0xF000, value: 0xA000, instruction: chip8.Ld, execute: (*CPU).loadIndex, format: formatIndexAddress},
	},
	0xB: {
		{mask: 0xF000, value: 0xB000, instruction: chip8.Jp, execute: (*CPU).jumpOffset, format: formatOffsetAddress},
	},
	0xC: {
		{mask: 0xF000, value: 0xC000, instruction: chip8.Rnd, execute: (*CPU).randomMask, format: formatRegisterByte},
	},
	0xD: {
		{mask: 0xF000, value: 0xD000, instruction: chip8.Drw, execute: (*CPU).draw, format: formatDraw},
	},
	0xE: {
		{mask: 0xF0FF, value: 0xE09E, skip: true, instruction: chip8.Skp, execute: (*CPU).skipKeyPressed, format: formatRegister},
		{mask: 0xF0FF, value: 0xE0A1, skip: true, instruction: chip8.Sknp, execute: (*CPU).skipKeyNotPressed, format: formatRegister},
	},
	0xF: {
		{mask: 0xF0FF, value: 0xF007, instruction: chip8.Ld, execute: (*CPU).loadDelay, format: formatRegisterFrom("DT")},
		{mask: 0xF0FF, value: 0xF00A, instruction: chip8.Ld, execute: (*CPU).waitKey, format: formatRegisterFrom("K")},
		{mask: 0xF0FF, value: 0xF015, instruction: chip8.Ld, execute: (*CPU).setDelay, format: formatRegisterTo("DT")},
		{mask: 0xF0FF, value: 0xF018, instruction: chip8.Ld, execute: (*CPU).setSound, format: formatRegisterTo("ST")},
		{mask: 0xF0FF, value: 0xF01E, instruction: chip8.Add, execute: (*CPU).addIndex, format: formatRegisterTo("I")},
		{mask: 0xF0FF, value: 0xF029, instruction: chip8.Ld, execute: (*CPU).loadGlyph, format: formatRegisterTo("F")},
		{mask: 0xF0FF, value: 0xF033, instruction: chip8.Ld, execute: (*CPU).storeBCD, format: formatRegisterTo("B")},
		{mask: 0xF0FF, value: 0xF055, instruction: chip8.Ld, execute: (*CPU).storeRegisters, format: formatRegisterTo("[I]")},
		{mask: 0xF0FF, value: 0xF065, instruction: chip8.Ld, execute: (*CPU).loadRegisters, format: formatRegisterFrom("[I]")},
	},
}
