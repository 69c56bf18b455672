package chip8

import (
	"fmt"
	"strings"
)

// Instruction is a decoded 16-bit instruction word with its operand fields.
type Instruction struct {
	Word uint16

	X   byte   // register index in bits 8-11
	Y   byte   // register index in bits 4-7
	N   byte   // lowest nibble
	NN  byte   // lowest byte
	NNN uint16 // lowest 12 bits

	opcode *opcode
}

// Decode extracts the operand fields of the instruction word and looks up the matching
// opcode, first by the high nibble and then by the distinguishing bits of the family.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    byte(word>>8) & 0x0F,
		Y:    byte(word>>4) & 0x0F,
		N:    byte(word) & 0x0F,
		NN:   byte(word),
		NNN:  word & 0x0FFF,
	}

	family := opcodes[word>>12]
	for i := range family {
		if word&family[i].mask == family[i].value {
			ins.opcode = &family[i]
			break
		}
	}
	return ins
}

// Known returns whether the word matched an opcode of the instruction set.
func (i Instruction) Known() bool {
	return i.opcode != nil
}

// Name returns the instruction mnemonic or an empty string for unknown words.
func (i Instruction) Name() string {
	if i.opcode == nil {
		return ""
	}
	return strings.ToUpper(i.opcode.instruction.Name)
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	return i.opcode != nil && i.opcode.skip
}

// String returns the instruction in assembly notation, unknown words are
// returned as data word.
func (i Instruction) String() string {
	if i.opcode == nil {
		return fmt.Sprintf("DW $%04X", i.Word)
	}
	params := i.opcode.format(i)
	if params == "" {
		return i.Name()
	}
	return i.Name() + " " + params
}

// Disassemble returns the assembly notation of an instruction word.
func Disassemble(word uint16) string {
	return Decode(word).String()
}
