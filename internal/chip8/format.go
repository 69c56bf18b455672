package chip8

import "fmt"

// formatNone formats instructions without parameters (CLS, RET).
func formatNone(Instruction) string {
	return ""
}

// formatAddress formats absolute address instructions (JP addr, CALL addr).
func formatAddress(ins Instruction) string {
	return fmt.Sprintf("$%03X", ins.NNN)
}

// formatIndexAddress formats the index register load (LD I, addr).
func formatIndexAddress(ins Instruction) string {
	return fmt.Sprintf("I, $%03X", ins.NNN)
}

// formatOffsetAddress formats the indexed jump (JP V0, addr).
func formatOffsetAddress(ins Instruction) string {
	return fmt.Sprintf("V0, $%03X", ins.NNN)
}

// formatRegisterByte formats register and immediate byte instructions (SE, SNE, LD, ADD, RND).
func formatRegisterByte(ins Instruction) string {
	return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
}

// formatRegisters formats register to register instructions.
func formatRegisters(ins Instruction) string {
	return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
}

// formatRegister formats single register instructions (SKP, SKNP).
func formatRegister(ins Instruction) string {
	return fmt.Sprintf("V%X", ins.X)
}

// formatDraw formats the sprite draw instruction (DRW Vx, Vy, n).
func formatDraw(ins Instruction) string {
	return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
}

// formatRegisterFrom returns a formatter for loads from a special operand into VX.
func formatRegisterFrom(source string) func(Instruction) string {
	return func(ins Instruction) string {
		return fmt.Sprintf("V%X, %s", ins.X, source)
	}
}

// formatRegisterTo returns a formatter for operations with VX as source.
func formatRegisterTo(destination string) func(Instruction) string {
	return func(ins Instruction) string {
		return fmt.Sprintf("%s, V%X", destination, ins.X)
	}
}
