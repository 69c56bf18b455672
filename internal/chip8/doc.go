// Package chip8 implements the CHIP-8 interpreter core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language from the 1970s designed for simple games.
// The interpreter emulates its virtual machine:
//   - 4KB of memory (0x000-0xFFF), font glyphs below ProgramStart, programs from ProgramStart
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as the flag register
//   - a 16-bit index register I and a program counter
//   - a call stack of StackSize return addresses
//   - delay and sound timers counting down at TimerFrequency
//   - a 64x32 monochrome framebuffer and a 16 key hexadecimal keypad
//
// # Memory Layout
//
//	0x000-0x04F: Font glyphs for the hex digits 0-F (5 bytes each)
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: Program and data area
//
// # Execution
//
// The host drives the interpreter by calling Cycle once per emulated instruction and
// passing the real time that elapsed since the previous call. Timers are decremented
// from that accumulated time, independent of the instruction rate:
//
//	cpu := chip8.New(logger)
//	if err := cpu.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for range instructionsPerFrame {
//		if err := cpu.Cycle(frameTime / instructionsPerFrame); err != nil {
//			return err
//		}
//	}
//
// # Behavior Choices
//
//   - Sprites wrap around the screen edges on both axes.
//   - FX55 and FX65 advance I by X+1.
//   - 8XY6 and 8XYE shift VY into VX.
//   - Unknown opcodes are logged once per address and executed as no-ops.
//   - Stack overflow, stack underflow and out of range memory accesses halt the interpreter
//     until Reset or Load is called. Load starts the new program on a reset machine.
package chip8
