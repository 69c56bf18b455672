package chip8

import "errors"

var (
	// ErrProgramTooLarge is returned by Load when the program does not fit into the program area.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrNoProgram is returned by Cycle when no program has been loaded since the last reset.
	ErrNoProgram = errors.New("no program loaded")

	// ErrStackOverflow is a fatal error caused by a call with a full call stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is a fatal error caused by a return with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryBounds is a fatal error caused by an access beyond the end of memory.
	ErrMemoryBounds = errors.New("memory access out of bounds")
	// ErrReservedMemory is a fatal error caused by a write below ProgramStart.
	ErrReservedMemory = errors.New("write to reserved memory")
)

// IsFatal returns whether the error halts the interpreter.
func IsFatal(err error) bool {
	return errors.Is(err, ErrStackOverflow) ||
		errors.Is(err, ErrStackUnderflow) ||
		errors.Is(err, ErrMemoryBounds) ||
		errors.Is(err, ErrReservedMemory)
}
