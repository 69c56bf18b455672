package chip8

// stack is the fixed capacity call stack of return addresses.
type stack struct {
	entries [StackSize]uint16
	sp      int
}

func (s *stack) push(address uint16) error {
	if s.sp == StackSize {
		return ErrStackOverflow
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

func (s *stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}
