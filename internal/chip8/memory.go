package chip8

import "fmt"

// memory is the flat byte addressable store of the machine.
type memory [MemorySize]byte

// checkRange verifies that n bytes starting at address are inside of memory.
func (m *memory) checkRange(address uint16, n int) error {
	if int(address)+n > MemorySize {
		return fmt.Errorf("%w: $%04X+%d", ErrMemoryBounds, address, n)
	}
	return nil
}

// checkWritable verifies that n bytes starting at address can be written by a program.
func (m *memory) checkWritable(address uint16, n int) error {
	if err := m.checkRange(address, n); err != nil {
		return err
	}
	if address < ProgramStart && n > 0 {
		return fmt.Errorf("%w: $%04X", ErrReservedMemory, address)
	}
	return nil
}

// readWord reads a big-endian 16-bit word.
func (m *memory) readWord(address uint16) (uint16, error) {
	if err := m.checkRange(address, 2); err != nil {
		return 0, err
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}

// slice returns n bytes of memory starting at address without copying them.
func (m *memory) slice(address uint16, n int) ([]byte, error) {
	if err := m.checkRange(address, n); err != nil {
		return nil, err
	}
	return m[int(address) : int(address)+n], nil
}
