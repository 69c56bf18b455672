package chip8

// setFlag stores a carry, borrow or collision result in VF.
func (c *CPU) setFlag(set bool) {
	if set {
		c.v[FlagRegister] = 1
	} else {
		c.v[FlagRegister] = 0
	}
}

// skipIf advances the program counter over the next instruction if the condition holds.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.pc += 2
	}
}

// 00E0: clear the screen.
func (c *CPU) clearScreen(Instruction) error {
	c.display.clear()
	return nil
}

// 00EE: return from a subroutine.
func (c *CPU) returnFromSubroutine(Instruction) error {
	address, err := c.stack.pop()
	if err != nil {
		return err
	}
	c.pc = address
	return nil
}

// 1NNN: jump to NNN.
func (c *CPU) jump(ins Instruction) error {
	c.pc = ins.NNN
	return nil
}

// 2NNN: call the subroutine at NNN.
func (c *CPU) call(ins Instruction) error {
	if err := c.stack.push(c.pc); err != nil {
		return err
	}
	c.pc = ins.NNN
	return nil
}

// 3XNN: skip if VX == NN.
func (c *CPU) skipEqualImmediate(ins Instruction) error {
	c.skipIf(c.v[ins.X] == ins.NN)
	return nil
}

// 4XNN: skip if VX != NN.
func (c *CPU) skipNotEqualImmediate(ins Instruction) error {
	c.skipIf(c.v[ins.X] != ins.NN)
	return nil
}

// 5XY0: skip if VX == VY.
func (c *CPU) skipEqualRegister(ins Instruction) error {
	c.skipIf(c.v[ins.X] == c.v[ins.Y])
	return nil
}

// 9XY0: skip if VX != VY.
func (c *CPU) skipNotEqualRegister(ins Instruction) error {
	c.skipIf(c.v[ins.X] != c.v[ins.Y])
	return nil
}

// 6XNN: VX = NN.
func (c *CPU) loadImmediate(ins Instruction) error {
	c.v[ins.X] = ins.NN
	return nil
}

// 7XNN: VX += NN, VF is not affected.
func (c *CPU) addImmediate(ins Instruction) error {
	c.v[ins.X] += ins.NN
	return nil
}

// 8XY0: VX = VY.
func (c *CPU) move(ins Instruction) error {
	c.v[ins.X] = c.v[ins.Y]
	return nil
}

// 8XY1: VX |= VY.
func (c *CPU) or(ins Instruction) error {
	c.v[ins.X] |= c.v[ins.Y]
	return nil
}

// 8XY2: VX &= VY.
func (c *CPU) and(ins Instruction) error {
	c.v[ins.X] &= c.v[ins.Y]
	return nil
}

// 8XY3: VX ^= VY.
func (c *CPU) xor(ins Instruction) error {
	c.v[ins.X] ^= c.v[ins.Y]
	return nil
}

// 8XY4: VX += VY, VF = carry.
func (c *CPU) addRegister(ins Instruction) error {
	sum := uint16(c.v[ins.X]) + uint16(c.v[ins.Y])
	c.v[ins.X] = byte(sum)
	c.setFlag(sum > 0xFF)
	return nil
}

// 8XY5: VX -= VY, VF = not borrow.
func (c *CPU) subtract(ins Instruction) error {
	x, y := c.v[ins.X], c.v[ins.Y]
	c.v[ins.X] = x - y
	c.setFlag(x >= y)
	return nil
}

// 8XY7: VX = VY - VX, VF = not borrow.
func (c *CPU) subtractReverse(ins Instruction) error {
	x, y := c.v[ins.X], c.v[ins.Y]
	c.v[ins.X] = y - x
	c.setFlag(y >= x)
	return nil
}

// 8XY6: VX = VY >> 1, VF = shifted out bit.
func (c *CPU) shiftRight(ins Instruction) error {
	y := c.v[ins.Y]
	c.v[ins.X] = y >> 1
	c.v[FlagRegister] = y & 0x01
	return nil
}

// 8XYE: VX = VY << 1, VF = shifted out bit.
func (c *CPU) shiftLeft(ins Instruction) error {
	y := c.v[ins.Y]
	c.v[ins.X] = y << 1
	c.v[FlagRegister] = y >> 7
	return nil
}

// ANNN: I = NNN.
func (c *CPU) loadIndex(ins Instruction) error {
	c.i = ins.NNN
	return nil
}

// BNNN: jump to NNN + V0.
func (c *CPU) jumpOffset(ins Instruction) error {
	c.pc = ins.NNN + uint16(c.v[0])
	return nil
}

// CXNN: VX = random byte & NN.
func (c *CPU) randomMask(ins Instruction) error {
	c.v[ins.X] = c.random() & ins.NN
	return nil
}

// DXYN: draw the N byte sprite at I to VX, VY, VF = collision.
func (c *CPU) draw(ins Instruction) error {
	sprite, err := c.memory.slice(c.i, int(ins.N))
	if err != nil {
		return err
	}
	collision := c.display.drawSprite(c.v[ins.X], c.v[ins.Y], sprite)
	c.setFlag(collision)
	return nil
}

// EX9E: skip if the key in VX is pressed.
func (c *CPU) skipKeyPressed(ins Instruction) error {
	c.skipIf(c.keys[c.v[ins.X]&0x0F])
	return nil
}

// EXA1: skip if the key in VX is not pressed.
func (c *CPU) skipKeyNotPressed(ins Instruction) error {
	c.skipIf(!c.keys[c.v[ins.X]&0x0F])
	return nil
}

// FX07: VX = delay timer.
func (c *CPU) loadDelay(ins Instruction) error {
	c.v[ins.X] = c.timers.delay
	return nil
}

// FX0A: suspend execution until a key gets pressed and store it in VX.
func (c *CPU) waitKey(ins Instruction) error {
	c.state = StateAwaitingKey
	c.waitRegister = ins.X
	c.waitBaseline = c.keys
	return nil
}

// FX15: delay timer = VX.
func (c *CPU) setDelay(ins Instruction) error {
	c.timers.delay = c.v[ins.X]
	return nil
}

// FX18: sound timer = VX.
func (c *CPU) setSound(ins Instruction) error {
	c.timers.sound = c.v[ins.X]
	return nil
}

// FX1E: I += VX.
func (c *CPU) addIndex(ins Instruction) error {
	c.i += uint16(c.v[ins.X])
	return nil
}

// FX29: I = address of the font glyph for the digit in VX.
func (c *CPU) loadGlyph(ins Instruction) error {
	c.i = glyphAddress(c.v[ins.X])
	return nil
}

// FX33: store the decimal digits of VX at I, I+1 and I+2.
func (c *CPU) storeBCD(ins Instruction) error {
	if err := c.memory.checkWritable(c.i, 3); err != nil {
		return err
	}
	value := c.v[ins.X]
	c.memory[c.i] = value / 100
	c.memory[c.i+1] = value / 10 % 10
	c.memory[c.i+2] = value % 10
	return nil
}

// FX55: store V0..VX at I, then I += X + 1.
func (c *CPU) storeRegisters(ins Instruction) error {
	count := int(ins.X) + 1
	if err := c.memory.checkWritable(c.i, count); err != nil {
		return err
	}
	copy(c.memory[c.i:], c.v[:count])
	c.i += uint16(count)
	return nil
}

// FX65: load V0..VX from I, then I += X + 1.
func (c *CPU) loadRegisters(ins Instruction) error {
	count := int(ins.X) + 1
	data, err := c.memory.slice(c.i, count)
	if err != nil {
		return err
	}
	copy(c.v[:count], data)
	c.i += uint16(count)
	return nil
}
