package chip8

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersAdvance(t *testing.T) {
	tm := timers{delay: 120, sound: 3}

	tm.advance(tickInterval / 2)
	assert.Equal(t, byte(120), tm.delay)

	tm.advance(tickInterval / 2)
	assert.Equal(t, byte(119), tm.delay)
	assert.Equal(t, byte(2), tm.sound)

	tm.advance(time.Second)
	assert.Equal(t, byte(59), tm.delay)
	assert.Equal(t, byte(0), tm.sound)
}

func TestTimersSaturate(t *testing.T) {
	tm := timers{delay: 1}

	tm.advance(time.Hour)
	assert.Equal(t, byte(0), tm.delay)

	tm.tick()
	assert.Equal(t, byte(0), tm.delay)
	assert.Equal(t, byte(0), tm.sound)
}

func TestTimersIgnoreNonPositive(t *testing.T) {
	tm := timers{delay: 5}

	tm.advance(0)
	tm.advance(-time.Second)

	assert.Equal(t, byte(5), tm.delay)
	assert.Equal(t, time.Duration(0), tm.accumulator)
}

func TestStack(t *testing.T) {
	var s stack
	for i := range StackSize {
		assert.NoError(t, s.push(uint16(i)))
	}
	assert.Equal(t, ErrStackOverflow, s.push(0))

	for i := StackSize - 1; i >= 0; i-- {
		address, err := s.pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(i), address)
	}
	_, err := s.pop()
	assert.Equal(t, ErrStackUnderflow, err)
}
