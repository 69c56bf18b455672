package chip8

import "time"

// tickInterval is the real time between two timer decrements.
const tickInterval = time.Second / TimerFrequency

// timers holds the delay and sound timers and the real time that has not yet
// been converted into timer ticks.
type timers struct {
	delay byte
	sound byte

	accumulator time.Duration
}

// advance adds the elapsed real time and applies all ticks that became due.
func (t *timers) advance(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	t.accumulator += elapsed
	ticks := t.accumulator / tickInterval
	t.accumulator -= ticks * tickInterval
	t.delay = countDown(t.delay, ticks)
	t.sound = countDown(t.sound, ticks)
}

// tick decrements both timers once.
func (t *timers) tick() {
	t.delay = countDown(t.delay, 1)
	t.sound = countDown(t.sound, 1)
}

func countDown(value byte, ticks time.Duration) byte {
	if time.Duration(value) <= ticks {
		return 0
	}
	return value - byte(ticks)
}
