package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

const bytesPerSample = 4 // float32 mono

// Tone is a square wave generator that can be switched on and off while it is
// being read. Silence is emitted while it is inactive.
type Tone struct {
	active atomic.Bool

	halfPeriod int // samples per half wave
	amplitude  float32
	position   int
}

// NewTone returns an inactive tone generator.
func NewTone(sampleRate, frequency int, amplitude float32) *Tone {
	return &Tone{
		halfPeriod: max(1, sampleRate/frequency/2),
		amplitude:  amplitude,
	}
}

// SetActive switches the tone on or off.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Active returns whether the tone is switched on.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Read fills p with little endian float32 samples.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample * bytesPerSample
	active := t.active.Load()

	for offset := 0; offset < n; offset += bytesPerSample {
		var sample float32
		if active {
			sample = t.amplitude
			if (t.position/t.halfPeriod)%2 == 1 {
				sample = -t.amplitude
			}
			t.position = (t.position + 1) % (2 * t.halfPeriod)
		}
		binary.LittleEndian.PutUint32(p[offset:], math.Float32bits(sample))
	}
	return n, nil
}
