// Package audio plays the beep of the sound timer.
package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/retrogolib/log"
)

// Beep parameters.
const (
	SampleRate = 44100
	Frequency  = 440
	Amplitude  = 0.2
)

// Beeper outputs a tone on the default audio device while it is active.
type Beeper struct {
	logger *log.Logger
	tone   *Tone
	ctx    *oto.Context
	player *oto.Player
}

// NewBeeper opens the audio device and starts a silent player.
func NewBeeper(logger *log.Logger) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		logger: logger,
		tone:   NewTone(SampleRate, Frequency, Amplitude),
		ctx:    ctx,
	}
	b.player = ctx.NewPlayer(b.tone)
	b.player.Play()

	logger.Debug("Audio device opened", log.Int("sample_rate", SampleRate))
	return b, nil
}

// SetActive switches the beep on or off.
func (b *Beeper) SetActive(active bool) {
	if b.tone.Active() != active {
		b.logger.Debug("Beep", log.String("active", fmt.Sprint(active)))
	}
	b.tone.SetActive(active)
}

// Close stops the playback.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
