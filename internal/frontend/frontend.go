// Package frontend contains the hosts that connect a machine to the outside world.
package frontend

// FrameRate is the number of frames per second that the frontends present.
const FrameRate = 60

// Sound outputs the beep of the sound timer.
type Sound interface {
	SetActive(active bool)
}

// NoSound is a Sound that discards the beep.
type NoSound struct{}

// SetActive implements Sound.
func (NoSound) SetActive(bool) {}
