package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestHost(t *testing.T, rom []byte, opts Options) (*host, *bytes.Buffer) {
	t.Helper()

	logger := log.NewTestLogger(t)
	machine, err := emulator.New(logger, rom, emulator.Options{Hz: 600})
	assert.NoError(t, err)

	var out bytes.Buffer
	return newHost(logger, machine, &out, opts), &out
}

func TestKeyHold(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})
	now := time.Now()

	assert.True(t, h.handleByte('w', now))
	keys := h.keys(now)
	assert.True(t, keys[0x5])
	assert.False(t, keys[0x4])

	keys = h.keys(now.Add(keyHold / 2))
	assert.True(t, keys[0x5])

	keys = h.keys(now.Add(keyHold))
	assert.False(t, keys[0x5])
}

func TestQuitKeys(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})

	assert.False(t, h.handleChunk([]byte{ctrlC}, time.Now()))
	assert.False(t, h.handleChunk([]byte{escape}, time.Now()))
	assert.False(t, h.handleChunk([]byte{'q', escape}, time.Now()))
	assert.True(t, h.handleChunk([]byte("k"), time.Now()))
}

func TestEscapeSequencesDoNotQuit(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})
	now := time.Now()

	sequences := []string{
		"\x1b[A",   // arrow up
		"\x1b[D",   // arrow left
		"\x1bOP",   // F1
		"\x1b[15~", // F5
	}
	for _, sequence := range sequences {
		assert.True(t, h.handleChunk([]byte(sequence), now), "sequence %q", sequence)
	}

	// bytes of the sequence are not interpreted as keypad keys
	assert.True(t, h.handleChunk([]byte("w\x1b[D"), now))
	keys := h.keys(now)
	assert.True(t, keys[0x5])
	assert.False(t, keys[0x9])
}

func TestPauseCommand(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})

	assert.True(t, h.handleByte(commandPause, time.Now()))
	assert.True(t, h.machine.Paused())
	assert.Equal(t, "paused, p resumes", h.status())
}

func TestProcessInputClosed(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})

	h.input <- []byte("1")
	assert.True(t, h.processInput(time.Now()))

	close(h.input)
	assert.False(t, h.processInput(time.Now()))
}

func TestReadInput(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})

	h.readInput(strings.NewReader("q\x03"))

	var received []byte
	for chunk := range h.input {
		received = append(received, chunk...)
	}
	assert.Equal(t, []byte("q\x03"), received)
}

func TestReadInputStopsWithHost(t *testing.T) {
	h, _ := newTestHost(t, []byte{0x12, 0x00}, Options{})
	h.input = make(chan []byte)
	close(h.done)

	finished := make(chan struct{})
	go func() {
		h.readInput(strings.NewReader("qwer"))
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("input reader did not stop")
	}
}

func TestBellOnSoundStart(t *testing.T) {
	// 6010 F018 1204: sound timer = 16, loop
	rom := []byte{0x60, 0x10, 0xF0, 0x18, 0x12, 0x04}

	tests := []struct {
		name  string
		mute  bool
		bells int
	}{
		{"audible", false, 1},
		{"muted", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, out := newTestHost(t, rom, Options{Mute: tt.mute})

			for range 3 {
				assert.NoError(t, h.machine.RunFrame(time.Second/60))
				assert.True(t, h.present(h.machine))
			}

			assert.Equal(t, tt.bells, strings.Count(out.String(), bell))
		})
	}
}

func TestDrawShowsHaltReason(t *testing.T) {
	h, out := newTestHost(t, []byte{0x00, 0xEE}, Options{})

	assert.Error(t, h.machine.RunFrame(time.Second/60))
	h.draw()

	assert.True(t, strings.Contains(out.String(), cursorHome))
	assert.True(t, strings.Contains(out.String(), "halted:"))
}
