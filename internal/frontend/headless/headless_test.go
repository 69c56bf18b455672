package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestMachine(t *testing.T, rom []byte) *emulator.Machine {
	t.Helper()
	m, err := emulator.New(log.NewTestLogger(t), rom, emulator.Options{Hz: 600})
	assert.NoError(t, err)
	return m
}

func TestRunPrintsScreen(t *testing.T) {
	// 6000 F029 D005 1206: draw glyph 0 and loop
	m := newTestMachine(t, []byte{0x60, 0x00, 0xF0, 0x29, 0xD0, 0x05, 0x12, 0x06})

	var out bytes.Buffer
	assert.NoError(t, Run(context.Background(), log.NewTestLogger(t), m, &out, 2))

	lines := strings.Split(out.String(), "\n")
	assert.Len(t, lines, chip8.Height/2+1)
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀█"))
	assert.Equal(t, uint16(0x206), m.Registers().PC)
}

func TestRunReturnsFatalError(t *testing.T) {
	m := newTestMachine(t, []byte{0x00, 0xEE})

	var out bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), m, &out, 10)

	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.NotEmpty(t, out.String())
}

func TestRunCancelled(t *testing.T) {
	m := newTestMachine(t, []byte{0x12, 0x00})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, log.NewTestLogger(t), m, &out, 10)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, out.Len())
}
