package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad(t *testing.T) {
	l := New(log.NewTestLogger(t))
	path := writeFile(t, "test.ch8", []byte{0x60, 0x05, 0x12, 0x00})

	data, err := l.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x05, 0x12, 0x00}, data)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyROM},
		{"too large", make([]byte, chip8.MemorySize-chip8.ProgramStart+1), chip8.ErrProgramTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(log.NewTestLogger(t))
			path := writeFile(t, "test.ch8", tt.data)

			_, err := l.Load(path)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := New(log.NewTestLogger(t))

	_, err := l.Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.ErrorContains(t, err, "reading file")
}

func TestLoadUnusualExtension(t *testing.T) {
	l := New(log.NewTestLogger(t))
	path := writeFile(t, "game.bin", []byte{0x00, 0xE0, 0x01})

	data, err := l.Load(path)
	assert.NoError(t, err)
	assert.Len(t, data, 3)
}

func TestIsKnownExtension(t *testing.T) {
	assert.True(t, isKnownExtension(".ch8"))
	assert.True(t, isKnownExtension(".c8"))
	assert.True(t, isKnownExtension(".rom"))
	assert.False(t, isKnownExtension(".nes"))
	assert.False(t, isKnownExtension(""))
}
