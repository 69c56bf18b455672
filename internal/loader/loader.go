// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyROM is returned for ROM files without content.
var ErrEmptyROM = errors.New("empty ROM file")

// knownExtensions are the file extensions commonly used for CHIP-8 programs.
var knownExtensions = []string{".ch8", ".c8", ".rom"}

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the ROM file and validates that it fits into the program area
// of the interpreter memory.
func (l *Loader) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if err := l.validate(path, data); err != nil {
		return nil, err
	}

	l.logger.Debug("ROM loaded",
		log.String("file", path),
		log.Int("size", len(data)))
	return data, nil
}

// validate checks the size of the ROM and warns about unusual file properties.
func (l *Loader) validate(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("loading %s: %w", path, ErrEmptyROM)
	}
	if maxSize := chip8.MemorySize - chip8.ProgramStart; len(data) > maxSize {
		return fmt.Errorf("loading %s: %w: %d bytes, maximum is %d",
			path, chip8.ErrProgramTooLarge, len(data), maxSize)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isKnownExtension(ext) {
		l.logger.Warn("Unusual file extension for a CHIP-8 ROM", log.String("file", path))
	}
	if len(data)%2 != 0 {
		l.logger.Debug("ROM size is not a multiple of the instruction size", log.Int("size", len(data)))
	}
	return nil
}

func isKnownExtension(ext string) bool {
	for _, known := range knownExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
