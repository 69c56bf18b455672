package chip8

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// CHIP-8 machine constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// FontStart is the memory address of the first font glyph.
	FontStart = 0x000

	// GlyphSize is the size of a single font glyph in bytes.
	GlyphSize = 5

	// StackSize is the maximum number of nested subroutine calls.
	StackSize = 16

	// NumRegisters is the number of general purpose registers V0-VF.
	NumRegisters = 16

	// FlagRegister is the index of VF, which receives carry, borrow and collision results.
	FlagRegister = 0xF

	// NumKeys is the number of keys of the hexadecimal keypad.
	NumKeys = 16

	// Width and Height are the framebuffer dimensions in pixels.
	Width  = 64
	Height = 32

	// TimerFrequency is the rate in Hz at which the delay and sound timers count down.
	TimerFrequency = 60
)

// State is the execution state of the interpreter.
type State int

// Interpreter states.
const (
	StateIdle        State = iota // no program loaded
	StateRunning                  // executing instructions
	StateAwaitingKey              // suspended by FX0A until a key gets pressed
	StateHalted                   // stopped by a fatal error
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StateRunning:     "running",
	StateAwaitingKey: "awaiting key",
	StateHalted:      "halted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Keypad is the pressed state of the 16 keys, indexed by key value.
type Keypad [NumKeys]bool

// Registers is a snapshot of the register file and the timers.
type Registers struct {
	V     [NumRegisters]byte
	I     uint16
	PC    uint16
	SP    int
	Delay byte
	Sound byte
}

// Option configures a CPU.
type Option func(*CPU)

// WithRandom sets the source of random bytes used by the CXNN instruction.
func WithRandom(random func() byte) Option {
	return func(c *CPU) {
		c.random = random
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(trace bool) Option {
	return func(c *CPU) {
		c.trace = trace
	}
}

// CPU is a CHIP-8 interpreter instance. It owns all machine state and is not safe
// for concurrent use; the host reads outputs and writes inputs between cycles.
type CPU struct {
	logger *log.Logger
	random func() byte
	trace  bool

	memory  memory
	v       [NumRegisters]byte
	i       uint16 // index register
	pc      uint16 // program counter
	stack   stack
	timers  timers
	keys    Keypad
	display Framebuffer

	state State
	err   error // fatal error that halted the interpreter

	waitRegister byte   // register receiving the key of FX0A
	waitBaseline Keypad // key state of the previous FX0A scan

	reported set.Set[uint16] // addresses of reported unknown opcodes
}

// New returns a new interpreter in reset state.
func New(logger *log.Logger, options ...Option) *CPU {
	c := &CPU{
		logger: logger,
		random: randomByte,
	}
	for _, option := range options {
		option(c)
	}
	c.Reset()
	return c
}

func randomByte() byte {
	return byte(rand.IntN(256))
}

// Reset clears all machine state and loads the font. A program has to be loaded
// before the interpreter can execute again.
func (c *CPU) Reset() {
	c.memory = memory{}
	copy(c.memory[FontStart:], fontSet[:])

	c.v = [NumRegisters]byte{}
	c.i = 0
	c.pc = ProgramStart
	c.stack = stack{}
	c.timers = timers{}
	c.keys = Keypad{}
	c.display.clear()

	c.state = StateIdle
	c.err = nil
	c.waitRegister = 0
	c.waitBaseline = Keypad{}
	c.reported = set.New[uint16]()
}

// Load copies the program into memory at ProgramStart and resets the program counter.
// Loading into an interpreter that already ran a program resets it first.
// A program that does not fit leaves the interpreter unchanged.
func (c *CPU) Load(program []byte) error {
	if maxSize := MemorySize - ProgramStart; len(program) > maxSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), maxSize)
	}
	if c.state != StateIdle {
		c.Reset()
	}

	clear(c.memory[ProgramStart:])
	copy(c.memory[ProgramStart:], program)
	c.pc = ProgramStart
	c.state = StateRunning
	c.err = nil

	c.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Hex("address", ProgramStart))
	return nil
}

// Cycle executes one instruction and applies the timer ticks that became due in the
// elapsed real time. While the interpreter waits for a key no instruction is executed
// and the program counter does not change.
func (c *CPU) Cycle(elapsed time.Duration) error {
	switch c.state {
	case StateIdle:
		return ErrNoProgram
	case StateHalted:
		return c.err
	case StateAwaitingKey:
		c.pollKey()
	default:
		if err := c.step(); err != nil {
			return c.halt(err)
		}
	}

	c.timers.advance(elapsed)
	return nil
}

// Tick decrements the delay and sound timers once.
func (c *CPU) Tick() {
	c.timers.tick()
}

// step fetches, decodes and executes the instruction at the program counter.
func (c *CPU) step() error {
	address := c.pc
	word, err := c.memory.readWord(address)
	if err != nil {
		return fmt.Errorf("fetching instruction at $%04X: %w", address, err)
	}
	c.pc += 2

	ins := Decode(word)
	if !ins.Known() {
		c.reportUnknown(address, word)
		return nil
	}

	if c.trace {
		c.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.String("instruction", ins.String()))
	}

	if err := ins.opcode.execute(c, ins); err != nil {
		return fmt.Errorf("executing %s at $%04X: %w", ins.String(), address, err)
	}
	return nil
}

// reportUnknown logs an unknown opcode once per address.
func (c *CPU) reportUnknown(address, word uint16) {
	if c.reported.Contains(address) {
		return
	}
	c.reported.Add(address)
	c.logger.Warn("Unknown opcode",
		log.Hex("opcode", word),
		log.Hex("address", address))
}

func (c *CPU) halt(err error) error {
	c.state = StateHalted
	c.err = err
	c.logger.Error("Interpreter halted", log.Err(err))
	return err
}

// pollKey completes a pending FX0A once a key changed from released to pressed.
func (c *CPU) pollKey() {
	for key, pressed := range c.keys {
		if pressed && !c.waitBaseline[key] {
			c.v[c.waitRegister] = byte(key)
			c.state = StateRunning
			return
		}
	}
	c.waitBaseline = c.keys
}

// SetKeys replaces the pressed state of all keys.
func (c *CPU) SetKeys(keys Keypad) {
	c.keys = keys
}

// SetKey sets the pressed state of a single key, invalid keys are ignored.
func (c *CPU) SetKey(key int, pressed bool) {
	if key < 0 || key >= NumKeys {
		return
	}
	c.keys[key] = pressed
}

// Framebuffer returns a copy of the current screen content.
func (c *CPU) Framebuffer() Framebuffer {
	return c.display
}

// SoundActive returns whether the sound timer is running and a tone should be played.
func (c *CPU) SoundActive() bool {
	return c.timers.sound > 0
}

// State returns the execution state.
func (c *CPU) State() State {
	return c.state
}

// Err returns the fatal error that halted the interpreter, if any.
func (c *CPU) Err() error {
	return c.err
}

// Registers returns a snapshot of the register file and the timers.
func (c *CPU) Registers() Registers {
	return Registers{
		V:     c.v,
		I:     c.i,
		PC:    c.pc,
		SP:    c.stack.sp,
		Delay: c.timers.delay,
		Sound: c.timers.sound,
	}
}
