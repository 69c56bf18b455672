// Package main implements a CHIP-8 ROM disassembler
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string
	quiet  bool
}

func main() {
	opts := readArguments()

	if !opts.quiet {
		printBanner()
	}

	if err := disasmFile(opts); err != nil {
		fmt.Println(fmt.Errorf("disassembling failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := optionFlags{}

	flags.StringVar(&opts.output, "o", "", "name of the output file, printed on console if no name given")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: chip8dis [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	opts.input = args[0]

	return opts
}

func printBanner() {
	fmt.Println("[------------------------------------]")
	fmt.Println("[ chip8dis - CHIP-8 ROM disassembler ]")
	fmt.Printf("[------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func disasmFile(opts optionFlags) error {
	programOptions := options.New()
	programOptions.Quiet = opts.quiet
	logger := config.CreateLogger(programOptions)

	rom, err := loader.New(logger).Load(opts.input)
	if err != nil {
		return err
	}

	var outputFile io.WriteCloser
	if opts.output == "" {
		outputFile = os.Stdout
	} else {
		outputFile, err = os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", opts.output, err)
		}
	}

	if err := writeListing(outputFile, rom); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("writing listing: %w", err)
	}
	if err := outputFile.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// skippedComment marks instructions that a preceding skip instruction can jump over.
const skippedComment = "  ; conditional"

// writeListing writes one line per instruction word. A trailing odd byte is
// listed as data.
func writeListing(w io.Writer, rom []byte) error {
	buf := bufio.NewWriter(w)

	var afterSkip bool
	for offset := 0; offset < len(rom); offset += 2 {
		address := chip8.ProgramStart + offset
		if offset+1 >= len(rom) {
			if _, err := fmt.Fprintf(buf, "$%03X  %02X     DB $%02X\n", address, rom[offset], rom[offset]); err != nil {
				return err
			}
			break
		}

		word := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		ins := chip8.Decode(word)

		var comment string
		if afterSkip {
			comment = skippedComment
		}
		afterSkip = ins.IsSkip()

		if _, err := fmt.Fprintf(buf, "$%03X  %02X %02X  %s%s\n",
			address, rom[offset], rom[offset+1], ins, comment); err != nil {
			return err
		}
	}

	return buf.Flush()
}
