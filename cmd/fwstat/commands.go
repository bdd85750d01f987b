package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/embtools/fwstat/internal/gpio"
	"github.com/embtools/fwstat/internal/lineio"
	"github.com/embtools/fwstat/internal/memdump"
	"github.com/embtools/fwstat/internal/romstat"
	"github.com/embtools/fwstat/internal/symstat"
)

var dumpOutput string

func init() {
	rootCmd.AddCommand(romCmd)
	rootCmd.AddCommand(symsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(gpioCmd)
}

// romCmd summarizes ROM/RAM usage from a linker section listing.
var romCmd = &cobra.Command{
	Use:   "rom [files...]",
	Short: "Summarize ROM/RAM usage from linker section output",
	Long: `Summarize per-section and per-bank memory usage of a firmware image.

The input is the section-header table of the linked image as printed by
llvm-objdump --section-headers (index, name, size, vma, optional lma,
type). TEXT, DATA and BSS sections are classified against the target's
fixed memory banks by address overlap; a relocated DATA section counts
against both the flash bank holding its load image and the RAM bank it
runs from.`,
	Example: `  # From a saved listing
  fwstat rom sections.txt

  # Straight from the toolchain
  llvm-objdump --section-headers firmware.elf | fwstat rom`,
	RunE: runRom,
}

func runRom(cmd *cobra.Command, args []string) error {
	in, err := lineio.Open(args)
	if err != nil {
		return err
	}
	defer in.Close()

	sections, err := romstat.ParseSections(in)
	if err != nil {
		return err
	}

	return romstat.Summarize(sections, romstat.DefaultRegions(), os.Stdout)
}

// symsCmd reports symbol sizes from an objdump symbol table.
var symsCmd = &cobra.Command{
	Use:   "syms [files...]",
	Short: "Report symbol sizes from an objdump symbol table",
	Long: `Report the storage each symbol occupies, smallest first.

The input is objdump --syms output. Zero-sized symbols (labels, section
markers) are omitted, so the bottom of the report shows the biggest
consumers of flash and RAM.`,
	Example: `  llvm-objdump --syms firmware.elf | fwstat syms

  # The biggest ten symbols
  llvm-objdump --syms firmware.elf | fwstat syms | tail -10`,
	RunE: runSyms,
}

func runSyms(cmd *cobra.Command, args []string) error {
	in, err := lineio.Open(args)
	if err != nil {
		return err
	}
	defer in.Close()

	syms, err := symstat.ParseSymbols(in)
	if err != nil {
		return err
	}

	return symstat.Report(syms, os.Stdout)
}

// dumpCmd converts a textual memory dump into raw bytes.
var dumpCmd = &cobra.Command{
	Use:   "dump [files...]",
	Short: "Convert a textual memory dump to raw bytes",
	Long: `Reassemble a binary image from a textual memory dump.

The input is a debug log printing memory sixteen bytes per line:

    00000000 [00, 20, 01, 20, c1, 30, 00, 08, ...]

Lines must be sequential starting at offset zero; anything else in the
log is ignored. The raw bytes are written to stdout unless --output is
given.`,
	Example: `  fwstat dump capture.log --output flash.bin

  fwstat dump capture.log | xxd | head`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Write raw bytes to a file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	in, err := lineio.Open(args)
	if err != nil {
		return err
	}
	defer in.Close()

	out := os.Stdout
	if dumpOutput != "" {
		f, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return memdump.Decode(in, out)
}

// gpioCmd decodes GPIO register snapshots into pin descriptions.
var gpioCmd = &cobra.Command{
	Use:   "gpio [files...]",
	Short: "Decode GPIO register snapshots into pin descriptions",
	Long: `Decode captured GPIO register blocks into one line per pin.

The input is a YAML document listing each port's ten register words
(MODER, OTYPER, OSPEEDR, PUPDR, IDR, ODR, BSRR, LCKR, AFRL, AFRH) as
captured from a debugger with x/10x of the port base address:

    ports:
      - name: A
        registers: [0x6aaa9529, 0x00000000, 0x4fe9d53d, 0x64151541,
                    0x0000c62e, 0x00008028, 0x00000000, 0x00000000,
                    0xb0000bb0, 0x000aa771]`,
	Example: `  fwstat gpio ports.yaml

  fwstat gpio < ports.yaml | grep Alternate`,
	RunE: runGpio,
}

func runGpio(cmd *cobra.Command, args []string) error {
	in, err := lineio.Open(args)
	if err != nil {
		return err
	}
	defer in.Close()

	snap, err := gpio.Load(in)
	if err != nil {
		return err
	}

	return gpio.Report(snap, os.Stdout)
}
