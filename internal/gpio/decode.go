package gpio

import (
	"fmt"
	"io"
	"strings"
)

// pinCount is the number of pins per GPIO port.
const pinCount = 16

// MODER two-bit field values.
const (
	modeInput     = 0b00
	modeOutput    = 0b01
	modeAlternate = 0b10
	modeAnalog    = 0b11
)

// PUPDR two-bit field descriptions. 0b11 is reserved on this part.
var pullDesc = [4]string{
	"",
	" pull-up",
	" pull-down",
	" pullup=RESERVED",
}

// OSPEEDR two-bit field descriptions.
var speedDesc = [4]string{
	" low speed",
	" medium speed",
	" high speed",
	" very-high speed",
}

// DescribePin renders one pin of the port in the conventional STM32
// terms: mode, pull configuration, output type and speed, and the
// current input (IDR) or output (ODR) state.
func (p Port) DescribePin(pin int) string {
	regs := p.Registers
	mode := (regs[regMODER] >> (2 * pin)) & 0b11
	otype := (regs[regOTYPER] >> pin) & 1
	ospeed := (regs[regOSPEEDR] >> (2 * pin)) & 0b11
	pupd := (regs[regPUPDR] >> (2 * pin)) & 0b11
	idr := (regs[regIDR] >> pin) & 1
	od := (regs[regODR] >> pin) & 1

	// AFRH:AFRL form one 64-bit field of sixteen 4-bit selectors.
	af := (uint64(regs[regAFRH])<<32 | uint64(regs[regAFRL])) >> (4 * pin) & 0b1111

	var b strings.Builder
	switch mode {
	case modeInput, modeAnalog:
		if mode == modeInput {
			b.WriteString("Input")
		} else {
			b.WriteString("Analog")
		}
		b.WriteString(pullDesc[pupd])
		fmt.Fprintf(&b, " state=%d", idr)

	case modeOutput, modeAlternate:
		if mode == modeOutput {
			b.WriteString("Output")
		} else {
			fmt.Fprintf(&b, "Alternate AF%d", af)
		}
		// Pull configuration only matters for open-drain outputs, so it
		// is folded into that clause.
		if otype == 1 {
			b.WriteString(" open-drain")
			b.WriteString(pullDesc[pupd])
		}
		b.WriteString(speedDesc[ospeed])
		fmt.Fprintf(&b, " state=%d", od)
	}

	return b.String()
}

// Report writes one description line per pin for every port in the
// snapshot, in document order.
func Report(snap *Snapshot, w io.Writer) error {
	for _, p := range snap.Ports {
		for pin := 0; pin < pinCount; pin++ {
			if _, err := fmt.Fprintf(w, "P%s%d %s\n", p.Name, pin, p.DescribePin(pin)); err != nil {
				return err
			}
		}
	}
	return nil
}
