package symstat

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/embtools/fwstat/internal/logging"
)

// symbolPattern matches one objdump --syms row:
//
//	08000198 l     F .text	00000024 Reset_Handler
//
// address, scope flag, type flag, a dot-prefixed section, a tab, the
// size, and the symbol name. Header lines and symbols outside the dot
// sections fall through silently.
var symbolPattern = regexp.MustCompile(`^([0-9a-f]+) (.)     (.) (\.[^ ]+)\t([0-9a-f]+) (.+)$`)

// Symbol is one row of the symbol table.
type Symbol struct {
	Addr    uint64
	Scope   string // "l" local, "g" global, or a space
	Type    string // "F" function, "O" object, "d" debug, ...
	Section string
	Size    uint64
	Name    string
}

// ParseSymbols reads a symbol table listing and returns the matched rows
// in input order. Non-matching lines are skipped; the whole input is
// consumed before any reporting happens.
func ParseSymbols(r io.Reader) ([]Symbol, error) {
	var syms []Symbol

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		m := symbolPattern.FindStringSubmatch(line)
		if m == nil {
			logging.LogSkippedLine(lineNo, line)
			continue
		}

		addr, err := strconv.ParseUint(m[1], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid hex address %q: %w", lineNo, m[1], err)
		}
		size, err := strconv.ParseUint(m[5], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid hex size %q: %w", lineNo, m[5], err)
		}

		syms = append(syms, Symbol{
			Addr:    addr,
			Scope:   m[2],
			Type:    m[3],
			Section: m[4],
			Size:    size,
			Name:    m[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symbol table: %w", err)
	}

	return syms, nil
}
