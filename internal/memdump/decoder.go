package memdump

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/embtools/fwstat/internal/logging"
)

// lineStride is the number of bytes a dump line covers. Dumps are
// produced sixteen bytes per line, so consecutive line addresses must
// advance by exactly this much.
const lineStride = 16

// dumpPattern matches one dump line: an eight-digit hex offset followed
// by a bracketed, comma-separated list of hex byte values.
var dumpPattern = regexp.MustCompile(`^([0-9a-f]{8}) \[([0-9a-z, ]+)\]$`)

// Decode reads a textual memory dump from r and writes the bytes it
// describes to w. Lines that do not look like dump lines are skipped
// (prompts, echoed commands and other log noise). Matched lines must be
// strictly sequential starting at offset zero; a gap or repeat means the
// capture is incomplete and the conversion aborts.
func Decode(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	var expected uint64
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		m := dumpPattern.FindStringSubmatch(line)
		if m == nil {
			logging.LogSkippedLine(lineNo, line)
			continue
		}

		addr, err := strconv.ParseUint(m[1], 16, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid hex address %q: %w", lineNo, m[1], err)
		}
		if addr != expected {
			return fmt.Errorf("expected address 0x%08x but had 0x%08x", expected, addr)
		}

		values := strings.Split(m[2], ", ")
		buf := make([]byte, 0, len(values))
		for _, v := range values {
			b, err := strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 8)
			if err != nil {
				return fmt.Errorf("line %d: invalid byte value %q: %w", lineNo, v, err)
			}
			buf = append(buf, byte(b))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		expected += lineStride
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dump: %w", err)
	}

	return nil
}
