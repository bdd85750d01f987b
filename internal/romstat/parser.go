package romstat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/embtools/fwstat/internal/logging"
)

// ParseSections reads a section-header listing and returns the retained
// sections in input order.
//
// Two whitespace-separated layouts are accepted:
//
//	index name size vma lma kind
//	index name size vma kind
//
// In the five-token layout the load address is absent and equals the
// virtual address. Lines matching neither layout are skipped. A line that
// does match a layout but carries a malformed hexadecimal field aborts
// the whole run: numeric corruption in a section table is not something
// to paper over.
func ParseSections(r io.Reader) ([]Section, error) {
	var sections []Section

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		var name, sizeTok, vmaTok, lmaTok string
		var kind Kind
		switch len(fields) {
		case 6:
			name, sizeTok, vmaTok, lmaTok = fields[1], fields[2], fields[3], fields[4]
			kind = Kind(fields[5])
		case 5:
			name, sizeTok, vmaTok = fields[1], fields[2], fields[3]
			lmaTok = vmaTok
			kind = Kind(fields[4])
		default:
			logging.LogSkippedLine(lineNo, line)
			continue
		}

		if !kind.retained() {
			logging.LogDroppedRecord("unsupported kind", name)
			continue
		}

		size, err := parseHexField(lineNo, "size", sizeTok)
		if err != nil {
			return nil, err
		}
		vma, err := parseHexField(lineNo, "vma", vmaTok)
		if err != nil {
			return nil, err
		}
		lma, err := parseHexField(lineNo, "lma", lmaTok)
		if err != nil {
			return nil, err
		}

		sections = append(sections, Section{
			Name:     name,
			Size:     size,
			VirtAddr: vma,
			LoadAddr: lma,
			Kind:     kind,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read section listing: %w", err)
	}

	return sections, nil
}

func parseHexField(lineNo int, field, tok string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid hex %s field %q: %w", lineNo, field, tok, err)
	}
	return v, nil
}
