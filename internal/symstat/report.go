package symstat

import (
	"fmt"
	"io"
	"sort"
)

// Report writes one line per sized symbol, ordered by size ascending
// (stable, so equally sized symbols keep their input order). Zero-sized
// symbols occupy no storage and are left out.
func Report(syms []Symbol, w io.Writer) error {
	sorted := make([]Symbol, len(syms))
	copy(sorted, syms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size < sorted[j].Size
	})

	for _, s := range sorted {
		if s.Size == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d %s %s\n", s.Size, s.Section, s.Name); err != nil {
			return err
		}
	}

	return nil
}
