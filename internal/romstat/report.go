package romstat

import (
	"fmt"
	"io"
	"sort"

	"github.com/embtools/fwstat/internal/logging"
)

// Summarize classifies every section into the banks it occupies,
// accumulates per-bank usage, and writes the report to w.
//
// Sections are listed in ascending virtual-address order (stable, so
// equal addresses keep their input order); the ordering is presentation
// only and does not affect the totals. A section matching no bank
// contributes nothing and produces no line. A section matching two banks
// is listed and counted in full under both.
func Summarize(sections []Section, regions []*Region, w io.Writer) error {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VirtAddr < sorted[j].VirtAddr
	})

	for _, s := range sorted {
		matched := false
		for _, reg := range regions {
			if !reg.Holds(s) {
				continue
			}
			matched = true
			reg.Used += s.Size
			_, err := fmt.Fprintf(w, "%-9s %-5s %-14s %s\n",
				reg.Name, s.Kind, s.Name, hsize(s.Size, reg.Length))
			if err != nil {
				return err
			}
		}
		if !matched {
			logging.LogDroppedRecord("outside all regions", s.Name)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, reg := range regions {
		_, err := fmt.Fprintf(w, "Total %-8s %s\n", reg.Name, hsize(reg.Used, reg.Length))
		if err != nil {
			return err
		}
	}

	return nil
}

// hsize renders a byte count in kilobytes together with its share of rel.
func hsize(size, rel uint64) string {
	return fmt.Sprintf("%7.1fK (%.1f%%)", float64(size)/1024, 100*float64(size)/float64(rel))
}
