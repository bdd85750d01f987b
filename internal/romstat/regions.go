package romstat

// Region is a fixed physical memory bank with a running used-byte total.
// The bank covers the half-open interval [Origin, Origin+Length).
type Region struct {
	Name   string
	Origin uint64
	Length uint64
	Used   uint64
}

// Memory map of the target MCU: two 256 KiB flash banks back to back,
// and 96 KiB of SRAM.
const (
	flashOrigin = 0x08000000
	flashLength = 256 * 1024
	ramOrigin   = 0x20000000
	ramLength   = 96 * 1024
)

// DefaultRegions returns the configured memory banks with zeroed totals,
// in the order they appear in the report.
func DefaultRegions() []*Region {
	return []*Region{
		{Name: "FLASH", Origin: flashOrigin, Length: flashLength},
		{Name: "FLASH_RO", Origin: flashOrigin + flashLength, Length: flashLength},
		{Name: "RAM", Origin: ramOrigin, Length: ramLength},
	}
}

// Contains reports whether addr falls inside the bank.
func (r *Region) Contains(addr uint64) bool {
	return addr >= r.Origin && addr < r.Origin+r.Length
}

// Holds reports whether the section occupies space in the bank, either at
// runtime (vma) or at rest (lma). A DATA section loaded from flash and
// relocated to RAM holds in both banks.
func (r *Region) Holds(s Section) bool {
	return r.Contains(s.VirtAddr) || r.Contains(s.LoadAddr)
}
