package romstat

// Kind identifies the class of a linker output section.
type Kind string

// Section kinds retained by the parser. All other kinds (NOTE, DEBUG and
// friends) are dropped.
const (
	KindText Kind = "TEXT"
	KindData Kind = "DATA"
	KindBSS  Kind = "BSS"
)

// retained reports whether k is one of the accounted section kinds.
// Matching is exact and case-sensitive.
func (k Kind) retained() bool {
	return k == KindText || k == KindData || k == KindBSS
}

// Section is one retained row of linker-map input. It is a plain value:
// constructed once during parsing and never modified.
type Section struct {
	Name     string
	Size     uint64
	VirtAddr uint64 // vma: the address the section occupies at runtime
	LoadAddr uint64 // lma: the address where its bytes are stored at rest
	Kind     Kind
}
