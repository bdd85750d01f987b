// Package romstat summarizes ROM/RAM usage from linker section listings.
//
// The input is the section-header table printed by llvm-objdump style
// tools: one section per line with an index, name, size, virtual address,
// an optional load address, and a section type. Only TEXT, DATA and BSS
// sections are accounted; everything else is normal noise and is skipped.
//
// Each retained section is classified against the fixed memory banks of
// the target MCU by address overlap. A section whose load address sits in
// flash and whose virtual address sits in RAM occupies space in both
// banks (its bytes are stored in flash and copied to RAM at startup), so
// it is counted in full against both.
//
// The report lists every section per bank it occupies, followed by
// per-bank totals, with sizes given in kilobytes and as a percentage of
// the bank's capacity.
package romstat
