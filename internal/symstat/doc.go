// Package symstat reports symbol sizes from an objdump symbol table.
//
// The input is the output of objdump --syms (or nm with compatible
// formatting). Symbols are printed smallest first with their section, so
// the bottom of the report shows where the bytes actually went. Symbols
// with a zero size carry no storage and are omitted.
package symstat
