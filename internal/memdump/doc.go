// Package memdump converts textual memory dumps back into raw bytes.
//
// Firmware debug logs print memory contents sixteen bytes at a time as
//
//	00000000 [00, 20, 01, 20, c1, 30, 00, 08, ...]
//
// This package reassembles such a log into the binary image it describes,
// verifying that no line is missing along the way.
package memdump
