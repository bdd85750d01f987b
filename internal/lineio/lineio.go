// Package lineio opens the input stream for the analysis commands.
//
// Every fwstat command is a line-oriented filter: it reads from stdin when
// invoked without arguments, or from the named files concatenated in
// argument order. This package provides that conventional behavior in one
// place so the commands only deal with a single io.ReadCloser.
package lineio

import (
	"fmt"
	"io"
	"os"
)

// Open returns a reader over the named files concatenated in argument
// order, or over stdin when args is empty. All files are opened up front
// so a bad path fails before any command output is produced.
func Open(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}

	files := make([]*os.File, 0, len(args))
	readers := make([]io.Reader, 0, len(args))
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}

	return &multiFileReader{
		reader: io.MultiReader(readers...),
		files:  files,
	}, nil
}

type multiFileReader struct {
	reader io.Reader
	files  []*os.File
}

func (m *multiFileReader) Read(p []byte) (int, error) {
	return m.reader.Read(p)
}

// Close closes every underlying file, returning the first error seen.
func (m *multiFileReader) Close() error {
	var firstErr error
	for _, f := range m.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
