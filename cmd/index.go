package cmd

import (
	"io"

	"github.com/chriserin/stepfind/internal/stepindex"
)

// RunIndex scans stepsDir and writes the full definition list as a JSON
// array. A missing directory is an empty array, never an error.
func RunIndex(w io.Writer, stepsDir, include string) error {
	s, err := newScanner(stepsDir, "", include)
	if err != nil {
		return err
	}

	defs := s.Index()
	if defs == nil {
		defs = []stepindex.Definition{}
	}
	return writeJSON(w, defs)
}
