package cmd

import (
	"io"

	"github.com/chriserin/stepfind/internal/stepindex"
)

// RunUndefined scans featuresDir for step lines whose normalized form has no
// definition under stepsDir and writes them as a JSON array, one entry per
// occurrence.
func RunUndefined(w io.Writer, stepsDir, featuresDir, include string) error {
	s, err := newScanner(stepsDir, featuresDir, include)
	if err != nil {
		return err
	}

	missing := s.Undefined()
	if missing == nil {
		missing = []stepindex.Undefined{}
	}
	return writeJSON(w, missing)
}
