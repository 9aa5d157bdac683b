package cmd

import (
	"io"
)

// RunLine looks up the single definition matching one raw Gherkin line and
// writes it as JSON, or JSON null when nothing matches.
func RunLine(w io.Writer, stepsDir, include, line string) error {
	s, err := newScanner(stepsDir, "", include)
	if err != nil {
		return err
	}

	match := s.Match(line)
	if match == nil {
		return writeJSON(w, nil)
	}
	return writeJSON(w, match)
}
