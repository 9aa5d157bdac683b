package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON emits v as a single JSON document followed by a newline. HTML
// escaping is off so non-ASCII step text passes through verbatim.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
