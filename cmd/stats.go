package cmd

import (
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chriserin/stepfind/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize step definitions and undefined steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStats(cmd.OutOrStdout(), stepsFlag, featuresFlag, includeFlag)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// RunStats prints a human-readable summary: definition counts per keyword and
// the number of undefined feature steps.
func RunStats(w io.Writer, stepsDir, featuresDir, include string) error {
	s, err := newScanner(stepsDir, featuresDir, include)
	if err != nil {
		return err
	}

	defs := s.Index()
	missing := s.Undefined()

	byKeyword := make(map[string]int)
	for _, d := range defs {
		byKeyword[d.Keyword]++
	}

	keywords := make([]string, 0, len(byKeyword))
	for kw := range byKeyword {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	ui.DefinedLine(w, len(defs))
	for _, kw := range keywords {
		ui.KeywordLine(w, kw, byKeyword[kw])
	}
	ui.UndefinedLine(w, len(missing))

	return nil
}
