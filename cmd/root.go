package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/chriserin/stepfind/internal/stepindex"
)

var (
	indexFlag     bool
	lineFlag      string
	undefinedFlag bool

	stepsFlag    string
	featuresFlag string
	includeFlag  string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "stepfind",
	Short: "stepfind — match Gherkin steps to their step definitions",
	Long: `stepfind indexes step-definition decorators and Gherkin feature lines,
normalizing both so a step can be matched to the definition that implements
it, or reported as undefined. Results are emitted as JSON on stdout.`,
	// The three modes are mutually exclusive; the first one present wins.
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case indexFlag:
			return RunIndex(cmd.OutOrStdout(), stepsFlag, includeFlag)
		case cmd.Flags().Changed("line"):
			return RunLine(cmd.OutOrStdout(), stepsFlag, includeFlag, lineFlag)
		case undefinedFlag:
			return RunUndefined(cmd.OutOrStdout(), stepsFlag, featuresFlag, includeFlag)
		default:
			return cmd.Help()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&indexFlag, "index", false, "Emit every step definition as JSON")
	rootCmd.Flags().StringVar(&lineFlag, "line", "", "Look up the definition matching one Gherkin line")
	rootCmd.Flags().BoolVar(&undefinedFlag, "undefined", false, "Emit feature steps with no matching definition")

	rootCmd.PersistentFlags().StringVar(&stepsFlag, "steps", "features/steps", "Directory scanned for step definitions")
	rootCmd.PersistentFlags().StringVar(&featuresFlag, "features", "features", "Directory scanned for .feature files")
	rootCmd.PersistentFlags().StringVar(&includeFlag, "include", "", "Glob limiting which step files are scanned (relative to --steps)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger(logLevelFlag)
	}
}

// setupLogger configures the default logger. Logs go to stderr so JSON on
// stdout stays clean; skipped-file events surface at debug.
func setupLogger(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)
}

// newScanner builds a Scanner from the CLI's directory flags. The roots are
// always explicit parameters; nothing here reads the working directory
// implicitly.
func newScanner(stepsDir, featuresDir, include string) (*stepindex.Scanner, error) {
	s := stepindex.New(stepsDir, featuresDir)
	if include != "" {
		g, err := glob.Compile(include, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling include pattern %q: %w", include, err)
		}
		s.Include = g
	}
	return s, nil
}
