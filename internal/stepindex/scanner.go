// Package stepindex discovers step definitions under a steps directory,
// builds an in-memory index of them, and answers two queries: which
// definition matches a given Gherkin line, and which feature-file steps have
// no definition at all. The index is rebuilt from the file system on every
// query; nothing is cached between calls.
package stepindex

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/gobwas/glob"

	"github.com/chriserin/stepfind/internal/normalize"
)

// stepDefPattern matches a step-definition decorator call: optional leading
// whitespace, @, one of the decorator keywords, an opening paren, and the
// argument text up to the closing paren. The same regexp qualifies a file
// during discovery and extracts entries line by line, so the two passes
// cannot drift apart. (?m) lets it run over whole file contents for the
// qualification check.
var stepDefPattern = regexp.MustCompile(`(?im)^[ \t]*@(given|when|then|step)\((.+)\)`)

// Scanner performs one-shot, fully synchronous scans rooted at explicit
// directories. Zero scanner is not usable; construct with New.
type Scanner struct {
	StepsDir    string
	FeaturesDir string

	// Include optionally limits which step files are scanned, matched
	// against the slash-separated path relative to StepsDir. Nil means
	// every regular file is a candidate.
	Include glob.Glob
}

func New(stepsDir, featuresDir string) *Scanner {
	return &Scanner{StepsDir: stepsDir, FeaturesDir: featuresDir}
}

// Index walks StepsDir and returns one Definition per decorator line found,
// in lexicographic path order, ascending line number within a file. A missing
// StepsDir yields an empty index. Files that cannot be read or are not valid
// UTF-8 are logged at debug level and skipped; the scan always continues.
func (s *Scanner) Index() []Definition {
	var defs []Definition

	// The walk callback never returns an error: failures are logged and
	// skipped so one bad file cannot abort the scan.
	_ = filepath.WalkDir(s.StepsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if s.Include != nil {
			rel, err := filepath.Rel(s.StepsDir, path)
			if err != nil || !s.Include.Match(filepath.ToSlash(rel)) {
				return nil
			}
		}

		content, ok := readText(path)
		if !ok {
			return nil
		}
		// Qualification pass: only files containing at least one decorator
		// line are scanned for entries.
		if !stepDefPattern.MatchString(content) {
			return nil
		}

		for i, line := range strings.Split(content, "\n") {
			m := stepDefPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			raw := strings.TrimSpace(m[2])
			defs = append(defs, Definition{
				File:       path,
				Line:       i + 1,
				Raw:        raw,
				Normalized: normalize.Pattern(raw),
				Keyword:    strings.ToLower(m[1]),
			})
		}
		return nil
	})

	return defs
}

// Match rebuilds the index and returns the first Definition whose normalized
// pattern equals the normalized form of line, or nil when none does. Ties
// between definitions normalizing identically resolve to the first in index
// order, which is stable for a fixed file-system state.
func (s *Scanner) Match(line string) *Definition {
	target := normalize.Gherkin(line)
	defs := s.Index()
	for i := range defs {
		if defs[i].Normalized == target {
			return &defs[i]
		}
	}
	return nil
}

// Undefined walks FeaturesDir for .feature files and returns every step line
// whose normalized form is absent from the index, one entry per occurrence,
// in lexicographic path order. A missing FeaturesDir yields an empty list.
func (s *Scanner) Undefined() []Undefined {
	defined := make(map[string]struct{})
	for _, d := range s.Index() {
		defined[d.Normalized] = struct{}{}
	}

	var missing []Undefined

	_ = filepath.WalkDir(s.FeaturesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".feature" {
			return nil
		}

		content, ok := readText(path)
		if !ok {
			return nil
		}

		for i, line := range strings.Split(content, "\n") {
			if !normalize.HasStepKeyword(line) {
				continue
			}
			norm := normalize.Gherkin(line)
			if norm == "" {
				continue
			}
			if _, ok := defined[norm]; ok {
				continue
			}
			missing = append(missing, Undefined{
				FeatureFile: path,
				Line:        i + 1,
				Text:        strings.TrimSpace(line),
				Normalized:  norm,
			})
		}
		return nil
	})

	return missing
}

// readText reads path and reports whether it holds scannable text. Read
// failures and non-UTF-8 content are skipped, never fatal.
func readText(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Debug("skipping unreadable file", "path", path, "error", err)
		return "", false
	}
	if !utf8.Valid(content) {
		log.Debug("skipping non-UTF-8 file", "path", path)
		return "", false
	}
	return string(content), true
}
