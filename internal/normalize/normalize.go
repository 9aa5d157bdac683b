// Package normalize canonicalizes Gherkin step lines and step-definition
// patterns so the two can be compared by plain string equality. Every
// variable part — quoted literals, numeric tokens, {name} placeholders,
// inline numeric capture groups — collapses to the same placeholder token.
package normalize

import (
	"regexp"
	"strings"
)

// Placeholder is the canonical token every variable slot is reduced to.
const Placeholder = "{}"

var (
	// Leading keyword of a feature-file line. Feature/Scenario headers are
	// included so header lines normalize cleanly too.
	leadingKeyword = regexp.MustCompile(`(?i)^(feature|scenario|given|when|then|and|but)\s+`)

	// stepWord detects the five step keywords as whole words. Used to select
	// candidate lines when scanning feature files for undefined steps.
	stepWord = regexp.MustCompile(`\b(Given|When|Then|And|But)\b`)

	doubleQuoted  = regexp.MustCompile(`"[^"]*"`)
	singleQuoted  = regexp.MustCompile(`'[^']*'`)
	numericToken  = regexp.MustCompile(`\b\d+(\.\d+)?\b`)
	whitespaceRun = regexp.MustCompile(`\s+`)

	// String-literal prefix on a decorator pattern, e.g. r'...' or u"...".
	literalPrefix = regexp.MustCompile(`(?i)^[ru]\s*`)

	// {name}-style placeholders. [^}]+ keeps the bare {} token untouched,
	// which makes Pattern idempotent.
	namedParam = regexp.MustCompile(`\{[^}]+\}`)

	// Inline numeric capture groups: (\d+) and (\d+\.\d+), with each
	// backslash optional.
	numericGroup = regexp.MustCompile(`\(\\?d\+(\\?\.\\?d\+)?\)`)
)

// Gherkin canonicalizes one raw line of a feature file: the leading keyword
// is stripped, double- and single-quoted substrings and standalone numeric
// literals become the placeholder token, and whitespace runs collapse to a
// single space. Single-quoted substrings are normalized deliberately — the
// pattern side accepts single-quoted slots, so the line side must match.
// Always returns a string; empty input yields the empty string.
func Gherkin(line string) string {
	s := strings.TrimSpace(line)
	s = leadingKeyword.ReplaceAllString(s, "")
	s = doubleQuoted.ReplaceAllString(s, Placeholder)
	s = singleQuoted.ReplaceAllString(s, Placeholder)
	s = numericToken.ReplaceAllString(s, Placeholder)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Pattern canonicalizes the raw argument text captured from a step-definition
// decorator. The result is comparable to Gherkin's output: all three
// spellings of a variable slot ({name} placeholders, numeric capture groups,
// quoted literals) reduce to the placeholder token.
//
// Numeric capture groups are replaced before the quoted-substring pass so a
// pattern like "(\d+)" still ends up as a single placeholder.
func Pattern(raw string) string {
	p := strings.TrimSpace(raw)
	p = literalPrefix.ReplaceAllString(p, "")
	if len(p) >= 2 {
		first, last := p[0], p[len(p)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			p = p[1 : len(p)-1]
		}
	}
	p = namedParam.ReplaceAllString(p, Placeholder)
	p = numericGroup.ReplaceAllString(p, Placeholder)
	p = doubleQuoted.ReplaceAllString(p, Placeholder)
	p = singleQuoted.ReplaceAllString(p, Placeholder)
	p = whitespaceRun.ReplaceAllString(p, " ")
	return strings.TrimSpace(p)
}

// HasStepKeyword reports whether the line contains one of Given, When, Then,
// And, But as a whole word.
func HasStepKeyword(line string) bool {
	return stepWord.MatchString(line)
}
