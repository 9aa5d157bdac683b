package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/stepfind/internal/stepindex"
)

// fixture lays out a steps dir and a features dir under a temp root and
// returns their paths.
func fixture(t *testing.T) (stepsDir, featuresDir string) {
	t.Helper()
	root := t.TempDir()
	stepsDir = filepath.Join(root, "features", "steps")
	featuresDir = filepath.Join(root, "features")
	require.NoError(t, os.MkdirAll(stepsDir, 0o755))
	return stepsDir, featuresDir
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runIndex(t *testing.T, stepsDir string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunIndex(&buf, stepsDir, ""))
	return buf.String()
}

func runLine(t *testing.T, stepsDir, line string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunLine(&buf, stepsDir, "", line))
	return buf.String()
}

func runUndefined(t *testing.T, stepsDir, featuresDir string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunUndefined(&buf, stepsDir, featuresDir, ""))
	return buf.String()
}

func TestIndex_EmitsDefinitionsAsJSON(t *testing.T) {
	stepsDir, _ := fixture(t)
	path := write(t, stepsDir, "auth.py", `@given('the user is "{role}"')
def step(context, role):
    pass
`)

	out := runIndex(t, stepsDir)

	var defs []stepindex.Definition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 1)
	assert.Equal(t, path, defs[0].File)
	assert.Equal(t, 1, defs[0].Line)
	assert.Equal(t, `'the user is "{role}"'`, defs[0].Raw)
	assert.Equal(t, "the user is {}", defs[0].Normalized)
	assert.Equal(t, "given", defs[0].Keyword)
}

func TestIndex_MissingDirEmitsEmptyArray(t *testing.T) {
	out := runIndex(t, filepath.Join(t.TempDir(), "nope"))

	assert.Equal(t, "[]\n", out)
}

func TestIndex_NonASCIIPreservedVerbatim(t *testing.T) {
	stepsDir, _ := fixture(t)
	write(t, stepsDir, "cafe.py", `@given("the café is open")
def step(context):
    pass
`)

	out := runIndex(t, stepsDir)

	assert.Contains(t, out, "café")
	assert.NotContains(t, out, `\u`)
}

func TestLine_EmitsMatchedEntry(t *testing.T) {
	stepsDir, _ := fixture(t)
	path := write(t, stepsDir, "timing.py", `@when("a {n} second delay")
def step(context, n):
    pass
`)

	out := runLine(t, stepsDir, `When a "5" second delay`)

	var def stepindex.Definition
	require.NoError(t, json.Unmarshal([]byte(out), &def))
	assert.Equal(t, path, def.File)
	assert.Equal(t, 1, def.Line)
	assert.Equal(t, "when", def.Keyword)
}

func TestLine_UnmatchedEmitsNull(t *testing.T) {
	stepsDir, _ := fixture(t)
	write(t, stepsDir, "auth.py", `@given("a user")
def step(context):
    pass
`)

	out := runLine(t, stepsDir, "Given something undefined")

	assert.Equal(t, "null\n", out)
}

func TestUndefined_EmitsEntriesAsJSON(t *testing.T) {
	stepsDir, featuresDir := fixture(t)
	write(t, stepsDir, "auth.py", `@given("a user")
def step(context):
    pass
`)
	featPath := write(t, featuresDir, "login.feature", `Feature: Login

  Scenario: first
    Given a user
    When the page reloads
`)

	out := runUndefined(t, stepsDir, featuresDir)

	var missing []stepindex.Undefined
	require.NoError(t, json.Unmarshal([]byte(out), &missing))
	require.Len(t, missing, 1)
	assert.Equal(t, featPath, missing[0].FeatureFile)
	assert.Equal(t, 5, missing[0].Line)
	assert.Equal(t, "When the page reloads", missing[0].Text)
	assert.Equal(t, "the page reloads", missing[0].Normalized)
}

func TestUndefined_NothingMissingEmitsEmptyArray(t *testing.T) {
	stepsDir, featuresDir := fixture(t)
	write(t, stepsDir, "auth.py", `@given("a user")
def step(context):
    pass
`)
	write(t, featuresDir, "login.feature", `Feature: Login

  Scenario: first
    Given a user
`)

	out := runUndefined(t, stepsDir, featuresDir)

	assert.Equal(t, "[]\n", out)
}

func TestRoot_NoModeFlagPrintsHelp(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Usage:")
	assert.Contains(t, buf.String(), "--index")
}

func TestRunLine_RejectsBadIncludePattern(t *testing.T) {
	var buf bytes.Buffer
	err := RunLine(&buf, t.TempDir(), "[", "Given a user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "include pattern")
}
