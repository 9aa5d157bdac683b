package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGherkin_StripsLeadingKeyword(t *testing.T) {
	assert.Equal(t, "the user logs in", Gherkin("Given the user logs in"))
	assert.Equal(t, "the user logs in", Gherkin("  When the user logs in"))
	assert.Equal(t, "the user logs in", Gherkin("THEN the user logs in"))
	assert.Equal(t, "the user logs in", Gherkin("and the user logs in"))
}

func TestGherkin_StripsHeaderKeywords(t *testing.T) {
	assert.Equal(t, "login works", Gherkin("Scenario: login works"))
	assert.Equal(t, "authentication", Gherkin("Feature: authentication"))
}

func TestGherkin_DoubleQuotedBecomesPlaceholder(t *testing.T) {
	out := Gherkin(`When the user sends a "GET" request`)

	assert.Equal(t, "the user sends a {} request", out)
	assert.NotContains(t, out, "GET")
}

func TestGherkin_SingleQuotedBecomesPlaceholder(t *testing.T) {
	out := Gherkin(`Given the role is 'admin'`)

	assert.Equal(t, "the role is {}", out)
	assert.NotContains(t, out, "admin")
}

func TestGherkin_EmptyQuotesBecomePlaceholder(t *testing.T) {
	assert.Equal(t, "the field is {}", Gherkin(`Given the field is ""`))
}

func TestGherkin_IntegerBecomesPlaceholder(t *testing.T) {
	assert.Equal(t, "there are {} users", Gherkin("Given there are 5 users"))
}

func TestGherkin_DecimalBecomesPlaceholder(t *testing.T) {
	assert.Equal(t, "a {} second delay", Gherkin("When a 2.5 second delay"))
}

func TestGherkin_DigitsInsideIdentifierAreKept(t *testing.T) {
	assert.Equal(t, "user42 exists", Gherkin("Given user42 exists"))
}

func TestGherkin_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "the user logs in", Gherkin("Given   the  user\tlogs   in  "))
}

func TestGherkin_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Gherkin(""))
	assert.Equal(t, "", Gherkin("   "))
}

func TestGherkin_Idempotent(t *testing.T) {
	inputs := []string{
		`Given the user is "admin"`,
		"When a 2.5 second delay",
		`Then the response contains 'ok' and "done"`,
		"a plain line with no keyword prefix",
	}
	for _, in := range inputs {
		once := Gherkin(in)
		assert.Equal(t, once, Gherkin(once), "input %q", in)
	}
}

func TestHasStepKeyword(t *testing.T) {
	assert.True(t, HasStepKeyword("  Given a user"))
	assert.True(t, HasStepKeyword("  But not this time"))
	assert.False(t, HasStepKeyword("  Scenario: something"))
	assert.False(t, HasStepKeyword("Andrew logs in")) // not a whole word
	assert.False(t, HasStepKeyword(""))
}
