package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_CompilesEveryPattern(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog()
	require.NoError(t, err)

	assert.Len(t, c.AddPatterns(), 133)
	assert.Len(t, c.DeductPatterns(), 74)
	assert.Equal(t, `y\b`, c.AddPatterns()[0])
	assert.Equal(t, `-in\b`, c.AddPatterns()[132])
	assert.Equal(t, `e\b`, c.DeductPatterns()[0])
	assert.Equal(t, `gior`, c.DeductPatterns()[73])
}

func TestCatalog_PatternTablesAreCopies(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	add := c.AddPatterns()
	add[0] = "mutated"

	assert.Equal(t, `y\b`, c.AddPatterns()[0])
}

func TestCompileSet_ReportsBadPattern(t *testing.T) {
	t.Parallel()

	_, err := compileSet("add", []string{`ia`, `(unclosed`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add pattern 1")
	assert.Contains(t, err.Error(), "(unclosed")
}

func TestCatalog_VowelGroups(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	tests := []struct {
		word string
		want int
	}{
		{"hello", 2},
		{"HELLO", 2},
		{"queueing", 1},
		{"rhythm", 0},
		{"beautiful", 3},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VowelGroups(tt.word))
		})
	}
}

func TestCatalog_MatchesCountDistinctPatterns(t *testing.T) {
	t.Parallel()

	c := MustCatalog()

	// "ia" occurs twice but is one pattern.
	assert.Equal(t, 1, c.AddMatches("iaia"))
	assert.Equal(t, []string{`ia`}, c.MatchingAdd("iaia"))

	assert.Equal(t, 0, c.AddMatches("some"))
	assert.Equal(t, 1, c.DeductMatches("some"))
	assert.Equal(t, []string{`e\b`}, c.MatchingDeduct("some"))
	assert.Nil(t, c.MatchingAdd("some"))
}

func TestCatalog_MatchingIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	assert.Equal(t, c.DeductMatches("some"), c.DeductMatches("SOME"))
	assert.Equal(t, c.AddMatches("iaia"), c.AddMatches("IAIA"))
}
