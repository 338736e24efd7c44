package readability

import (
	"iter"

	"github.com/dlclark/regexp2"
)

// Tokenizer splits text into words and counts sentences.
type Tokenizer struct {
	catalog *Catalog
}

// NewTokenizer returns a Tokenizer backed by c.
func NewTokenizer(c *Catalog) *Tokenizer {
	return &Tokenizer{catalog: c}
}

// Words returns the words of text in order. The sequence is lazy and may be
// ranged over any number of times.
//
// A word is a run of Unicode letters bounded by non-word characters. One
// hyphen or apostrophe may join two letter runs ("Test-case", "wasn't");
// digits, symbols and a dangling hyphen never become part of a word.
func (t *Tokenizer) Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.eachWord(text, func(w []rune) bool {
			return yield(string(w))
		})
	}
}

// WordCount returns the number of words in text.
func (t *Tokenizer) WordCount(text string) int {
	n := 0
	t.eachWord(text, func([]rune) bool {
		n++
		return true
	})
	return n
}

// SentenceCount returns the number of sentence terminator runs in text.
// Consecutive terminators ("...", "?!") form one run. The result is never
// below 1, so it is always safe to divide by.
func (t *Tokenizer) SentenceCount(text string) int {
	if text == "" {
		return 1
	}
	return max(countMatches(t.catalog.sentence, []rune(text)), 1)
}

func (t *Tokenizer) eachWord(text string, yield func(w []rune) bool) {
	if text == "" {
		return
	}
	eachMatch(t.catalog.word, []rune(text), func(m *regexp2.Match) bool {
		return yield(m.Runes())
	})
}
