package readability

import (
	"fmt"
	"slices"

	"github.com/dlclark/regexp2"
)

// patternOptions applies to every pattern in the catalog. The default
// (non-ECMAScript) mode keeps \b Unicode-aware: letters, non-spacing marks,
// decimal digits and connector punctuation are word characters. Spacing
// marks (Mc) are not, so a word in a script that uses them ends at the
// first such mark. Case-insensitive matching folds with unicode.ToLower.
const patternOptions = regexp2.IgnoreCase

// Catalog holds the compiled pattern groups. It is immutable once NewCatalog
// returns and may be shared by any number of goroutines.
type Catalog struct {
	word     *regexp2.Regexp
	sentence *regexp2.Regexp
	vowels   *regexp2.Regexp
	add      patternSet
	deduct   patternSet
}

// patternSet is an ordered rule table with its compiled form.
type patternSet struct {
	source []string
	res    []*regexp2.Regexp
}

// NewCatalog compiles all pattern groups. The patterns are fixed literals,
// so an error here is a build defect rather than bad input.
func NewCatalog() (*Catalog, error) {
	word, err := compile("word", 0, WordPattern)
	if err != nil {
		return nil, err
	}
	sentence, err := compile("sentence", 0, SentencePattern)
	if err != nil {
		return nil, err
	}
	vowels, err := compile("vowel group", 0, VowelGroupPattern)
	if err != nil {
		return nil, err
	}
	add, err := compileSet("add", addPatterns)
	if err != nil {
		return nil, err
	}
	deduct, err := compileSet("deduct", deductPatterns)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		word:     word,
		sentence: sentence,
		vowels:   vowels,
		add:      add,
		deduct:   deduct,
	}, nil
}

// MustCatalog is like NewCatalog but panics if a pattern does not compile.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func compile(group string, i int, pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, patternOptions)
	if err != nil {
		return nil, fmt.Errorf("readability: compile %s pattern %d %q: %w", group, i, pattern, err)
	}
	return re, nil
}

func compileSet(group string, patterns []string) (patternSet, error) {
	set := patternSet{
		source: patterns,
		res:    make([]*regexp2.Regexp, len(patterns)),
	}
	for i, p := range patterns {
		re, err := compile(group, i, p)
		if err != nil {
			return patternSet{}, err
		}
		set.res[i] = re
	}
	return set, nil
}

// AddPatterns returns a copy of the ADD rule table in catalog order.
func (c *Catalog) AddPatterns() []string { return slices.Clone(c.add.source) }

// DeductPatterns returns a copy of the DEDUCT rule table in catalog order.
func (c *Catalog) DeductPatterns() []string { return slices.Clone(c.deduct.source) }

// AddMatches returns how many distinct ADD patterns match anywhere in word.
func (c *Catalog) AddMatches(word string) int { return c.add.count([]rune(word)) }

// DeductMatches returns how many distinct DEDUCT patterns match anywhere in word.
func (c *Catalog) DeductMatches(word string) int { return c.deduct.count([]rune(word)) }

// MatchingAdd returns the ADD patterns that match word, in catalog order.
func (c *Catalog) MatchingAdd(word string) []string { return c.add.matching([]rune(word)) }

// MatchingDeduct returns the DEDUCT patterns that match word, in catalog order.
func (c *Catalog) MatchingDeduct(word string) []string { return c.deduct.matching([]rune(word)) }

// VowelGroups returns the number of maximal vowel runs in word.
func (c *Catalog) VowelGroups(word string) int { return countMatches(c.vowels, []rune(word)) }

func (s patternSet) count(word []rune) int {
	n := 0
	for _, re := range s.res {
		if matchRunes(re, word) {
			n++
		}
	}
	return n
}

func (s patternSet) matching(word []rune) []string {
	var out []string
	for i, re := range s.res {
		if matchRunes(re, word) {
			out = append(out, s.source[i])
		}
	}
	return out
}

// matchRunes reports whether re matches anywhere in r. regexp2 only fails on
// a match timeout and the catalog never sets one, so an error reads as no match.
func matchRunes(re *regexp2.Regexp, r []rune) bool {
	ok, err := re.MatchRunes(r)
	return err == nil && ok
}

// eachMatch calls yield for every non-overlapping match of re in r, left to
// right, until yield returns false.
func eachMatch(re *regexp2.Regexp, r []rune, yield func(m *regexp2.Match) bool) {
	m, err := re.FindRunesMatch(r)
	for m != nil && err == nil {
		if !yield(m) {
			return
		}
		m, err = re.FindNextMatch(m)
	}
}

func countMatches(re *regexp2.Regexp, r []rune) int {
	n := 0
	eachMatch(re, r, func(*regexp2.Match) bool {
		n++
		return true
	})
	return n
}
