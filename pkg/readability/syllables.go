package readability

// Estimator approximates English syllable counts from spelling.
//
// The first-order estimate is the number of vowel groups. Each ADD pattern
// that matches adds one syllable and each DEDUCT pattern that matches removes
// one; a pattern counts once no matter how often it occurs in the word.
type Estimator struct {
	catalog *Catalog
}

// NewEstimator returns an Estimator backed by c.
func NewEstimator(c *Catalog) *Estimator {
	return &Estimator{catalog: c}
}

// Breakdown explains how a syllable count was reached.
type Breakdown struct {
	Word        string
	VowelGroups int
	Add         []string
	Deduct      []string
	Syllables   int
}

// SyllablesInWord returns the estimated syllable count of word, never less than 1.
func (e *Estimator) SyllablesInWord(word string) int {
	return e.syllables([]rune(word))
}

// Explain returns the vowel groups and matching rules behind SyllablesInWord.
func (e *Estimator) Explain(word string) Breakdown {
	r := []rune(word)
	b := Breakdown{
		Word:        word,
		VowelGroups: countMatches(e.catalog.vowels, r),
		Add:         e.catalog.add.matching(r),
		Deduct:      e.catalog.deduct.matching(r),
	}
	b.Syllables = combine(b.VowelGroups, len(b.Add), len(b.Deduct))
	return b
}

func (e *Estimator) syllables(word []rune) int {
	return combine(
		countMatches(e.catalog.vowels, word),
		e.catalog.add.count(word),
		e.catalog.deduct.count(word),
	)
}

// combine applies the corrections with a floor of one syllable.
func combine(vowelGroups, add, deduct int) int {
	if vowelGroups+add < deduct+1 {
		return 1
	}
	return vowelGroups + add - deduct
}
