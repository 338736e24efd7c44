package readability

import "iter"

// Analyzer computes word, sentence and syllable counts and the reading-ease
// score for arbitrary text. It holds no mutable state and is safe for
// concurrent use.
type Analyzer struct {
	catalog   *Catalog
	tokenizer *Tokenizer
	estimator *Estimator
}

// New compiles a fresh Catalog and returns an Analyzer that uses it.
func New() (*Analyzer, error) {
	c, err := NewCatalog()
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(c), nil
}

// MustNew is like New but panics if the catalog does not compile.
func MustNew() *Analyzer {
	return NewWithCatalog(MustCatalog())
}

// NewWithCatalog returns an Analyzer sharing an already compiled Catalog.
func NewWithCatalog(c *Catalog) *Analyzer {
	return &Analyzer{
		catalog:   c,
		tokenizer: NewTokenizer(c),
		estimator: NewEstimator(c),
	}
}

// Catalog returns the pattern catalog the analyzer was built with.
func (a *Analyzer) Catalog() *Catalog { return a.catalog }

// Words returns the words of text in order.
func (a *Analyzer) Words(text string) iter.Seq[string] { return a.tokenizer.Words(text) }

// WordCount returns the number of words in text.
func (a *Analyzer) WordCount(text string) int { return a.tokenizer.WordCount(text) }

// SentenceCount returns the number of sentences in text, at least 1.
func (a *Analyzer) SentenceCount(text string) int { return a.tokenizer.SentenceCount(text) }

// SyllablesInWord returns the estimated syllable count of a single word.
func (a *Analyzer) SyllablesInWord(word string) int { return a.estimator.SyllablesInWord(word) }

// Explain returns the rule breakdown for a single word.
func (a *Analyzer) Explain(word string) Breakdown { return a.estimator.Explain(word) }

// SyllablesInText returns the sum of the syllable estimates of every word in
// text; 0 when text has no words.
func (a *Analyzer) SyllablesInText(text string) int {
	total := 0
	a.tokenizer.eachWord(text, func(w []rune) bool {
		total += a.estimator.syllables(w)
		return true
	})
	return total
}

// FleschKincaidReadingEase returns the Flesch reading-ease score of text.
// It is NaN when text has no words.
func (a *Analyzer) FleschKincaidReadingEase(text string) float64 {
	return ReadingEase(a.WordCount(text), a.SentenceCount(text), a.SyllablesInText(text))
}

// Analyze returns all metrics for text, tokenizing it once.
func (a *Analyzer) Analyze(text string) Report {
	var r Report
	a.tokenizer.eachWord(text, func(w []rune) bool {
		r.Words++
		r.Syllables += a.estimator.syllables(w)
		return true
	})
	r.Sentences = a.tokenizer.SentenceCount(text)
	r.ReadingEase = ReadingEase(r.Words, r.Sentences, r.Syllables)
	return r
}
