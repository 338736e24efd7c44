// Package readability estimates readability metrics for English text: word
// count, sentence count, syllable count and the Flesch reading-ease score.
//
// Syllables are approximated from spelling alone. Vowel groups give a first
// estimate which two fixed rule tables then correct: ADD patterns for words
// that are usually undercounted and DEDUCT patterns for words that are
// usually overcounted. It is a fast heuristic, not a pronunciation engine.
//
// A word is a run of letters bounded by \b, where letters, non-spacing
// marks, decimal digits, connector punctuation and the zero-width joiners
// count as word characters. Spacing combining marks do not, so text in
// scripts such as Devanagari splits into fragments. Outside English only
// the counts of plain letter runs are meaningful.
//
// Build an Analyzer with New (or share one Catalog between several with
// NewWithCatalog) and pass it to the code that needs it. The package-level
// functions use a lazily built shared Analyzer.
package readability

import "sync"

var defaultAnalyzer = sync.OnceValue(MustNew)

// Default returns the shared Analyzer, compiling its catalog on first use.
// It panics if the catalog cannot be compiled.
func Default() *Analyzer { return defaultAnalyzer() }

// WordCount returns the number of words in text.
func WordCount(text string) int { return Default().WordCount(text) }

// SentenceCount returns the number of sentences in text, at least 1.
func SentenceCount(text string) int { return Default().SentenceCount(text) }

// SyllablesInText returns the estimated number of syllables in text.
func SyllablesInText(text string) int { return Default().SyllablesInText(text) }

// SyllablesInWord returns the estimated number of syllables in word.
func SyllablesInWord(word string) int { return Default().SyllablesInWord(word) }

// FleschKincaidReadingEase returns the Flesch reading-ease score of text, NaN
// when text has no words.
func FleschKincaidReadingEase(text string) float64 {
	return Default().FleschKincaidReadingEase(text)
}

// Analyze returns all metrics for text.
func Analyze(text string) Report { return Default().Analyze(text) }
