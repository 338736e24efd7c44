package readability

import "math"

// Flesch reading-ease coefficients.
const (
	readingEaseBase      = 206.835
	sentenceLengthWeight = 1.015
	wordLengthWeight     = 84.6
)

// ReadingEase applies the Flesch reading-ease formula to precomputed counts.
// A sentence count below one is treated as one, so text without a sentence
// terminator scores as a single sentence. With zero words the result is NaN.
// Higher scores mean easier text and the value is not clamped to 0..100.
func ReadingEase(words, sentences, syllables int) float64 {
	sentences = max(sentences, 1)
	w := float64(words)
	return readingEaseBase -
		sentenceLengthWeight*(w/float64(sentences)) -
		wordLengthWeight*(float64(syllables)/w)
}

// DisplayScore prepares a score for presentation: it truncates toward zero
// at two decimals and reports an undefined score (NaN or ±Inf) as 0.
func DisplayScore(score float64) float64 {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return math.Trunc(score*100) / 100
}

// Report holds every metric for one text.
type Report struct {
	Words       int
	Sentences   int
	Syllables   int
	ReadingEase float64
}

// Defined reports whether ReadingEase is a real number, i.e. the text had words.
func (r Report) Defined() bool {
	return r.Words > 0
}
