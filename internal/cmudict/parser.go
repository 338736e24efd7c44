// Package cmudict reads the CMU Pronouncing Dictionary and measures a
// syllable estimator against it. Only tests and tooling load the dictionary.
package cmudict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/heartmarshall/kincaid/pkg/readability"
)

const commentPrefix = ";;;"

// linePattern takes the first word of a line that is followed, somewhere
// later, by two spaces and a run of space-separated word tokens. It is not
// anchored and does not skip ";;;" lines, so a header line such as
// ";;; # CMUdict  --  Major Version: 0.07" yields the entry CMUdict with the
// "pronunciation" "Major Version". The mistake baseline was measured this way.
var linePattern = regexp2.MustCompile(readability.WordPattern+`.*  ((?:[\w\n]+ ?)+)`, regexp2.None)

// errSkipLine signals that a line holds no entry.
var errSkipLine = errors.New("skip line")

// Entry is a single parsed pronunciation line.
type Entry struct {
	Word      string   // headword as written in the file
	Variant   int      // 0 for primary, 1 for (2), 2 for (3), etc.
	Phonemes  []string // ARPAbet phonemes with stress markers
	Syllables int      // number of vowel phonemes
}

// Stats holds parser statistics for logging.
// TotalLines is always ParsedLines + SkippedLines. CommentLines counts ";;;"
// lines whether or not they produced an entry.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	SkippedLines int
	UniqueWords  int
}

// Dictionary maps each headword to the syllable counts its pronunciations
// allow. Keys keep the file's spelling and case.
type Dictionary struct {
	counts map[string][]int
	Stats  Stats
}

// Parser turns dictionary lines into entries.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads a dictionary file. The file must be UTF-8.
func (p *Parser) ParseFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse reads dictionary lines from r. Lines without an entry are counted and skipped.
func (p *Parser) Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{counts: make(map[string][]int)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.Stats.TotalLines++
		line := scanner.Text()
		if strings.HasPrefix(line, commentPrefix) {
			d.Stats.CommentLines++
		}

		entry, err := p.parseLine(line)
		if errors.Is(err, errSkipLine) {
			d.Stats.SkippedLines++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", d.Stats.TotalLines, err)
		}

		d.Stats.ParsedLines++
		d.add(entry.Word, entry.Syllables)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	d.Stats.UniqueWords = len(d.counts)
	return d, nil
}

// parseLine extracts the headword and pronunciation matched by linePattern.
// For well-formed lines ("WORD  PH1 PH2 ...") that is the leading word of
// the headword and every phoneme up to a trailing "# comment".
func (p *Parser) parseLine(line string) (Entry, error) {
	m, err := linePattern.FindStringMatch(line)
	if err != nil {
		return Entry{}, fmt.Errorf("match: %w", err)
	}
	if m == nil {
		return Entry{}, errSkipLine
	}

	groups := m.Groups()
	phonemes := strings.Fields(groups[2].String())

	var variant int
	if fields := strings.Fields(line); len(fields) > 0 {
		variant = variantIndex(fields[0])
	}

	return Entry{
		Word:      groups[1].String(),
		Variant:   variant,
		Phonemes:  phonemes,
		Syllables: countVowelPhonemes(phonemes),
	}, nil
}

// countVowelPhonemes counts phonemes that begin with an upper-case vowel
// letter. Every ARPAbet vowel (AA, AE, ..., UW) does, and no consonant does.
func countVowelPhonemes(phonemes []string) int {
	n := 0
	for _, ph := range phonemes {
		if ph != "" && strings.IndexByte("AEIOU", ph[0]) >= 0 {
			n++
		}
	}
	return n
}

// variantIndex maps "HOUSE" to 0, "HOUSE(2)" to 1, "HOUSE(3)" to 2, etc.
func variantIndex(raw string) int {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return 0
	}
	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return 0
	}
	n, err := strconv.Atoi(raw[idx+1 : idx+end])
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

func (d *Dictionary) add(word string, syllables int) {
	counts := d.counts[word]
	if slices.Contains(counts, syllables) {
		return
	}
	counts = append(counts, syllables)
	slices.Sort(counts)
	d.counts[word] = counts
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.counts) }

// Counts returns the valid syllable counts for word in ascending order.
func (d *Dictionary) Counts(word string) ([]int, bool) {
	c, ok := d.counts[word]
	return slices.Clone(c), ok
}

// Words returns every word in lexical order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.counts))
	for w := range d.counts {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
