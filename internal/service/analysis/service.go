package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/kincaid/internal/config"
	"github.com/heartmarshall/kincaid/pkg/readability"
)

// analyzer defines the readability operations needed by the analysis service.
type analyzer interface {
	Analyze(text string) readability.Report
	SyllablesInWord(word string) int
	Explain(word string) readability.Breakdown
}

// recorder defines the metrics the analysis service reports.
type recorder interface {
	RecordAnalysis(words int)
	RecordSyllableLookups(n int)
}

// Service validates requests and runs them through the analyzer.
type Service struct {
	log      *slog.Logger
	analyzer analyzer
	metrics  recorder
	limits   config.LimitsConfig
}

// NewService creates a new analysis service instance.
func NewService(
	logger *slog.Logger,
	a analyzer,
	metrics recorder,
	limits config.LimitsConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "analysis"),
		analyzer: a,
		metrics:  metrics,
		limits:   limits,
	}
}

// WordSyllables is the syllable estimate for one requested word.
type WordSyllables struct {
	Word      string
	Syllables int
	Breakdown *readability.Breakdown // set only when explain was requested
}

// Analyze scores a text. Text without words is valid and yields an
// undefined reading ease.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (readability.Report, error) {
	if err := input.Validate(s.limits); err != nil {
		return readability.Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return readability.Report{}, fmt.Errorf("analyze: %w", err)
	}

	report := s.analyzer.Analyze(input.Text)
	s.metrics.RecordAnalysis(report.Words)

	s.log.DebugContext(ctx, "text analyzed",
		slog.Int("words", report.Words),
		slog.Int("sentences", report.Sentences),
		slog.Int("syllables", report.Syllables),
	)

	return report, nil
}

// Syllables estimates each requested word independently, preserving order.
func (s *Service) Syllables(ctx context.Context, input SyllablesInput) ([]WordSyllables, error) {
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	out := make([]WordSyllables, 0, len(input.Words))
	for _, word := range input.Words {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("syllables: %w", err)
		}

		ws := WordSyllables{Word: word}
		if input.Explain {
			b := s.analyzer.Explain(word)
			ws.Syllables = b.Syllables
			ws.Breakdown = &b
		} else {
			ws.Syllables = s.analyzer.SyllablesInWord(word)
		}
		out = append(out, ws)
	}

	s.metrics.RecordSyllableLookups(len(out))
	return out, nil
}

// canaryText has a known analysis: 2 words, 1 sentence, 3 syllables.
const canaryText = "Hello World."

// Ping runs a fixed sentence through the analyzer and checks the counts.
// It does not touch metrics.
func (s *Service) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	r := s.analyzer.Analyze(canaryText)
	if r.Words != 2 || r.Sentences != 1 || r.Syllables != 3 {
		return fmt.Errorf("ping: analyzer self-check got words=%d sentences=%d syllables=%d",
			r.Words, r.Sentences, r.Syllables)
	}
	return nil
}
