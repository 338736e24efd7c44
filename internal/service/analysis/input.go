package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/kincaid/internal/config"
	"github.com/heartmarshall/kincaid/internal/domain"
)

// maxWordRunes bounds a single word in a syllable request.
const maxWordRunes = 128

// AnalyzeInput holds parameters for the analyze operation.
type AnalyzeInput struct {
	Text string
}

// Validate validates the analyze input against the request limits.
func (i AnalyzeInput) Validate(limits config.LimitsConfig) error {
	if n := utf8.RuneCountInString(i.Text); n > limits.MaxTextRunes {
		return domain.NewValidationError("text", fmt.Sprintf("too long (%d characters, max %d)", n, limits.MaxTextRunes))
	}
	return nil
}

// SyllablesInput holds parameters for the per-word syllable operation.
type SyllablesInput struct {
	Words   []string
	Explain bool
}

// Validate validates the syllables input against the request limits.
func (i SyllablesInput) Validate(limits config.LimitsConfig) error {
	if len(i.Words) == 0 {
		return domain.NewValidationError("words", "required")
	}
	if len(i.Words) > limits.MaxWords {
		return domain.NewValidationError("words", fmt.Sprintf("too many (%d, max %d)", len(i.Words), limits.MaxWords))
	}

	var errs []domain.FieldError
	for idx, w := range i.Words {
		field := fmt.Sprintf("words[%d]", idx)
		switch {
		case strings.TrimSpace(w) == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		case utf8.RuneCountInString(w) > maxWordRunes:
			errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
