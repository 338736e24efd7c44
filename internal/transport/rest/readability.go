package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kincaid/internal/domain"
	"github.com/heartmarshall/kincaid/internal/service/analysis"
	"github.com/heartmarshall/kincaid/pkg/ctxutil"
	"github.com/heartmarshall/kincaid/pkg/readability"
)

// analysisService defines the minimal interface needed by ReadabilityHandler.
type analysisService interface {
	Analyze(ctx context.Context, input analysis.AnalyzeInput) (readability.Report, error)
	Syllables(ctx context.Context, input analysis.SyllablesInput) ([]analysis.WordSyllables, error)
}

// ReadabilityHandler serves the readability REST endpoints.
type ReadabilityHandler struct {
	svc          analysisService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewReadabilityHandler creates a ReadabilityHandler.
func NewReadabilityHandler(svc analysisService, logger *slog.Logger, maxBodyBytes int64) *ReadabilityHandler {
	return &ReadabilityHandler{
		svc:          svc,
		log:          logger.With("handler", "readability"),
		maxBodyBytes: maxBodyBytes,
	}
}

type analyzeRequest struct {
	Text *string `json:"text"`
}

type analyzeResponse struct {
	Words              int     `json:"words"`
	Sentences          int     `json:"sentences"`
	Syllables          int     `json:"syllables"`
	ReadingEase        float64 `json:"readingEase"`
	ReadingEaseDefined bool    `json:"readingEaseDefined"`
}

type syllablesRequest struct {
	Words   []string `json:"words"`
	Explain bool     `json:"explain"`
}

type syllablesResponse struct {
	Words []wordSyllablesResponse `json:"words"`
}

type wordSyllablesResponse struct {
	Word      string             `json:"word"`
	Syllables int                `json:"syllables"`
	Breakdown *breakdownResponse `json:"breakdown,omitempty"`
}

type breakdownResponse struct {
	VowelGroups int      `json:"vowelGroups"`
	Add         []string `json:"add"`
	Deduct      []string `json:"deduct"`
}

// Analyze handles POST /v1/analyze.
func (h *ReadabilityHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, h.maxBodyBytes, &req) {
		return
	}
	if req.Text == nil {
		writeValidationError(w, domain.NewValidationError("text", "required"))
		return
	}

	report, err := h.svc.Analyze(r.Context(), analysis.AnalyzeInput{Text: *req.Text})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalyzeResponse(report))
}

// Syllables handles POST /v1/syllables.
func (h *ReadabilityHandler) Syllables(w http.ResponseWriter, r *http.Request) {
	var req syllablesRequest
	if !decodeJSON(w, r, h.maxBodyBytes, &req) {
		return
	}

	result, err := h.svc.Syllables(r.Context(), analysis.SyllablesInput{
		Words:   req.Words,
		Explain: req.Explain,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSyllablesResponse(result))
}

func (h *ReadabilityHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.WarnContext(r.Context(), "request aborted",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, "request aborted")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toAnalyzeResponse(r readability.Report) analyzeResponse {
	return analyzeResponse{
		Words:              r.Words,
		Sentences:          r.Sentences,
		Syllables:          r.Syllables,
		ReadingEase:        readability.DisplayScore(r.ReadingEase),
		ReadingEaseDefined: r.Defined(),
	}
}

func toSyllablesResponse(words []analysis.WordSyllables) syllablesResponse {
	out := syllablesResponse{Words: make([]wordSyllablesResponse, len(words))}
	for i, ws := range words {
		out.Words[i] = wordSyllablesResponse{Word: ws.Word, Syllables: ws.Syllables}
		if b := ws.Breakdown; b != nil {
			out.Words[i].Breakdown = &breakdownResponse{
				VowelGroups: b.VowelGroups,
				Add:         nonNil(b.Add),
				Deduct:      nonNil(b.Deduct),
			}
		}
	}
	return out
}

// nonNil keeps empty rule lists as [] rather than null in JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
