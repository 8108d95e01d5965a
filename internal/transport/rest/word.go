package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AstroX11/word-vaildator-api/internal/domain"
	"github.com/AstroX11/word-vaildator-api/internal/service/validator"
)

const (
	serviceName = "Word Validator API"
	usage       = "/word?word=<word_to_validate>"
	wordParam   = "word"
)

// wordValidator is the validation use case consumed by WordHandler.
type wordValidator interface {
	Validate(ctx context.Context, raw string, present bool) (domain.ValidationResult, error)
	DictionaryInfo() validator.DictionaryInfo
}

// WordHandler serves the index and word validation endpoints.
type WordHandler struct {
	svc     wordValidator
	version string
	log     *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordValidator, version string, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, version: version, log: logger.With("handler", "word")}
}

// IndexResponse describes the service. Exactly one of DictionarySize and
// Dictionary is set.
type IndexResponse struct {
	Service        string `json:"service"`
	Version        string `json:"version"`
	Usage          string `json:"usage"`
	DictionarySize *int   `json:"dictionary_size,omitempty"`
	Dictionary     string `json:"dictionary,omitempty"`
}

// WordResponse is the body of a successful /word request.
type WordResponse struct {
	Word   string `json:"word"`
	Found  bool   `json:"found"`
	Source string `json:"source"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Index handles GET /.
func (h *WordHandler) Index(w http.ResponseWriter, r *http.Request) {
	resp := IndexResponse{
		Service: serviceName,
		Version: h.version,
		Usage:   usage,
	}

	info := h.svc.DictionaryInfo()
	if info.OnDemand {
		resp.Dictionary = "on-demand"
	} else {
		size := info.Size
		resp.DictionarySize = &size
	}

	writeJSON(w, http.StatusOK, resp)
}

// Word handles GET /word?word=<text>.
func (h *WordHandler) Word(w http.ResponseWriter, r *http.Request) {
	values, present := r.URL.Query()[wordParam]
	raw := ""
	if present && len(values) > 0 {
		raw = values[0]
	}

	result, err := h.svc.Validate(r.Context(), raw, present)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, WordResponse{
		Word:   result.Word.String(),
		Found:  result.Found,
		Source: result.Source.String(),
	})
}

func (h *WordHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Message()})
		return
	}

	h.log.ErrorContext(r.Context(), "validate word", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
