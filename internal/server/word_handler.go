package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/havili/tohitapu/internal/dictionary"
	"github.com/havili/tohitapu/internal/lookup"
)

// CustomStore is the subset of the custom dictionary store the handler
// needs.
type CustomStore interface {
	lookup.CustomLookup
	lookup.Appender
}

// WordHandler serves the word lookup and persistence endpoints.
type WordHandler struct {
	custom     CustomStore
	translator lookup.Translator
	resolver   *lookup.Resolver
	logger     *slog.Logger
}

// NewWordHandler creates a WordHandler. logger may be nil.
func NewWordHandler(custom CustomStore, trans lookup.Translator, resolver *lookup.Resolver, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		custom:     custom,
		translator: trans,
		resolver:   resolver,
		logger:     logger,
	}
}

// Register mounts the word endpoints on mux.
func (h *WordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/check-dictionary", h.handleCheckDictionary)
	mux.HandleFunc("POST /api/save-word", h.handleSaveWord)
	mux.HandleFunc("POST /api/translate", h.handleTranslate)
	mux.HandleFunc("POST /api/lookup", h.handleLookup)
}

type checkDictionaryRequest struct {
	Word string `json:"word"`
}

type checkDictionaryResponse struct {
	Found        bool   `json:"found"`
	Word         string `json:"word,omitempty"`
	Translation  string `json:"translation,omitempty"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Example      string `json:"example,omitempty"`
}

func (h *WordHandler) handleCheckDictionary(w http.ResponseWriter, r *http.Request) {
	var request checkDictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Word == "" {
		writeError(w, http.StatusBadRequest, "Missing word parameter", nil)
		return
	}

	entry, found, err := h.custom.Lookup(r.Context(), request.Word)
	if err != nil {
		h.logger.Error("custom dictionary lookup failed", "word", request.Word, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to check dictionary", err)
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, checkDictionaryResponse{Found: false})
		return
	}

	writeJSON(w, http.StatusOK, checkDictionaryResponse{
		Found:        true,
		Word:         entry.Word,
		Translation:  entry.Translation,
		PartOfSpeech: entry.PartOfSpeech,
		Example:      entry.Example,
	})
}

type saveWordRequest struct {
	TonganWord         string `json:"tongan_word"`
	EnglishTranslation string `json:"english_translation"`
	PartOfSpeech       string `json:"part_of_speech"`
	ExampleSentence    string `json:"example_sentence"`
}

func (h *WordHandler) handleSaveWord(w http.ResponseWriter, r *http.Request) {
	var request saveWordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	err := h.custom.Append(dictionary.CustomEntry{
		Word:         request.TonganWord,
		Translation:  request.EnglishTranslation,
		PartOfSpeech: request.PartOfSpeech,
		Example:      request.ExampleSentence,
	})
	switch {
	case errors.Is(err, dictionary.ErrMissingWord), errors.Is(err, dictionary.ErrMissingTranslation):
		writeError(w, http.StatusBadRequest, "Missing required fields", err)
	case err != nil:
		h.logger.Error("save word failed", "word", request.TonganWord, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save word", err)
	default:
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

type translateRequest struct {
	Text string `json:"text"`
}

func (h *WordHandler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var request translateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Text == "" {
		writeError(w, http.StatusBadRequest, "Text is required", nil)
		return
	}

	result, err := h.translator.Translate(r.Context(), request.Text)
	if err != nil {
		h.logger.Error("translation failed", "text", request.Text, "error", err)
		writeError(w, http.StatusInternalServerError, "Translation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type lookupRequest struct {
	Word string `json:"word"`
}

type lookupResponse struct {
	Source       lookup.Source `json:"source"`
	Word         string        `json:"word,omitempty"`
	Translation  string        `json:"translation,omitempty"`
	PartOfSpeech string        `json:"partOfSpeech,omitempty"`
	Meaning      string        `json:"meaning,omitempty"`
	Example      string        `json:"example,omitempty"`
	Text         string        `json:"text,omitempty"`
	To           string        `json:"to,omitempty"`
}

func (h *WordHandler) handleLookup(w http.ResponseWriter, r *http.Request) {
	var request lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Word == "" {
		writeError(w, http.StatusBadRequest, "Missing word parameter", nil)
		return
	}

	outcome, err := h.resolver.Resolve(r.Context(), request.Word)
	if err != nil {
		// Resolve only fails on context cancellation; the client is gone.
		h.logger.Debug("lookup canceled", "word", request.Word, "error", err)
		return
	}

	response := lookupResponse{Source: outcome.Source}
	switch outcome.Source {
	case lookup.SourceReference:
		response.Word = outcome.Reference.Word
		response.PartOfSpeech = outcome.Reference.PartOfSpeech
		response.Meaning = outcome.Reference.Meaning
	case lookup.SourceCustom:
		response.Word = outcome.Custom.Word
		response.Translation = outcome.Custom.Translation
		response.PartOfSpeech = outcome.Custom.PartOfSpeech
		response.Example = outcome.Custom.Example
	case lookup.SourceTranslated:
		response.Text = outcome.Translation.Text
		response.To = outcome.Translation.To
	}
	writeJSON(w, http.StatusOK, response)
}
