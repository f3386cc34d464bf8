package server

import (
	"net/http"
	"strconv"

	"github.com/havili/tohitapu/internal/bible"
)

// BibleHandler serves the scripture endpoints.
type BibleHandler struct {
	store *bible.Store
}

// NewBibleHandler creates a BibleHandler over the loaded scripture store.
func NewBibleHandler(store *bible.Store) *BibleHandler {
	return &BibleHandler{store: store}
}

// Register mounts the scripture endpoints on mux.
func (h *BibleHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/books", h.handleListBooks)
	mux.HandleFunc("GET /api/books/{id}", h.handleGetBook)
	mux.HandleFunc("GET /api/books/{id}/chapters/{chapter}", h.handleGetChapter)
}

func (h *BibleHandler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"books": h.store.Books()})
}

func (h *BibleHandler) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, found := h.store.Book(r.PathValue("id"))
	if !found {
		writeError(w, http.StatusNotFound, "Unknown book", nil)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BibleHandler) handleGetChapter(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	chapter, err := strconv.Atoi(r.PathValue("chapter"))
	if err != nil || chapter < 1 {
		writeError(w, http.StatusBadRequest, "Invalid chapter number", nil)
		return
	}

	switch lang := r.URL.Query().Get("lang"); lang {
	case "", "parallel":
		parallel, found := h.store.ParallelChapter(bookID, chapter)
		if !found {
			writeError(w, http.StatusNotFound, "Unknown book or chapter", nil)
			return
		}
		writeJSON(w, http.StatusOK, parallel)
	case string(bible.LanguageTongan), string(bible.LanguageEnglish):
		verses, found := h.store.Chapter(bible.Language(lang), bookID, chapter)
		if !found {
			writeError(w, http.StatusNotFound, "Unknown book or chapter", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"book":    bookID,
			"chapter": chapter,
			"lang":    lang,
			"verses":  verses,
		})
	default:
		writeError(w, http.StatusBadRequest, "Unknown language", nil)
	}
}
