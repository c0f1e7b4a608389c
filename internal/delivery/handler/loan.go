package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-service/internal/usecase"
)

func (h *Handler) Borrow(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var in struct {
		BookID string `json:"bookId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// A malformed id cannot name an available book.
	bookID, err := primitive.ObjectIDFromHex(in.BookID)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Book not available")
		return
	}

	if err := h.library.Borrow(r.Context(), claims.Username, bookID); err != nil {
		if errors.Is(err, usecase.ErrBookNotAvailable) {
			respondMessage(w, http.StatusNotFound, "Book not available")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondMessage(w, http.StatusOK, "Book borrowed successfully")
}

func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var in struct {
		BookID string  `json:"bookId"`
		Fine   float64 `json:"fine"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bookID, err := primitive.ObjectIDFromHex(in.BookID)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "No record of borrowed book found")
		return
	}

	record, err := h.library.Return(r.Context(), claims.Username, bookID, in.Fine)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBorrowRecord) {
			respondMessage(w, http.StatusNotFound, "No record of borrowed book found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Book returned successfully",
		"returnRecord": record,
	})
}
