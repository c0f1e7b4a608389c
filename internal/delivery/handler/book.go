package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-service/internal/usecase"
)

func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.library.ListBooks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, books)
}

// ListBooksAdmin serves GET /users. The route name is inherited from the
// original API, which returned the book collection here; kept for wire
// compatibility, including the mismatched error message.
func (h *Handler) ListBooksAdmin(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if !claims.Admin {
		respondError(w, http.StatusForbidden, "You must be an admin to update a book")
		return
	}

	books, err := h.library.ListBooks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, books)
}

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if !claims.Admin {
		respondError(w, http.StatusForbidden, "You must be an admin to create a book")
		return
	}

	var in usecase.CreateBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.library.CreateBook(r.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrAllFieldsRequired) {
			respondError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, book)
}

func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if !claims.Admin {
		respondError(w, http.StatusForbidden, "You must be an admin to update a book")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Book not found")
		return
	}

	var in usecase.UpdateBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.library.UpdateBook(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			respondError(w, http.StatusNotFound, "Book not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, book)
}
