package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-service/internal/usecase"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrAllFieldsRequired) {
			respondError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		// Unique-index violations and any other persistence failure surface
		// here with the underlying message, as the original API did.
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
