package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-service/internal/domain/entities"
	"library-service/internal/infrastructure"
	"library-service/internal/usecase"
)

type AuthService interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type LibraryService interface {
	ListBooks(ctx context.Context) ([]entities.Book, error)
	CreateBook(ctx context.Context, in usecase.CreateBookInput) (*entities.Book, error)
	UpdateBook(ctx context.Context, id primitive.ObjectID, in usecase.UpdateBookInput) (*entities.Book, error)
	Borrow(ctx context.Context, username string, bookID primitive.ObjectID) error
	Return(ctx context.Context, username string, bookID primitive.ObjectID, fine float64) (*entities.ReturnRecord, error)
}

type Handler struct {
	auth    AuthService
	library LibraryService
	jwt     *infrastructure.JWTService
}

func NewHandler(auth AuthService, library LibraryService, jwt *infrastructure.JWTService) *Handler {
	return &Handler{
		auth:    auth,
		library: library,
		jwt:     jwt,
	}
}

// Router wires every endpoint. Privileged routes go through the auth guard;
// admin enforcement stays in the handlers because borrow/return accept any
// authenticated role.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/books", h.ListBooks).Methods(http.MethodGet)

	r.Handle("/users", h.authenticate(http.HandlerFunc(h.ListBooksAdmin))).Methods(http.MethodGet)
	r.Handle("/book", h.authenticate(http.HandlerFunc(h.CreateBook))).Methods(http.MethodPost)
	r.Handle("/books/{id}", h.authenticate(http.HandlerFunc(h.UpdateBook))).Methods(http.MethodPost)
	r.Handle("/borrow", h.authenticate(http.HandlerFunc(h.Borrow))).Methods(http.MethodPost)
	r.Handle("/return", h.authenticate(http.HandlerFunc(h.Return))).Methods(http.MethodPost)

	return r
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"message": message})
}
