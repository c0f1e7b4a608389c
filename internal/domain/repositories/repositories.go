package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-service/internal/domain/entities"
)

var (
	// ErrNotFound is returned when a document does not exist, or when a
	// conditional write matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

type BookRepository interface {
	FindAll(ctx context.Context) ([]entities.Book, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Book, error)
	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)
	Update(ctx context.Context, book *entities.Book) error

	// AcquireForBorrow atomically flips the availability flag from true to
	// false and returns the book. ErrNotFound covers both a missing book and
	// one that is already borrowed.
	AcquireForBorrow(ctx context.Context, id primitive.ObjectID) (*entities.Book, error)

	// SetAvailability unconditionally sets the availability flag.
	SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error
}

type LoanRepository interface {
	CreateBorrow(ctx context.Context, record *entities.BorrowRecord) (*entities.BorrowRecord, error)

	// ConsumeBorrow deletes the borrow record matching the book and borrower
	// and returns it, or ErrNotFound if no such loan exists.
	ConsumeBorrow(ctx context.Context, bookID primitive.ObjectID, username string) (*entities.BorrowRecord, error)

	CreateReturn(ctx context.Context, record *entities.ReturnRecord) (*entities.ReturnRecord, error)
}
