package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	"library-service/internal/messaging"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookNotAvailable = errors.New("book not available")
	ErrNoBorrowRecord   = errors.New("no record of borrowed book found")
)

type CreateBookInput struct {
	Name      string `json:"name"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Available *bool  `json:"available"`
}

type UpdateBookInput struct {
	Name      string `json:"name"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Available *bool  `json:"available"`
}

type LibraryUsecase struct {
	books  repositories.BookRepository
	loans  repositories.LoanRepository
	events *messaging.Publisher
}

func NewLibraryUsecase(books repositories.BookRepository, loans repositories.LoanRepository, events *messaging.Publisher) *LibraryUsecase {
	return &LibraryUsecase{books: books, loans: loans, events: events}
}

func (uc *LibraryUsecase) ListBooks(ctx context.Context) ([]entities.Book, error) {
	return uc.books.FindAll(ctx)
}

func (uc *LibraryUsecase) CreateBook(ctx context.Context, in CreateBookInput) (*entities.Book, error) {
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	book := entities.NewBook(in.Name, in.Author, in.Genre, available)
	if err := book.Validate(); err != nil {
		return nil, ErrAllFieldsRequired
	}

	return uc.books.Create(ctx, book)
}

// UpdateBook applies a partial update: string fields replace only when
// non-empty, availability only when present in the request body.
func (uc *LibraryUsecase) UpdateBook(ctx context.Context, id primitive.ObjectID, in UpdateBookInput) (*entities.Book, error) {
	book, err := uc.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if in.Name != "" {
		book.Name = in.Name
	}
	if in.Author != "" {
		book.Author = in.Author
	}
	if in.Genre != "" {
		book.Genre = in.Genre
	}
	if in.Available != nil {
		book.Available = *in.Available
	}

	if err := uc.books.Update(ctx, book); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// Borrow flips the availability flag with a conditional write and then
// creates the borrow record. If the record insert loses the race on the
// unique bookid index, the flag is released again, so availability and
// record existence stay consistent without a multi-document transaction.
func (uc *LibraryUsecase) Borrow(ctx context.Context, username string, bookID primitive.ObjectID) error {
	_, err := uc.books.AcquireForBorrow(ctx, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookNotAvailable
		}
		return err
	}

	record, err := uc.loans.CreateBorrow(ctx, entities.NewBorrowRecord(username, bookID))
	if err != nil {
		if releaseErr := uc.books.SetAvailability(ctx, bookID, true); releaseErr != nil {
			log.Printf("failed to release book %s after borrow insert error: %v", bookID.Hex(), releaseErr)
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrBookNotAvailable
		}
		return err
	}

	uc.publish(messaging.SubjectBookBorrowed, messaging.LoanEvent{
		BookID:   bookID.Hex(),
		Username: username,
		DueDate:  record.DueDate,
		At:       time.Now(),
	})
	return nil
}

// Return consumes the borrow record, restores availability and writes the
// return record. The due date on the return record comes from the consumed
// borrow record.
func (uc *LibraryUsecase) Return(ctx context.Context, username string, bookID primitive.ObjectID, fine float64) (*entities.ReturnRecord, error) {
	borrow, err := uc.loans.ConsumeBorrow(ctx, bookID, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoBorrowRecord
		}
		return nil, err
	}

	// A book deleted while on loan is not an error for the borrower.
	if err := uc.books.SetAvailability(ctx, bookID, true); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("failed to restore availability of book %s: %v", bookID.Hex(), err)
	}

	record, err := uc.loans.CreateReturn(ctx, entities.NewReturnRecord(borrow, fine))
	if err != nil {
		return nil, err
	}

	uc.publish(messaging.SubjectBookReturned, messaging.LoanEvent{
		BookID:   bookID.Hex(),
		Username: username,
		DueDate:  record.DueDate,
		Fine:     fine,
		At:       time.Now(),
	})
	return record, nil
}

func (uc *LibraryUsecase) publish(subject string, event messaging.LoanEvent) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(subject, event); err != nil {
		log.Printf("failed to publish %s: %v", subject, err)
	}
}
