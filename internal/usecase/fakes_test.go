package usecase_test

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entities.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email || existing.Mobile == user.Mobile {
			return nil, fmt.Errorf("%w: user already exists", repositories.ErrDuplicateKey)
		}
	}
	user.ID = primitive.NewObjectID()
	r.users[user.Username] = user
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

type fakeBookRepo struct {
	books map[primitive.ObjectID]*entities.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[primitive.ObjectID]*entities.Book{}}
}

func (r *fakeBookRepo) add(available bool) *entities.Book {
	book := entities.NewBook("Dune", "Herbert", "SF", available)
	book.ID = primitive.NewObjectID()
	r.books[book.ID] = book
	return book
}

func (r *fakeBookRepo) FindAll(_ context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	for _, book := range r.books {
		books = append(books, *book)
	}
	return books, nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entities.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *book
	return &clone, nil
}

func (r *fakeBookRepo) Create(_ context.Context, book *entities.Book) (*entities.Book, error) {
	book.ID = primitive.NewObjectID()
	r.books[book.ID] = book
	return book, nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *entities.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return repositories.ErrNotFound
	}
	clone := *book
	r.books[book.ID] = &clone
	return nil
}

func (r *fakeBookRepo) AcquireForBorrow(_ context.Context, id primitive.ObjectID) (*entities.Book, error) {
	book, ok := r.books[id]
	if !ok || !book.Available {
		return nil, repositories.ErrNotFound
	}
	book.Available = false
	clone := *book
	return &clone, nil
}

func (r *fakeBookRepo) SetAvailability(_ context.Context, id primitive.ObjectID, available bool) error {
	book, ok := r.books[id]
	if !ok {
		return repositories.ErrNotFound
	}
	book.Available = available
	return nil
}

type fakeLoanRepo struct {
	borrows map[primitive.ObjectID]*entities.BorrowRecord
	returns []*entities.ReturnRecord
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{borrows: map[primitive.ObjectID]*entities.BorrowRecord{}}
}

func (r *fakeLoanRepo) CreateBorrow(_ context.Context, record *entities.BorrowRecord) (*entities.BorrowRecord, error) {
	if _, ok := r.borrows[record.BookID]; ok {
		return nil, fmt.Errorf("%w: bookid", repositories.ErrDuplicateKey)
	}
	record.ID = primitive.NewObjectID()
	r.borrows[record.BookID] = record
	return record, nil
}

func (r *fakeLoanRepo) ConsumeBorrow(_ context.Context, bookID primitive.ObjectID, username string) (*entities.BorrowRecord, error) {
	record, ok := r.borrows[bookID]
	if !ok || record.Username != username {
		return nil, repositories.ErrNotFound
	}
	delete(r.borrows, bookID)
	return record, nil
}

func (r *fakeLoanRepo) CreateReturn(_ context.Context, record *entities.ReturnRecord) (*entities.ReturnRecord, error) {
	record.ID = primitive.NewObjectID()
	r.returns = append(r.returns, record)
	return record, nil
}
