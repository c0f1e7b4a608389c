package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BorrowPeriod is how long a borrower may keep a book before the due date.
const BorrowPeriod = 15 * 24 * time.Hour

// BorrowRecord is the record of an active, unreturned loan. It is consumed
// (deleted) when the book comes back; the unique index on bookid guarantees
// at most one active loan per book.
type BorrowRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	BookID    primitive.ObjectID `json:"bookid" bson:"bookid"`
	DueDate   time.Time          `json:"duedate" bson:"duedate"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func NewBorrowRecord(username string, bookID primitive.ObjectID) *BorrowRecord {
	now := time.Now()
	return &BorrowRecord{
		Username:  username,
		BookID:    bookID,
		DueDate:   now.Add(BorrowPeriod),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReturnRecord is the append-only trace of a completed loan. The due date is
// carried over from the borrow record it closes; the fine is caller-supplied.
type ReturnRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	BookID    primitive.ObjectID `json:"bookid" bson:"bookid"`
	DueDate   time.Time          `json:"duedate" bson:"duedate"`
	Fine      float64            `json:"fine" bson:"fine"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func NewReturnRecord(borrow *BorrowRecord, fine float64) *ReturnRecord {
	now := time.Now()
	return &ReturnRecord{
		Username:  borrow.Username,
		BookID:    borrow.BookID,
		DueDate:   borrow.DueDate,
		Fine:      fine,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
