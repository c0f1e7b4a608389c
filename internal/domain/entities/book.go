package entities

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Author    string             `json:"author" bson:"author"`
	Genre     string             `json:"genre" bson:"genre"`
	Available bool               `json:"available" bson:"available"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func NewBook(name, author, genre string, available bool) *Book {
	now := time.Now()
	return &Book{
		Name:      name,
		Author:    author,
		Genre:     genre,
		Available: available,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Book) Validate() error {
	if b.Name == "" || b.Author == "" || b.Genre == "" {
		return errors.New("all fields are required")
	}
	return nil
}
