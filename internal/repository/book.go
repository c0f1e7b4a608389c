package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

type BookRepo struct {
	collection *mongo.Collection
}

func NewBookRepo(database *mongo.Database) *BookRepo {
	return &BookRepo{
		collection: database.Collection("books"),
	}
}

func (r *BookRepo) FindAll(ctx context.Context) ([]entities.Book, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	books := []entities.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Book, error) {
	var book entities.Book
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *BookRepo) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	result, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return nil, err
	}

	book.ID = result.InsertedID.(primitive.ObjectID)
	return book, nil
}

func (r *BookRepo) Update(ctx context.Context, book *entities.Book) error {
	book.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": book.ID}, book)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// AcquireForBorrow is the compare-and-swap half of borrowing: the filter only
// matches an available book, so concurrent borrowers race on a single
// conditional write instead of a read-then-write pair.
func (r *BookRepo) AcquireForBorrow(ctx context.Context, id primitive.ObjectID) (*entities.Book, error) {
	var book entities.Book
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "available": true},
		bson.M{"$set": bson.M{"available": false, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *BookRepo) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"available": available, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
