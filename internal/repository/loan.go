package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
)

type LoanRepo struct {
	borrows *mongo.Collection
	returns *mongo.Collection
}

func NewLoanRepo(database *mongo.Database) *LoanRepo {
	return &LoanRepo{
		borrows: database.Collection("borrowrecords"),
		returns: database.Collection("returns"),
	}
}

func (r *LoanRepo) CreateBorrow(ctx context.Context, record *entities.BorrowRecord) (*entities.BorrowRecord, error) {
	result, err := r.borrows.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", repositories.ErrDuplicateKey, err)
		}
		return nil, err
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return record, nil
}

func (r *LoanRepo) ConsumeBorrow(ctx context.Context, bookID primitive.ObjectID, username string) (*entities.BorrowRecord, error) {
	var record entities.BorrowRecord
	err := r.borrows.FindOneAndDelete(ctx, bson.M{
		"bookid":   bookID,
		"username": username,
	}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *LoanRepo) CreateReturn(ctx context.Context, record *entities.ReturnRecord) (*entities.ReturnRecord, error) {
	result, err := r.returns.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return record, nil
}
