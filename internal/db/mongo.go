package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-service/internal/config"
)

// Connect dials MongoDB, verifies the connection and returns the database
// handle the repositories work against.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	log.Println("Connected to MongoDB")
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique indexes the business rules rely on:
// user identity fields, and at most one active borrow record per book.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := database.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "mobile", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("borrowrecords").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bookid", Value: 1}},
		Options: unique,
	})
	return err
}
