package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-service/internal/config"
	"library-service/internal/db"
	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	"library-service/internal/repository"
)

// These tests run against a real MongoDB and are skipped unless
// TEST_MONGO_URI is set, e.g. TEST_MONGO_URI=mongodb://localhost:27017.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	client, database, err := db.Connect(ctx, config.MongoConfig{
		URI:      uri,
		Database: fmt.Sprintf("library_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	require.NoError(t, db.EnsureIndexes(ctx, database))

	t.Cleanup(func() {
		_ = database.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return database
}

func TestUserRepoUniqueUsername(t *testing.T) {
	database := testDatabase(t)
	users := repository.NewUserRepo(database)
	ctx := context.Background()

	_, err := users.Create(ctx, entities.NewUser("Alice", "alice", "hash", "alice@example.com", "5550001", false))
	require.NoError(t, err)

	_, err = users.Create(ctx, entities.NewUser("Alice 2", "alice", "hash", "alice2@example.com", "5550002", false))
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestBookRepoAcquireForBorrowIsConditional(t *testing.T) {
	database := testDatabase(t)
	books := repository.NewBookRepo(database)
	ctx := context.Background()

	book, err := books.Create(ctx, entities.NewBook("Dune", "Herbert", "SF", true))
	require.NoError(t, err)

	acquired, err := books.AcquireForBorrow(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, acquired.Available)

	// Second acquire must miss: the flag is already down.
	_, err = books.AcquireForBorrow(ctx, book.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, books.SetAvailability(ctx, book.ID, true))
	reloaded, err := books.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Available)
}

func TestLoanRepoUniqueBorrowPerBook(t *testing.T) {
	database := testDatabase(t)
	loans := repository.NewLoanRepo(database)
	ctx := context.Background()
	bookID := primitive.NewObjectID()

	_, err := loans.CreateBorrow(ctx, entities.NewBorrowRecord("alice", bookID))
	require.NoError(t, err)

	_, err = loans.CreateBorrow(ctx, entities.NewBorrowRecord("bob", bookID))
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestLoanRepoConsumeBorrow(t *testing.T) {
	database := testDatabase(t)
	loans := repository.NewLoanRepo(database)
	ctx := context.Background()
	bookID := primitive.NewObjectID()

	created, err := loans.CreateBorrow(ctx, entities.NewBorrowRecord("alice", bookID))
	require.NoError(t, err)

	_, err = loans.ConsumeBorrow(ctx, bookID, "bob")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	record, err := loans.ConsumeBorrow(ctx, bookID, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, record.ID)

	_, err = loans.ConsumeBorrow(ctx, bookID, "alice")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
