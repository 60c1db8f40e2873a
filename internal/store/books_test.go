package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// Helper function to create a test book
func createTestBook(id string) *domain.Book {
	now := time.Now()
	mrp, offer := 500.0, 400.0
	return &domain.Book{
		Record: domain.Record{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         "Test Book",
		Description:   "A test book description",
		Lang:          domain.LanguageTamil,
		MRPPrice:      &mrp,
		OfferPrice:    &offer,
		PublishStatus: domain.StatusPublished,
	}
}

// TestCreateBook tests creating a new book
func TestCreateBook(t *testing.T) {
	store := setupTestStore(t)

	ctx := context.Background()
	book := createTestBook("book-001")

	err := store.CreateBook(ctx, book)
	require.NoError(t, err)

	// Verify book was created
	retrieved, err := store.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, retrieved.ID)
	assert.Equal(t, book.Title, retrieved.Title)
	assert.Equal(t, book.Lang, retrieved.Lang)
	require.NotNil(t, retrieved.MRPPrice)
	assert.Equal(t, 500.0, *retrieved.MRPPrice)
}

// TestCreateBook_Duplicate tests that creating a duplicate book returns an error
func TestCreateBook_Duplicate(t *testing.T) {
	store := setupTestStore(t)

	ctx := context.Background()
	book := createTestBook("book-001")

	err := store.CreateBook(ctx, book)
	require.NoError(t, err)

	err = store.CreateBook(ctx, book)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

// TestCreateBook_MissingID tests that a book without an ID is rejected
func TestCreateBook_MissingID(t *testing.T) {
	store := setupTestStore(t)

	book := createTestBook("")
	err := store.CreateBook(context.Background(), book)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestGetBook_NotFound tests retrieving a nonexistent book
func TestGetBook_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetBook(context.Background(), "book-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestUpdateBook tests replacing a stored book
func TestUpdateBook(t *testing.T) {
	store := setupTestStore(t)

	ctx := context.Background()
	book := createTestBook("book-001")
	require.NoError(t, store.CreateBook(ctx, book))

	before := book.UpdatedAt
	book.Title = "Updated Title"
	require.NoError(t, store.UpdateBook(ctx, book))

	retrieved, err := store.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", retrieved.Title)
	assert.True(t, retrieved.UpdatedAt.After(before) || retrieved.UpdatedAt.Equal(before))
}

// TestUpdateBook_NotFound tests updating a nonexistent book
func TestUpdateBook_NotFound(t *testing.T) {
	store := setupTestStore(t)

	book := createTestBook("book-missing")
	err := store.UpdateBook(context.Background(), book)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestDeleteBook tests deletion and its idempotency
func TestDeleteBook(t *testing.T) {
	store := setupTestStore(t)

	ctx := context.Background()
	book := createTestBook("book-001")
	require.NoError(t, store.CreateBook(ctx, book))

	require.NoError(t, store.DeleteBook(ctx, book.ID))

	_, err := store.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error
	require.NoError(t, store.DeleteBook(ctx, book.ID))
}

// TestAllBooks tests listing every stored book
func TestAllBooks(t *testing.T) {
	store := setupTestStore(t)

	ctx := context.Background()
	for _, id := range []string{"book-001", "book-002", "book-003"} {
		require.NoError(t, store.CreateBook(ctx, createTestBook(id)))
	}

	books, err := store.AllBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}
