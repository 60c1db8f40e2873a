package search

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestIndex creates a temporary search index for testing.
func setupTestIndex(t *testing.T) *Index {
	t.Helper()

	index, err := NewIndex(Options{
		DataPath: t.TempDir(),
		Logger:   nil,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = index.Close()
	})

	return index
}

func TestNewIndex(t *testing.T) {
	index := setupTestIndex(t)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_IndexDocument(t *testing.T) {
	index := setupTestIndex(t)

	doc := &Document{
		ID:     "book-123",
		Type:   DocTypeBook,
		Name:   "Ponniyin Selvan",
		Lang:   "ta",
		Status: "published",
	}

	err := index.IndexDocument(doc)
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestIndex_IndexDocuments_Batch(t *testing.T) {
	index := setupTestIndex(t)

	docs := []*Document{
		{ID: "book-1", Type: DocTypeBook, Name: "Book One", Status: "published"},
		{ID: "book-2", Type: DocTypeBook, Name: "Book Two", Status: "published"},
		{ID: "book-3", Type: DocTypeBook, Name: "Book Three", Status: "draft"},
	}

	err := index.IndexDocuments(docs)
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestIndex_DeleteDocument(t *testing.T) {
	index := setupTestIndex(t)

	doc := &Document{
		ID:     "book-123",
		Type:   DocTypeBook,
		Name:   "Test Book",
		Status: "published",
	}

	err := index.IndexDocument(doc)
	require.NoError(t, err)

	err = index.DeleteDocument("book-123")
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_Search_Basic(t *testing.T) {
	index := setupTestIndex(t)

	docs := []*Document{
		{ID: "book-1", Type: DocTypeBook, Name: "River Stories", Description: "Tales of the Kaveri delta", Status: "published"},
		{ID: "book-2", Type: DocTypeBook, Name: "River Songs", Status: "published"},
		{ID: "author-1", Type: DocTypeAuthor, Name: "Mountain Poet", Status: "published"},
	}

	err := index.IndexDocuments(docs)
	require.NoError(t, err)

	ctx := context.Background()

	result, err := index.Search(ctx, Params{
		Query: "River",
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Total)
	assert.Len(t, result.Hits, 2)
}

func TestIndex_Search_ByType(t *testing.T) {
	index := setupTestIndex(t)

	docs := []*Document{
		{ID: "book-1", Type: DocTypeBook, Name: "Harvest", Status: "published"},
		{ID: "journal-1", Type: DocTypeJournal, Name: "Harvest Quarterly", Year: 2024, Status: "published"},
		{ID: "author-1", Type: DocTypeAuthor, Name: "Harvest Writer", Status: "published"},
	}

	err := index.IndexDocuments(docs)
	require.NoError(t, err)

	ctx := context.Background()

	result, err := index.Search(ctx, Params{
		Query: "",
		Types: []string{string(DocTypeBook)},
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "book-1", result.Hits[0].ID)
}

func TestIndex_Search_LangFilter(t *testing.T) {
	index := setupTestIndex(t)

	docs := []*Document{
		{ID: "book-1", Type: DocTypeBook, Name: "Coastal Winds", Lang: "en", Status: "published"},
		{ID: "book-2", Type: DocTypeBook, Name: "Coastal Tides", Lang: "ta", Status: "published"},
	}

	err := index.IndexDocuments(docs)
	require.NoError(t, err)

	ctx := context.Background()

	result, err := index.Search(ctx, Params{
		Query: "Coastal",
		Lang:  "ta",
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "book-2", result.Hits[0].ID)
}

func TestIndex_Search_PublishedOnly(t *testing.T) {
	index := setupTestIndex(t)

	docs := []*Document{
		{ID: "book-1", Type: DocTypeBook, Name: "Monsoon Diary", Status: "published"},
		{ID: "book-2", Type: DocTypeBook, Name: "Monsoon Notebook", Status: "draft"},
	}

	err := index.IndexDocuments(docs)
	require.NoError(t, err)

	ctx := context.Background()

	result, err := index.Search(ctx, Params{
		Query:         "Monsoon",
		PublishedOnly: true,
		Limit:         10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "book-1", result.Hits[0].ID)
}

func TestIndex_Search_Prefix(t *testing.T) {
	index := setupTestIndex(t)

	doc := &Document{
		ID:     "book-1",
		Type:   DocTypeBook,
		Name:   "Periyapuranam",
		Status: "published",
	}

	err := index.IndexDocument(doc)
	require.NoError(t, err)

	ctx := context.Background()

	result, err := index.Search(ctx, Params{
		Query: "Periya",
		Limit: 10,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Total, uint64(1))
}

func TestIndex_Rebuild(t *testing.T) {
	index := setupTestIndex(t)

	doc := &Document{ID: "book-1", Type: DocTypeBook, Name: "Test", Status: "published"}
	err := index.IndexDocument(doc)
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	// Rebuild should clear the index
	err = index.Rebuild()
	require.NoError(t, err)

	count, err = index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	index1, err := NewIndex(Options{DataPath: tmpDir})
	require.NoError(t, err)

	doc := &Document{ID: "book-1", Type: DocTypeBook, Name: "Test Book", Status: "published"}
	err = index1.IndexDocument(doc)
	require.NoError(t, err)

	err = index1.Close()
	require.NoError(t, err)

	// Reopen index and verify document is still there
	index2, err := NewIndex(Options{DataPath: tmpDir})
	require.NoError(t, err)
	defer index2.Close()

	count, err := index2.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	ctx := context.Background()
	result, err := index2.Search(ctx, Params{Query: "Test", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Total)
}

func TestIndex_MappingVersionRebuild(t *testing.T) {
	tmpDir := t.TempDir()

	index1, err := NewIndex(Options{DataPath: tmpDir})
	require.NoError(t, err)

	doc := &Document{ID: "book-1", Type: DocTypeBook, Name: "Test Book", Status: "published"}
	require.NoError(t, index1.IndexDocument(doc))
	require.NoError(t, index1.Close())

	// Simulate a mapping change by rewriting the version file
	err = os.WriteFile(tmpDir+"/search.version", []byte("0"), 0644)
	require.NoError(t, err)

	index2, err := NewIndex(Options{DataPath: tmpDir})
	require.NoError(t, err)
	defer index2.Close()

	// Stale mapping forces a fresh empty index
	count, err := index2.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestFromBook(t *testing.T) {
	now := time.Now()
	mrp := 500.0
	offer := 400.0
	book := &domain.Book{
		Record: domain.Record{
			ID:        "book-123",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         "The Great Book",
		Description:   "A wonderful tale",
		Lang:          domain.LanguageTamil,
		MRPPrice:      &mrp,
		OfferPrice:    &offer,
		PublishStatus: domain.StatusPublished,
	}

	doc := FromBook(book)

	assert.Equal(t, "book-123", doc.ID)
	assert.Equal(t, DocTypeBook, doc.Type)
	assert.Equal(t, "The Great Book", doc.Name)
	assert.Equal(t, "A wonderful tale", doc.Description)
	assert.Equal(t, "ta", doc.Lang)
	assert.Equal(t, "published", doc.Status)
	assert.Equal(t, now.UnixMilli(), doc.CreatedAt)
}

func TestFromJournal(t *testing.T) {
	journal := &domain.Journal{
		Record: domain.Record{
			ID: "journal-123",
		},
		Title:         "Spring Issue",
		Lang:          domain.LanguageEnglish,
		Month:         "April",
		Year:          2024,
		PublishStatus: domain.StatusDraft,
	}

	doc := FromJournal(journal)

	assert.Equal(t, "journal-123", doc.ID)
	assert.Equal(t, DocTypeJournal, doc.Type)
	assert.Equal(t, "Spring Issue", doc.Name)
	assert.Equal(t, "en", doc.Lang)
	assert.Equal(t, 2024, doc.Year)
	assert.Equal(t, "draft", doc.Status)
}

func TestFromAuthor(t *testing.T) {
	author := &domain.Author{
		Record: domain.Record{
			ID: "author-123",
		},
		Name:          "Famous Author",
		Bio:           "Writes about rivers",
		PublishStatus: domain.StatusPublished,
	}

	doc := FromAuthor(author)

	assert.Equal(t, "author-123", doc.ID)
	assert.Equal(t, DocTypeAuthor, doc.Type)
	assert.Equal(t, "Famous Author", doc.Name)
	assert.Equal(t, "Writes about rivers", doc.Description)
	assert.Empty(t, doc.Lang)
}
