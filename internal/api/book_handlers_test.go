package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/service"
)

// seedBooks inserts books directly through the store so tests can pin
// creation times without going through the rate-limited admin surface.
func seedBooks(t *testing.T, ts *testServer, count int, lang domain.Language, status domain.PublishStatus) {
	t.Helper()

	base := time.Now()
	for i := 0; i < count; i++ {
		book := &domain.Book{
			Record: domain.Record{
				ID:        fmt.Sprintf("book-%s-%02d", lang, i),
				CreatedAt: base.Add(-time.Duration(i) * time.Minute),
				UpdatedAt: base.Add(-time.Duration(i) * time.Minute),
			},
			Title:         fmt.Sprintf("Title %02d", i),
			Lang:          lang,
			PublishStatus: status,
		}
		require.NoError(t, ts.store.CreateBook(context.Background(), book))
	}
}

func decodeBookPage(t *testing.T, body []byte) service.ListResult[*dto.Book] {
	t.Helper()

	var page service.ListResult[*dto.Book]
	require.NoError(t, json.Unmarshal(body, &page))
	return page
}

func TestListBooks_Pagination(t *testing.T) {
	ts := setupTestServer(t)
	seedBooks(t, ts, 14, domain.LanguageTamil, domain.StatusPublished)

	resp := ts.api.Get("/api/v1/books?page=1&limit=10")
	require.Equal(t, http.StatusOK, resp.Code)

	page1 := decodeBookPage(t, resp.Body.Bytes())
	assert.Len(t, page1.Items, 10)
	assert.True(t, page1.HasMore)

	resp = ts.api.Get("/api/v1/books?page=2&limit=10")
	require.Equal(t, http.StatusOK, resp.Code)

	page2 := decodeBookPage(t, resp.Body.Bytes())
	assert.Len(t, page2.Items, 4)
	assert.False(t, page2.HasMore)

	// Walking off the end is an empty page, not an error.
	resp = ts.api.Get("/api/v1/books?page=9&limit=10")
	require.Equal(t, http.StatusOK, resp.Code)

	page9 := decodeBookPage(t, resp.Body.Bytes())
	assert.Empty(t, page9.Items)
	assert.False(t, page9.HasMore)
}

func TestListBooks_LangFilter(t *testing.T) {
	ts := setupTestServer(t)
	seedBooks(t, ts, 3, domain.LanguageTamil, domain.StatusPublished)
	seedBooks(t, ts, 2, domain.LanguageEnglish, domain.StatusPublished)

	resp := ts.api.Get("/api/v1/books?lang=en")
	require.Equal(t, http.StatusOK, resp.Code)

	page := decodeBookPage(t, resp.Body.Bytes())
	assert.Len(t, page.Items, 2)
	for _, b := range page.Items {
		assert.Equal(t, domain.LanguageEnglish, b.Lang)
	}

	// Unknown language codes are rejected at the edge.
	resp = ts.api.Get("/api/v1/books?lang=fr")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestListBooks_HidesDrafts(t *testing.T) {
	ts := setupTestServer(t)
	seedBooks(t, ts, 2, domain.LanguageTamil, domain.StatusPublished)
	seedBooks(t, ts, 3, domain.LanguageEnglish, domain.StatusDraft)

	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeBookPage(t, resp.Body.Bytes()).Items, 2)

	// The admin listing sees everything.
	resp = ts.api.Get("/api/v1/admin/books", adminAuth)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeBookPage(t, resp.Body.Bytes()).Items, 5)
}

func TestGetBook_DraftIsNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/admin/books", adminAuth, map[string]any{
		"title": "Unfinished Manuscript",
		"lang":  "ta",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	bookID := extractID(t, resp.Body.Bytes())

	// Drafts are invisible on the public surface, indistinguishable
	// from records that never existed.
	resp = ts.api.Get("/api/v1/books/" + bookID)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.api.Get("/api/v1/admin/books/"+bookID, adminAuth)
	assert.Equal(t, http.StatusOK, resp.Code)

	// Publishing makes it visible.
	resp = ts.api.Patch("/api/v1/admin/books/"+bookID, adminAuth, map[string]any{
		"publish_status": "published",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/books/" + bookID)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestCreateBook_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	body := map[string]any{"title": "No Credentials", "lang": "en"}

	resp := ts.api.Post("/api/v1/admin/books", body)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Post("/api/v1/admin/books", "Authorization: Bearer wrong-token", body)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Post("/api/v1/admin/books", "Authorization: Basic dXNlcjpwYXNz", body)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateBook_Validation(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/admin/books", adminAuth, map[string]any{
		"title": "",
		"lang":  "ta",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.api.Post("/api/v1/admin/books", adminAuth, map[string]any{
		"title":     "Ghost Writer",
		"lang":      "ta",
		"author_id": "author-missing",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "author does not exist")
}

func TestUpdateBook_PatchMerge(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/admin/books", adminAuth, map[string]any{
		"title":       "First Edition",
		"lang":        "ta",
		"description": "The original run.",
		"amazon_link": "https://example.com/first",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	bookID := extractID(t, resp.Body.Bytes())

	// Only the title changes; the rest of the record is untouched.
	resp = ts.api.Patch("/api/v1/admin/books/"+bookID, adminAuth, map[string]any{
		"title": "Second Edition",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var book dto.Book
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &book))
	assert.Equal(t, "Second Edition", book.Title)
	assert.Equal(t, "The original run.", book.Description)
	assert.Equal(t, "https://example.com/first", book.AmazonLink)

	// An explicit empty string clears clearable fields.
	resp = ts.api.Patch("/api/v1/admin/books/"+bookID, adminAuth, map[string]any{
		"amazon_link": "",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	book = dto.Book{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &book))
	assert.Empty(t, book.AmazonLink)

	resp = ts.api.Patch("/api/v1/admin/books/missing-id", adminAuth, map[string]any{
		"title": "Whatever",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteBook_Idempotent(t *testing.T) {
	ts := setupTestServer(t)
	bookID := ts.createBook(t, "Short-Lived", "en")

	resp := ts.api.Delete("/api/v1/admin/books/"+bookID, adminAuth)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/books/" + bookID)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// Deleting again still succeeds.
	resp = ts.api.Delete("/api/v1/admin/books/"+bookID, adminAuth)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestCreateBook_AuthorEnrichment(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/admin/authors", adminAuth, map[string]any{
		"name":           "Kalki",
		"publish_status": "published",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	authorID := extractID(t, resp.Body.Bytes())

	resp = ts.api.Post("/api/v1/admin/books", adminAuth, map[string]any{
		"title":          "Ponniyin Selvan",
		"lang":           "ta",
		"author_id":      authorID,
		"publish_status": "published",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var book dto.Book
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &book))
	require.NotNil(t, book.Author)
	assert.Equal(t, authorID, book.Author.ID)
	assert.Equal(t, "Kalki", book.Author.Name)
}
