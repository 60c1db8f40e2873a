package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCatalogServer serves a canned book listing with real pagination
// semantics, so the client can be exercised against the actual wire shapes.
func newCatalogServer(t *testing.T, books []Book) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = 10
		}

		filtered := books
		if lang := r.URL.Query().Get("lang"); lang != "" {
			filtered = nil
			for _, b := range books {
				if b.Lang == lang {
					filtered = append(filtered, b)
				}
			}
		}

		offset := (page - 1) * limit
		items := []Book{}
		if offset < len(filtered) {
			end := min(offset+limit, len(filtered))
			items = filtered[offset:end]
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(Page[Book]{
			Items:   items,
			Page:    page,
			Limit:   limit,
			HasMore: len(items) == limit,
		})
		require.NoError(t, err)
	})
	mux.HandleFunc("GET /api/v1/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, b := range books {
			if b.ID == id {
				w.Header().Set("Content-Type", "application/json")
				require.NoError(t, json.NewEncoder(w).Encode(b))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":"NOT_FOUND","message":"Book not found"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testBooks(n int) []Book {
	books := make([]Book, n)
	for i := range books {
		lang := "en"
		if i%2 == 0 {
			lang = "ta"
		}
		books[i] = Book{
			ID:            fmt.Sprintf("book-%03d", i),
			Title:         fmt.Sprintf("Book %03d", i),
			Lang:          lang,
			PublishStatus: "published",
		}
	}
	return books
}

func TestClient_ListBooks(t *testing.T) {
	srv := newCatalogServer(t, testBooks(7))
	c := New(srv.URL)

	page, err := c.ListBooks(context.Background(), ListQuery{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.True(t, page.HasMore)
	assert.Equal(t, "Book 000", page.Items[0].Title)

	page, err = c.ListBooks(context.Background(), ListQuery{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.False(t, page.HasMore)
}

func TestClient_GetBook_NotFound(t *testing.T) {
	srv := newCatalogServer(t, testBooks(1))
	c := New(srv.URL)

	book, err := c.GetBook(context.Background(), "book-000")
	require.NoError(t, err)
	assert.Equal(t, "Book 000", book.Title)

	_, err = c.GetBook(context.Background(), "book-999")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "Book not found")
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.GetBook(context.Background(), "book-000")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestClient_AdminTokenHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[],"page":1,"limit":10,"has_more":false}`)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithAdminToken("secret-token"))
	_, err := c.ListBooks(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestBookPager_AgainstServer(t *testing.T) {
	// 9 Tamil and 5 English books; a Tamil pager at limit 9 fills page 1
	// exactly and needs the empty page 2 to learn the list ended.
	books := make([]Book, 0, 14)
	for i := range 9 {
		books = append(books, Book{ID: fmt.Sprintf("ta-%d", i), Title: fmt.Sprintf("Tamil %d", i), Lang: "ta"})
	}
	for i := range 5 {
		books = append(books, Book{ID: fmt.Sprintf("en-%d", i), Title: fmt.Sprintf("English %d", i), Lang: "en"})
	}
	srv := newCatalogServer(t, books)
	c := New(srv.URL)

	p := c.BookPager("ta", 9)
	require.NoError(t, p.Load(context.Background()))
	assert.Len(t, p.Items(), 9)
	assert.True(t, p.HasMore())
	for _, b := range p.Items() {
		assert.Equal(t, "ta", b.Lang)
	}

	require.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, p.Items(), 9)
	assert.False(t, p.HasMore())
}
