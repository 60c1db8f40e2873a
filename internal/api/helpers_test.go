package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/pressroomapp/pressroom-server/internal/assets"
	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/search"
	"github.com/pressroomapp/pressroom-server/internal/service"
	"github.com/pressroomapp/pressroom-server/internal/store"
)

const testAdminToken = "test-admin-token"

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api humatest.TestAPI
}

// adminAuth is an Authorization header value accepted by requireAdmin.
const adminAuth = "Authorization: Bearer " + testAdminToken

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})

	storage, err := assets.NewStorage(t.TempDir())
	require.NoError(t, err)

	index, err := search.NewIndex(search.Options{
		DataPath: t.TempDir(),
		Logger:   logger,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, index.Close())
	})

	assetService := service.NewAssetService(st, storage, "/api/v1/assets", logger)
	enricher := dto.NewEnricher(st, assetService)
	searchService := service.NewSearchService(index, st, logger)
	st.SetSearchIndexer(searchService)

	services := &Services{
		Book:    service.NewBookService(st, enricher, logger),
		Journal: service.NewJournalService(st, enricher, logger),
		Author:  service.NewAuthorService(st, enricher, logger),
		Asset:   assetService,
		Search:  searchService,
	}

	s := NewServer(Options{
		Store:      st,
		Services:   services,
		AdminToken: testAdminToken,
		Logger:     logger,
	})
	t.Cleanup(func() {
		s.writeLimiter.Stop()
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

// createBook creates a published book through the admin API and returns
// its ID.
func (ts *testServer) createBook(t *testing.T, title, lang string) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/admin/books", adminAuth, map[string]any{
		"title":          title,
		"lang":           lang,
		"publish_status": "published",
	})
	require.Equal(t, 200, resp.Code, "create book failed: %s", resp.Body.String())

	return extractID(t, resp.Body.Bytes())
}

// extractID pulls the record ID out of a JSON response body.
func extractID(t *testing.T, body []byte) string {
	t.Helper()

	var payload struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NotEmpty(t, payload.ID)
	return payload.ID
}

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 30), B: 90, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
