package api

import "github.com/pressroomapp/pressroom-server/internal/service"

// Services groups all services used by HTTP handlers.
type Services struct {
	Book    *service.BookService
	Journal *service.JournalService
	Author  *service.AuthorService
	Asset   *service.AssetService
	Search  *service.SearchService
}
