package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "stockroom/docs"
	"stockroom/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/login", handlers.LoginHandler)

	r.Get("/items", handlers.SearchItemsHandler)
	r.Get("/items/{id}", handlers.GetItemByIDHandler)
	r.Get("/items/{id}/movements", handlers.GetItemMovementsHandler)
	r.Get("/summary", handlers.GetSummaryHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware, RequestLogMiddleware)
		r.Post("/items", handlers.CreateItemHandler)
		r.Put("/items/{id}", handlers.UpdateItemHandler)
		r.Delete("/items/{id}", handlers.DeleteItemHandler)
		r.Post("/items/{id}/quantity", handlers.AdjustQuantityHandler)
		r.Post("/items/import", handlers.ImportItemsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
