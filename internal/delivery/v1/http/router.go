package http

import (
	_ "github.com/DRSN-tech/orders-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(orderUC usecase.OrderUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		orderHandler := NewOrderHandler(orderUC, r.logger)
		registerOrderRoutes(v1, orderHandler)

		prHandler := NewProductHandler(orderUC, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerOrderRoutes(router chi.Router, orderHandler *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", orderHandler.placeOrder)
		or.Get("/{orderID}", orderHandler.getOrder)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.getProducts)
	})
}
