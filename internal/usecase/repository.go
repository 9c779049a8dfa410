package usecase

import (
	"context"

	"github.com/DRSN-tech/orders-backend/internal/domain"
)

type CustomerRepository interface {
	// FindByID возвращает (nil, nil), если покупатель не найден.
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

type ProductRepository interface {
	// FindAllByIDs возвращает только найденные продукты, пропуская неизвестные идентификаторы.
	FindAllByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	UpdateQuantities(ctx context.Context, updates []ProductQuantityUpdate) error
	GetProductsInfo(ctx context.Context, ids []string) ([]ProductInfo, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetByID возвращает (nil, nil), если заказ не найден.
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []string) error
}
