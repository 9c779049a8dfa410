//go:generate goverter gen github.com/DRSN-tech/orders-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/DRSN-tech/orders-backend/internal/usecase"
)

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CustomerConverter interface {
	ToModel(entity *domain.Customer) *CustomerModel
	ToEntity(model *CustomerModel) *domain.Customer
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// Позиции заказа хранятся отдельной таблицей и присоединяются репозиторием.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	// goverter:ignore Items
	ToEntity(model *OrderModel) *domain.Order
}

// OrderItemConverter преобразует позиции заказа между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type OrderItemConverter interface {
	ToModel(entity *domain.OrderItem) *OrderItemModel
	ToEntity(model *OrderItemModel) *domain.OrderItem
	ToArrEntity(models []OrderItemModel) []domain.OrderItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
