package usecase

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/google/uuid"
)

// ORDER USECASE

// PlaceOrderReq — запрос на оформление заказа.
type PlaceOrderReq struct {
	CustomerID string
	Products   []OrderProductReq
}

// OrderProductReq — одна запрошенная позиция: продукт и количество.
type OrderProductReq struct {
	ID       string
	Quantity int64
}

// OrderRes — DTO оформленного заказа для внешнего использования.
type OrderRes struct {
	ID         string
	CustomerID string
	Items      []OrderItemRes
	Total      int64
	CreatedAt  time.Time
}

// OrderItemRes — позиция заказа с зафиксированной ценой.
type OrderItemRes struct {
	ID        int64
	ProductID string
	Quantity  int64
	Price     int64
}

// GetProductsReq запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []string
}

// GetProductsRes — ответ с данными запрошенных продуктов.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []string
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	ID       string
	Name     string
	Price    int64
	Quantity int64
}

// REPOSITORIES

// ProductQuantityUpdate — новый остаток продукта после списания.
type ProductQuantityUpdate struct {
	ID       string
	Quantity int64
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderPlaced OutboxEventType = "order_placed"
)

// OutboxEvent — запись transactional outbox, публикуемая воркером в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedPayload — JSON-содержимое события order_placed.
type OrderPlacedPayload struct {
	EventID    string             `json:"event_id"`
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id"`
	Total      int64              `json:"total"`
	Items      []OrderItemPayload `json:"items"`
	PlacedAt   int64              `json:"placed_at"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// MAPPERS

func NewPlaceOrderReq(customerID string, products []OrderProductReq) *PlaceOrderReq {
	return &PlaceOrderReq{
		CustomerID: customerID,
		Products:   products,
	}
}

func NewOrderProductReq(id string, quantity int64) OrderProductReq {
	return OrderProductReq{
		ID:       id,
		Quantity: quantity,
	}
}

func NewOrderRes(order *domain.Order) *OrderRes {
	items := make([]OrderItemRes, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, NewOrderItemRes(item))
	}

	return &OrderRes{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Items:      items,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt,
	}
}

func NewOrderItemRes(item domain.OrderItem) OrderItemRes {
	return OrderItemRes{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}

func NewGetProductsReq(ids []string) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []string) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewProductInfo(id string, name string, price int64, quantity int64) ProductInfo {
	return ProductInfo{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}

func NewProductQuantityUpdate(id string, quantity int64) ProductQuantityUpdate {
	return ProductQuantityUpdate{
		ID:       id,
		Quantity: quantity,
	}
}

// NewOrderPlacedEvent собирает запись outbox для оформленного заказа.
func NewOrderPlacedEvent(order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	items := make([]OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	payload, err := json.Marshal(OrderPlacedPayload{
		EventID:    eventID,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total(),
		Items:      items,
		PlacedAt:   time.Now().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: OrderPlaced,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}, nil
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
