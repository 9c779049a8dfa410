package domain

import "time"

// Order описывает заказ покупателя.
// Создаётся один раз при оформлении и после этого не изменяется.
type Order struct {
	ID         string
	CustomerID string
	Items      []OrderItem
	CreatedAt  time.Time
}

// OrderItem — позиция заказа. Цена фиксируется в момент оформления
// и не зависит от последующих изменений цены продукта.
type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID string
	Quantity  int64
	Price     int64 // Цена за единицу в копейках на момент оформления
	CreatedAt time.Time
}

func NewOrder(customerID string, items []OrderItem) *Order {
	return &Order{
		CustomerID: customerID,
		Items:      items,
	}
}

func NewOrderItem(productID string, quantity int64, price int64) *OrderItem {
	return &OrderItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
}

// Total возвращает суммарную стоимость заказа в копейках.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * item.Quantity
	}

	return total
}

// ProductIDs возвращает идентификаторы продуктов заказа в порядке позиций.
func (o *Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}
