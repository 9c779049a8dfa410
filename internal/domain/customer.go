package domain

import "time"

// Customer описывает покупателя.
// Управление учётными записями выполняет внешний сервис,
// здесь покупатель только читается при оформлении заказа.
type Customer struct {
	ID         string
	Name       string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}
