package domain

import "time"

// Product описывает продукт каталога
type Product struct {
	ID         string
	Name       string
	Price      int64 // Цена хранится в копейках
	Quantity   int64 // Доступный остаток на складе
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewProduct(name string, price int64, quantity int64) *Product {
	return &Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}
