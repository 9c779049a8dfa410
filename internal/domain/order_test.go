package domain_test

import (
	"testing"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	order := domain.NewOrder("customer-1", []domain.OrderItem{
		*domain.NewOrderItem("product-1", 3, 1000),
		*domain.NewOrderItem("product-2", 2, 2500),
	})

	assert.Equal(t, int64(8000), order.Total())
}

func TestOrderTotal_Empty(t *testing.T) {
	order := domain.NewOrder("customer-1", nil)

	assert.Equal(t, int64(0), order.Total())
}

func TestOrderProductIDs_PreservesItemOrder(t *testing.T) {
	order := domain.NewOrder("customer-1", []domain.OrderItem{
		*domain.NewOrderItem("product-2", 1, 100),
		*domain.NewOrderItem("product-1", 1, 100),
	})

	assert.Equal(t, []string{"product-2", "product-1"}, order.ProductIDs())
}
