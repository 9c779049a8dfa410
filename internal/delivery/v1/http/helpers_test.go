package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "покупатель не найден",
			err:      fmt.Errorf("%w: customer-1", e.ErrCustomerNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "customer does not exist: customer-1",
		},
		{
			name:     "продукт не найден",
			err:      fmt.Errorf("%w: product-1", e.ErrProductNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  e.ErrProductNotFound.Error() + ": product-1",
		},
		{
			name:     "ни один продукт не найден",
			err:      e.ErrNoProductsFound,
			wantCode: http.StatusNotFound,
			wantMsg:  e.ErrNoProductsFound.Error(),
		},
		{
			name:     "недостаточно остатков",
			err:      fmt.Errorf("%w: product product-1, requested 5, available 2", e.ErrInsufficientStock),
			wantCode: http.StatusConflict,
			wantMsg:  e.ErrInsufficientStock.Error() + ": product product-1, requested 5, available 2",
		},
		{
			name:     "ошибка валидации",
			err:      e.ErrCustomerIDRequired,
			wantCode: http.StatusBadRequest,
			wantMsg:  e.ErrCustomerIDRequired.Error(),
		},
		{
			name:     "сбой сохранения заказа не раскрывает внутренности",
			err:      fmt.Errorf("%w: pq: connection refused", e.ErrOrderPersistenceFailed),
			wantCode: http.StatusInternalServerError,
			wantMsg:  e.ErrOrderPersistenceFailed.Error(),
		},
		{
			name:     "сбой списания остатков не раскрывает внутренности",
			err:      fmt.Errorf("%w: pq: deadlock detected", e.ErrStockUpdateFailed),
			wantCode: http.StatusInternalServerError,
			wantMsg:  e.ErrStockUpdateFailed.Error(),
		},
		{
			name:     "неизвестная ошибка",
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
			wantMsg:  e.ErrInternalServerError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestParsePlaceOrderRequest(t *testing.T) {
	body := `{"customer_id":"customer-1","products":[{"id":"product-1","quantity":2},{"id":"product-2","quantity":1}]}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))

	req, err := parsePlaceOrderRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "customer-1", req.CustomerID)
	require.Len(t, req.Products, 2)
	assert.Equal(t, "product-1", req.Products[0].ID)
	assert.Equal(t, int64(2), req.Products[0].Quantity)
}

func TestParsePlaceOrderRequest_InvalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"customer_id":`))

	_, err := parsePlaceOrderRequest(r)
	require.ErrorIs(t, err, e.ErrInvalidJSONBody)
}

func TestParsePlaceOrderRequest_UnknownField(t *testing.T) {
	body := `{"customer_id":"customer-1","products":[],"coupon":"FREE"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))

	_, err := parsePlaceOrderRequest(r)
	require.ErrorIs(t, err, e.ErrInvalidJSONBody)
}

func TestParseIDsParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?ids=product-1,%20product-2,,product-3", nil)

	ids := parseIDsParam(r)
	assert.Equal(t, []string{"product-1", "product-2", "product-3"}, ids)
}

func TestParseIDsParam_Empty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)

	assert.Empty(t, parseIDsParam(r))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "59.99", formatCents(5999))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "1000.00", formatCents(100000))
}
