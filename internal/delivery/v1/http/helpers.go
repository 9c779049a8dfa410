package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest — JSON-тело запроса на оформление заказа.
type PlaceOrderRequest struct {
	CustomerID string                `json:"customer_id"`
	Products   []OrderProductRequest `json:"products"`
}

type OrderProductRequest struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// OrderResponse — JSON-представление оформленного заказа.
// Цены отдаются строками в рублях с двумя знаками после запятой.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []OrderItemResponse `json:"items"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	ID        int64  `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`
}

type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

type ProductsResponse struct {
	Products         []ProductResponse `json:"products"`
	NotFoundProducts []string          `json:"not_found_products,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrCustomerNotFound),
		errors.Is(err, e.ErrNoProductsFound),
		errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	case errors.Is(err, e.ErrInvalidJSONBody),
		errors.Is(err, e.ErrCustomerIDRequired),
		errors.Is(err, e.ErrNoOrderProducts),
		errors.Is(err, e.ErrQuantityMustBePositive),
		errors.Is(err, e.ErrDuplicateOrderProduct),
		errors.Is(err, e.ErrNoProducts),
		errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrOrderPersistenceFailed):
		return http.StatusInternalServerError, e.ErrOrderPersistenceFailed.Error()
	case errors.Is(err, e.ErrStockUpdateFailed):
		return http.StatusInternalServerError, e.ErrStockUpdateFailed.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePlaceOrderRequest читает и разбирает JSON-тело запроса на оформление заказа.
// Проверки содержимого (пустой список, количества) выполняет usecase.
func parsePlaceOrderRequest(r *http.Request) (*usecase.PlaceOrderReq, error) {
	var body PlaceOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&body); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrInvalidJSONBody)
	}

	products := make([]usecase.OrderProductReq, 0, len(body.Products))
	for _, pr := range body.Products {
		products = append(products, usecase.NewOrderProductReq(pr.ID, pr.Quantity))
	}

	return usecase.NewPlaceOrderReq(body.CustomerID, products), nil
}

// parseIDsParam разбирает query-параметр ids: список идентификаторов через запятую.
func parseIDsParam(r *http.Request) []string {
	raw := r.URL.Query().Get("ids")

	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// formatCents переводит цену из копеек в строку вида "599.99".
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func toOrderResponse(res *usecase.OrderRes) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     formatCents(item.Price),
		})
	}

	return &OrderResponse{
		ID:         res.ID,
		CustomerID: res.CustomerID,
		Items:      items,
		Total:      formatCents(res.Total),
		CreatedAt:  res.CreatedAt,
	}
}

func toProductsResponse(res *usecase.GetProductsRes) *ProductsResponse {
	products := make([]ProductResponse, 0, len(res.Products))
	for _, pr := range res.Products {
		products = append(products, ProductResponse{
			ID:       pr.ID,
			Name:     pr.Name,
			Price:    formatCents(pr.Price),
			Quantity: pr.Quantity,
		})
	}

	return &ProductsResponse{
		Products:         products,
		NotFoundProducts: res.NotFoundProducts,
	}
}
