package http

import (
	"net/http"

	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Проверяет покупателя, продукты и остатки, создает заказ и списывает остатки
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		PlaceOrderRequest	true	"Покупатель и позиции заказа"
//	@Success		201		{object}	OrderResponse		"Оформленный заказ"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse		"Покупатель или продукт не найден"
//	@Failure		409		{object}	ErrorResponse		"Недостаточно остатков"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	const maxBodySize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	req, err := parsePlaceOrderRequest(r)
	if err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.PlaceOrder(r.Context(), req)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// getOrder
//
//	@Summary		Получение заказа
//	@Description	Возвращает оформленный заказ с позициями по идентификатору
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		string			true	"Идентификатор заказа"
//	@Success		200		{object}	OrderResponse	"Заказ"
//	@Failure		404		{object}	ErrorResponse	"Заказ не найден"
//	@Router			/orders/{orderID} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := o.orderUsecase.GetOrder(r.Context(), orderID)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}
