package http

import (
	"net/http"

	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/logger"
)

type ProductHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewProductHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{orderUsecase: orderUsecase, logger: logger}
}

// getProducts
//
//	@Summary		Информация о продуктах
//	@Description	Возвращает название, цену и остаток продуктов по их идентификаторам
//	@Tags			products
//	@Produce		json
//	@Param			ids	query		string				true	"Идентификаторы продуктов через запятую"
//	@Success		200	{object}	ProductsResponse	"Продукты"
//	@Failure		400	{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/products [get]
func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	ids := parseIDsParam(r)

	products, err := p.orderUsecase.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(ids))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}
