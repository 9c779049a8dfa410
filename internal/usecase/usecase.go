package usecase

import "context"

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*OrderRes, error)
	GetOrder(ctx context.Context, orderID string) (*OrderRes, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}
