package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/DRSN-tech/orders-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/DRSN-tech/orders-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool     *pgxpool.Pool
	conv     converter.OrderConverter
	itemConv converter.OrderItemConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter, itemConv converter.OrderItemConverter) *OrderRepo {
	return &OrderRepo{
		pool:     pool,
		conv:     conv,
		itemConv: itemConv,
	}
}

// Create сохраняет заказ вместе со всеми позициями в транзакции запроса
// и возвращает заказ с присвоенными идентификаторами.
// Заказ и позиции становятся видимыми только вместе, при коммите транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO orders (customer_id)
		VALUES ($1)
		RETURNING id, customer_id, created_at;
	`

	var orderModel converter.OrderModel
	if err := tx.QueryRow(ctx, orderQuery, order.CustomerID).
		Scan(&orderModel.ID, &orderModel.CustomerID, &orderModel.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	itemModels := make([]converter.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		model := converter.OrderItemModel{
			OrderID:   orderModel.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}

		if err := tx.QueryRow(ctx, itemQuery, model.OrderID, model.ProductID, model.Quantity, model.Price).
			Scan(&model.ID, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		itemModels = append(itemModels, model)
	}

	created := o.conv.ToEntity(&orderModel)
	created.Items = o.itemConv.ToArrEntity(itemModels)

	return created, nil
}

// GetByID возвращает заказ с позициями или (nil, nil), если заказ не найден.
func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	orderQuery := `
		SELECT id, customer_id, created_at
		FROM orders
		WHERE id = $1
	`

	var orderModel converter.OrderModel
	err := o.pool.QueryRow(ctx, orderQuery, id).
		Scan(&orderModel.ID, &orderModel.CustomerID, &orderModel.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := o.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	itemModels := make([]converter.OrderItemModel, 0)
	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.ProductID,
			&model.Quantity, &model.Price, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		itemModels = append(itemModels, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&orderModel)
	order.Items = o.itemConv.ToArrEntity(itemModels)

	return order, nil
}
