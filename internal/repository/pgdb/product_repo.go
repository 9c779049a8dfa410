package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/DRSN-tech/orders-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/DRSN-tech/orders-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
// Каталог ведёт внешний сервис, здесь чтение и обновление остатков.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// FindAllByIDs возвращает продукты по идентификаторам, пропуская неизвестные.
// Читает через транзакцию запроса: результат служит снимком для цен и остатков.
func (p *ProductRepo) FindAllByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, price, quantity, created_at, updated_at, is_archived
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Price, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// UpdateQuantities массово применяет новые остатки продуктов одним запросом.
func (p *ProductRepo) UpdateQuantities(ctx context.Context, updates []usecase.ProductQuantityUpdate) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ids := make([]string, 0, len(updates))
	quantities := make([]int64, 0, len(updates))
	for _, update := range updates {
		ids = append(ids, update.ID)
		quantities = append(quantities, update.Quantity)
	}

	query := `
		UPDATE products AS p
		SET quantity = u.quantity, updated_at = NOW()
		FROM (SELECT UNNEST($1::text[]) AS id, UNNEST($2::bigint[]) AS quantity) AS u
		WHERE p.id = u.id
	`

	ct, err := tx.Exec(ctx, query, ids, quantities)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if ct.RowsAffected() != int64(len(updates)) {
		return e.Wrap(whereami.WhereAmI(),
			fmt.Errorf("updated %d of %d products", ct.RowsAffected(), len(updates)))
	}

	return nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []string) ([]usecase.ProductInfo, error) {
	query := `
		SELECT id, name, price, quantity
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
