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

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
// Учётные записи создаёт внешний сервис, здесь только чтение.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{
		pool: pool,
		conv: conv,
	}
}

// FindByID возвращает покупателя по идентификатору или (nil, nil), если он не найден.
// Читает через транзакцию запроса, чтобы проверка и оформление шли одним снимком.
func (c *CustomerRepo) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, email, created_at, updated_at, is_archived
		FROM customers
		WHERE id = $1
	`

	var model converter.CustomerModel
	err = tx.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Email,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
