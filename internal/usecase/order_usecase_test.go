package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === Фейки ===

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

type fakeDB struct {
	tx     *fakeTx
	called bool
}

func (d *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	d.called = true
	d.tx = &fakeTx{}
	return d.tx, nil
}

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	err       error
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.customers[id], nil
}

type fakeProductRepo struct {
	products  map[string]domain.Product
	findErr   error
	updateErr error
	infoErr   error
	updates   []usecase.ProductQuantityUpdate
}

func (r *fakeProductRepo) FindAllByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	found := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if pr, ok := r.products[id]; ok {
			found = append(found, pr)
		}
	}
	return found, nil
}

func (r *fakeProductRepo) UpdateQuantities(ctx context.Context, updates []usecase.ProductQuantityUpdate) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = updates
	return nil
}

func (r *fakeProductRepo) GetProductsInfo(ctx context.Context, ids []string) ([]usecase.ProductInfo, error) {
	if r.infoErr != nil {
		return nil, r.infoErr
	}
	infos := make([]usecase.ProductInfo, 0, len(ids))
	for _, id := range ids {
		if pr, ok := r.products[id]; ok {
			infos = append(infos, usecase.NewProductInfo(pr.ID, pr.Name, pr.Price, pr.Quantity))
		}
	}
	return infos, nil
}

type fakeOrderRepo struct {
	orders    map[string]*domain.Order
	created   *domain.Order
	createErr error
	getErr    error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	order.ID = "order-1"
	for i := range order.Items {
		order.Items[i].ID = int64(i + 1)
		order.Items[i].OrderID = order.ID
	}
	r.created = order
	return order, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.orders[id], nil
}

type fakeOutboxRepo struct {
	events    []*usecase.OutboxEvent
	createErr error
}

func (r *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

type fakeCacheRepo struct {
	mu       sync.Mutex
	products map[string]usecase.ProductInfo
	getErr   error
	setErr   error
	delErr   error
	deleted  [][]string
}

func (r *fakeCacheRepo) GetProducts(ctx context.Context, ids []string) (map[string]usecase.ProductInfo, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	found := make(map[string]usecase.ProductInfo)
	for _, id := range ids {
		if pr, ok := r.products[id]; ok {
			found[id] = pr
		}
	}
	return found, nil
}

func (r *fakeCacheRepo) SetProducts(ctx context.Context, products []usecase.ProductInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setErr
}

func (r *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.delErr != nil {
		return r.delErr
	}
	r.deleted = append(r.deleted, ids)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type fixture struct {
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	orders    *fakeOrderRepo
	outbox    *fakeOutboxRepo
	cache     *fakeCacheRepo
	db        *fakeDB
	uc        *usecase.OrderUseCase
}

func newFixture() *fixture {
	f := &fixture{
		customers: &fakeCustomerRepo{customers: map[string]*domain.Customer{
			"customer-1": {ID: "customer-1", Name: "Иван", Email: "ivan@example.com"},
		}},
		products: &fakeProductRepo{products: map[string]domain.Product{
			"product-1": {ID: "product-1", Name: "Клавиатура", Price: 1000, Quantity: 10},
			"product-2": {ID: "product-2", Name: "Мышь", Price: 2500, Quantity: 5},
		}},
		orders: &fakeOrderRepo{orders: map[string]*domain.Order{}},
		outbox: &fakeOutboxRepo{},
		cache:  &fakeCacheRepo{products: map[string]usecase.ProductInfo{}},
		db:     &fakeDB{},
	}

	f.uc = usecase.NewOrderUC(f.customers, f.products, f.orders, f.outbox, f.cache, f.db, noopLogger{})
	return f
}

func placeOrderReq(customerID string, products ...usecase.OrderProductReq) *usecase.PlaceOrderReq {
	return usecase.NewPlaceOrderReq(customerID, products)
}

// === PlaceOrder ===

func TestPlaceOrder_Success(t *testing.T) {
	f := newFixture()

	res, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("product-1", 3),
		usecase.NewOrderProductReq("product-2", 2),
	))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "order-1", res.ID)
	assert.Equal(t, "customer-1", res.CustomerID)
	require.Len(t, res.Items, 2)

	// Цены позиций зафиксированы из снимка на момент проверки
	assert.Equal(t, int64(1000), res.Items[0].Price)
	assert.Equal(t, int64(2500), res.Items[1].Price)
	assert.Equal(t, int64(3*1000+2*2500), res.Total)

	// Остатки списаны ровно на заказанное количество
	require.Equal(t, []usecase.ProductQuantityUpdate{
		{ID: "product-1", Quantity: 7},
		{ID: "product-2", Quantity: 3},
	}, f.products.updates)

	// Транзакция зафиксирована
	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.committed)
	assert.False(t, f.db.tx.rolledBack)

	// Событие order_placed положено в outbox той же транзакцией
	require.Len(t, f.outbox.events, 1)
	event := f.outbox.events[0]
	assert.Equal(t, usecase.OrderPlaced, event.EventType)
	assert.Equal(t, "order-1", event.OrderID)
	assert.Equal(t, usecase.Pending, event.Status)

	var payload usecase.OrderPlacedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "order-1", payload.OrderID)
	assert.Equal(t, "customer-1", payload.CustomerID)
	assert.Equal(t, res.Total, payload.Total)
	require.Len(t, payload.Items, 2)

	// Кэш затронутых продуктов инвалидирован
	require.Len(t, f.cache.deleted, 1)
	assert.Equal(t, []string{"product-1", "product-2"}, f.cache.deleted[0])
}

func TestPlaceOrder_CustomerNotFound(t *testing.T) {
	f := newFixture()

	res, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("unknown",
		usecase.NewOrderProductReq("product-1", 1),
	))
	require.ErrorIs(t, err, e.ErrCustomerNotFound)
	assert.ErrorContains(t, err, "unknown")
	assert.Nil(t, res)

	assert.Nil(t, f.orders.created)
	assert.Empty(t, f.products.updates)
	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.rolledBack)
	assert.False(t, f.db.tx.committed)
}

func TestPlaceOrder_NoProductsFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("ghost-1", 1),
		usecase.NewOrderProductReq("ghost-2", 1),
	))
	require.ErrorIs(t, err, e.ErrNoProductsFound)

	assert.Nil(t, f.orders.created)
	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.rolledBack)
}

func TestPlaceOrder_ProductNotFound_FirstMissingWins(t *testing.T) {
	f := newFixture()

	// Первым в ошибку попадает отсутствующий продукт,
	// стоящий раньше в списке позиций запроса
	_, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("product-1", 1),
		usecase.NewOrderProductReq("ghost-1", 1),
		usecase.NewOrderProductReq("ghost-2", 1),
	))
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.ErrorContains(t, err, "ghost-1")
	assert.NotContains(t, err.Error(), "ghost-2")
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	f := newFixture()

	// Обе позиции превышают остаток, в ошибке — первая из запроса
	_, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("product-2", 6),
		usecase.NewOrderProductReq("product-1", 100),
	))
	require.ErrorIs(t, err, e.ErrInsufficientStock)
	assert.ErrorContains(t, err, "product-2")
	assert.ErrorContains(t, err, "requested 6")
	assert.ErrorContains(t, err, "available 5")

	assert.Nil(t, f.orders.created)
	assert.Empty(t, f.products.updates)
	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.rolledBack)
}

func TestPlaceOrder_PersistenceFailure(t *testing.T) {
	f := newFixture()
	f.orders.createErr = assert.AnError

	_, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("product-1", 1),
	))
	require.ErrorIs(t, err, e.ErrOrderPersistenceFailed)

	// Остатки не трогаем, транзакция откатана
	assert.Empty(t, f.products.updates)
	assert.Empty(t, f.outbox.events)
	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.rolledBack)
	assert.False(t, f.db.tx.committed)
}

func TestPlaceOrder_StockUpdateFailure_NoOrphanOrder(t *testing.T) {
	f := newFixture()
	f.products.updateErr = assert.AnError

	_, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("product-1", 1),
	))
	require.ErrorIs(t, err, e.ErrStockUpdateFailed)

	// Вставка заказа откатывается вместе со сбоем списания:
	// заказа без списанных остатков в базе не остаётся
	require.NotNil(t, f.db.tx)
	assert.True(t, f.db.tx.rolledBack)
	assert.False(t, f.db.tx.committed)
	assert.Empty(t, f.outbox.events)
}

func TestPlaceOrder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *usecase.PlaceOrderReq
		wantErr error
	}{
		{
			name:    "пустой идентификатор покупателя",
			req:     placeOrderReq("  ", usecase.NewOrderProductReq("product-1", 1)),
			wantErr: e.ErrCustomerIDRequired,
		},
		{
			name:    "пустой список позиций",
			req:     placeOrderReq("customer-1"),
			wantErr: e.ErrNoOrderProducts,
		},
		{
			name:    "нулевое количество",
			req:     placeOrderReq("customer-1", usecase.NewOrderProductReq("product-1", 0)),
			wantErr: e.ErrQuantityMustBePositive,
		},
		{
			name:    "отрицательное количество",
			req:     placeOrderReq("customer-1", usecase.NewOrderProductReq("product-1", -2)),
			wantErr: e.ErrQuantityMustBePositive,
		},
		{
			name: "продукт повторяется в позициях",
			req: placeOrderReq("customer-1",
				usecase.NewOrderProductReq("product-1", 1),
				usecase.NewOrderProductReq("product-1", 2),
			),
			wantErr: e.ErrDuplicateOrderProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.uc.PlaceOrder(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)

			// До транзакции и репозиториев дело не доходит
			assert.False(t, f.db.called)
			assert.Nil(t, f.orders.created)
		})
	}
}

func TestPlaceOrder_CacheInvalidationFailureDoesNotFailOrder(t *testing.T) {
	f := newFixture()
	f.cache.delErr = assert.AnError

	res, err := f.uc.PlaceOrder(context.Background(), placeOrderReq("customer-1",
		usecase.NewOrderProductReq("product-1", 1),
	))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, f.db.tx.committed)
}

// === GetOrder ===

func TestGetOrder(t *testing.T) {
	f := newFixture()
	f.orders.orders["order-1"] = &domain.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Items: []domain.OrderItem{
			{ID: 1, OrderID: "order-1", ProductID: "product-1", Quantity: 2, Price: 1000},
		},
	}

	res, err := f.uc.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", res.ID)
	assert.Equal(t, int64(2000), res.Total)
	require.Len(t, res.Items, 1)
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newFixture()

	res, err := f.uc.GetOrder(context.Background(), "missing")
	require.ErrorIs(t, err, e.ErrOrderNotFound)
	assert.ErrorContains(t, err, "missing")
	assert.Nil(t, res)
}

// === GetProductsInfo ===

func TestGetProductsInfo_EmptyIDs(t *testing.T) {
	f := newFixture()

	_, err := f.uc.GetProductsInfo(context.Background(), usecase.NewGetProductsReq(nil))
	require.ErrorIs(t, err, e.ErrNoProducts)
}

func TestGetProductsInfo_MergesCacheAndDB(t *testing.T) {
	f := newFixture()
	f.cache.products["product-2"] = usecase.NewProductInfo("product-2", "Мышь", 2500, 5)

	res, err := f.uc.GetProductsInfo(context.Background(), usecase.NewGetProductsReq(
		[]string{"product-1", "product-2", "ghost-1"},
	))
	require.NoError(t, err)

	// Результат в порядке запроса: product-1 из БД, product-2 из кэша
	require.Len(t, res.Products, 2)
	assert.Equal(t, "product-1", res.Products[0].ID)
	assert.Equal(t, "product-2", res.Products[1].ID)
	assert.Equal(t, []string{"ghost-1"}, res.NotFoundProducts)
}

func TestGetProductsInfo_CacheFailureFallsBackToDB(t *testing.T) {
	f := newFixture()
	f.cache.getErr = assert.AnError

	res, err := f.uc.GetProductsInfo(context.Background(), usecase.NewGetProductsReq(
		[]string{"product-1", "product-2"},
	))
	require.NoError(t, err)
	require.Len(t, res.Products, 2)
	assert.Empty(t, res.NotFoundProducts)
}
