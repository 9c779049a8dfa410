package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/orders-backend/internal/domain"
	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/DRSN-tech/orders-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует бизнес-логику оформления и чтения заказов.
type OrderUseCase struct {
	customerRepo CustomerRepository
	productRepo  ProductRepository
	orderRepo    OrderRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewOrderUC(
	customerRepo CustomerRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// PlaceOrder оформляет заказ: проверяет покупателя, продукты и остатки,
// сохраняет заказ с позициями и списывает остатки по каждому продукту.
// Заказ, позиции, новые остатки и событие outbox фиксируются одной транзакцией:
// при ошибке списания уже вставленный заказ откатывается вместе с ней.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*OrderRes, error) {
	const op = "OrderUseCase.PlaceOrder"

	// Валидация данных
	var err error
	if err = validatePlaceOrderReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Валидатор: покупатель, существование продуктов, достаточность остатков
	customer, snapshot, err := u.validateOrder(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сборка заказа: позиции с ценой из снимка, сохранение заказа
	order, err := u.createOrder(ctx, customer, req, snapshot)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Списание остатков по снимку валидации
	if err = u.adjustStock(ctx, order, snapshot); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Событие order_placed в outbox той же транзакцией
	if err = u.publishOrderPlaced(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Коммит изменений в бд
	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша устаревших данных затронутых продуктов
	if err := u.cacheRepo.DeleteProducts(ctx, order.ProductIDs()); err != nil {
		u.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return NewOrderRes(order), nil
}

// GetOrder возвращает оформленный заказ с позициями по идентификатору.
func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*OrderRes, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if order == nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %s", e.ErrOrderNotFound, orderID))
	}

	return NewOrderRes(order), nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам.
func (u *OrderUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "OrderUseCase.GetProductsInfo"

	// Валидация
	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	// Поиск продуктов в кэше
	cacheProductsMap, err := u.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []string
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	// Получение продуктов из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = u.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление продуктов в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := u.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				u.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[string]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	// Формирование результата в порядке запроса
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]string, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// validateOrder подтверждает существование покупателя и каждого продукта заказа
// и проверяет достаточность остатков. Возвращает снимок продуктов на момент
// проверки: из него далее берутся цены позиций и рассчитываются новые остатки,
// повторного чтения каталога в рамках запроса не происходит.
func (u *OrderUseCase) validateOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Customer, map[string]domain.Product, error) {
	customer, err := u.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, fmt.Errorf("%w: %s", e.ErrCustomerNotFound, req.CustomerID)
	}

	ids := make([]string, 0, len(req.Products))
	for _, pr := range req.Products {
		ids = append(ids, pr.ID)
	}

	products, err := u.productRepo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(products) == 0 {
		return nil, nil, e.ErrNoProductsFound
	}

	snapshot := make(map[string]domain.Product, len(products))
	for _, product := range products {
		snapshot[product.ID] = product
	}

	// Проверки идут в порядке позиций запроса:
	// в ошибку попадает первая проблемная позиция.
	for _, pr := range req.Products {
		if _, ok := snapshot[pr.ID]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", e.ErrProductNotFound, pr.ID)
		}
	}

	for _, pr := range req.Products {
		if pr.Quantity > snapshot[pr.ID].Quantity {
			return nil, nil, fmt.Errorf("%w: product %s, requested %d, available %d",
				e.ErrInsufficientStock, pr.ID, pr.Quantity, snapshot[pr.ID].Quantity)
		}
	}

	return customer, snapshot, nil
}

// createOrder собирает заказ с позициями по снимку цен и сохраняет его.
func (u *OrderUseCase) createOrder(ctx context.Context, customer *domain.Customer, req *PlaceOrderReq, snapshot map[string]domain.Product) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(req.Products))
	for _, pr := range req.Products {
		items = append(items, *domain.NewOrderItem(pr.ID, pr.Quantity, snapshot[pr.ID].Price))
	}

	order, err := u.orderRepo.Create(ctx, domain.NewOrder(customer.ID, items))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrOrderPersistenceFailed, err)
	}

	return order, nil
}

// adjustStock рассчитывает новые остатки из снимка валидации и применяет их
// одним массовым обновлением.
func (u *OrderUseCase) adjustStock(ctx context.Context, order *domain.Order, snapshot map[string]domain.Product) error {
	updates := make([]ProductQuantityUpdate, 0, len(order.Items))
	for _, item := range order.Items {
		updates = append(updates, NewProductQuantityUpdate(item.ProductID, snapshot[item.ProductID].Quantity-item.Quantity))
	}

	if err := u.productRepo.UpdateQuantities(ctx, updates); err != nil {
		return fmt.Errorf("%w: %v", e.ErrStockUpdateFailed, err)
	}

	return nil
}

// publishOrderPlaced кладёт событие оформления заказа в outbox.
func (u *OrderUseCase) publishOrderPlaced(ctx context.Context, order *domain.Order) error {
	event, err := NewOrderPlacedEvent(order)
	if err != nil {
		return err
	}

	if _, err := u.outboxRepo.Create(ctx, event); err != nil {
		return err
	}

	return nil
}

// validatePlaceOrderReq проверяет корректность входных данных запроса на оформление заказа.
func validatePlaceOrderReq(req *PlaceOrderReq) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return e.ErrCustomerIDRequired
	}

	if len(req.Products) == 0 {
		return e.ErrNoOrderProducts
	}

	seen := make(map[string]struct{}, len(req.Products))
	for _, pr := range req.Products {
		if pr.Quantity <= 0 {
			return fmt.Errorf("%w: product %s", e.ErrQuantityMustBePositive, pr.ID)
		}
		if _, ok := seen[pr.ID]; ok {
			return fmt.Errorf("%w: %s", e.ErrDuplicateOrderProduct, pr.ID)
		}
		seen[pr.ID] = struct{}{}
	}

	return nil
}
