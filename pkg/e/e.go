package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки размещения заказа
	ErrCustomerNotFound       = fmt.Errorf("customer does not exist")
	ErrNoProductsFound        = fmt.Errorf("no products found for these ids")
	ErrProductNotFound        = fmt.Errorf("product not found")
	ErrInsufficientStock      = fmt.Errorf("insufficient stock")
	ErrOrderPersistenceFailed = fmt.Errorf("failed to persist order")
	ErrStockUpdateFailed      = fmt.Errorf("failed to update stock")

	// Ошибки чтения
	ErrOrderNotFound = fmt.Errorf("order not found")
	ErrNoProducts    = fmt.Errorf("no product ids provided")

	// 400 Bad Request
	ErrStatusBadRequest       = fmt.Errorf("bad request")
	ErrInvalidJSONBody        = fmt.Errorf("invalid json body")
	ErrCustomerIDRequired     = fmt.Errorf("customer id is required")
	ErrNoOrderProducts        = fmt.Errorf("order must contain at least one product")
	ErrQuantityMustBePositive = fmt.Errorf("quantity must be positive")
	ErrDuplicateOrderProduct  = fmt.Errorf("duplicate product in order")
	ErrIncorrectEnvVariable   = fmt.Errorf("incorrect env variable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
