package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Value errors.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// ErrorKind classifies order domain failures.
type ErrorKind string

const (
	KindCustomerNotFound     ErrorKind = "CUSTOMER_NOT_FOUND"
	KindRestaurantNotFound   ErrorKind = "RESTAURANT_NOT_FOUND"
	KindOrderNotFound        ErrorKind = "ORDER_NOT_FOUND"
	KindRestaurantNotActive  ErrorKind = "RESTAURANT_NOT_ACTIVE"
	KindEmptyItems           ErrorKind = "EMPTY_ITEMS"
	KindPriceMismatch        ErrorKind = "PRICE_MISMATCH"
	KindItemSubtotalMismatch ErrorKind = "ITEM_SUBTOTAL_MISMATCH"
	KindInvalidItemPrice     ErrorKind = "INVALID_ITEM_PRICE"
	KindInvalidOrderState    ErrorKind = "INVALID_ORDER_STATE"
)

// Error is an order domain failure with a stable, fully rendered message.
// Messages are part of the service contract: amounts are always rendered
// with two fractional digits and consumers display them verbatim.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func NewCustomerNotFoundError(id CustomerID) *Error {
	return newError(KindCustomerNotFound,
		"Could not find customer with customer id: %s.", id)
}

func NewRestaurantNotFoundError(id RestaurantID) *Error {
	return newError(KindRestaurantNotFound,
		"Could not find restaurant with restaurant id: %s.", id)
}

func NewOrderNotFoundError(id TrackingID) *Error {
	return newError(KindOrderNotFound,
		"Could not find order with tracking id: %s.", id)
}

func NewRestaurantNotActiveError(id RestaurantID) *Error {
	return newError(KindRestaurantNotActive,
		"Restaurant with id %s is currently not active.", id)
}

func NewEmptyItemsError() *Error {
	return newError(KindEmptyItems, "Order items must not be empty.")
}

func NewPriceMismatchError(claimed, computed Money) *Error {
	return newError(KindPriceMismatch,
		"Total price: %s is not equal to Order items total: %s.", claimed, computed)
}

func NewItemSubtotalMismatchError(item OrderItem) *Error {
	return newError(KindItemSubtotalMismatch,
		"Order item subtotal: %s is not valid for product %s.", item.SubTotal, item.ProductID)
}

func NewInvalidItemPriceError(item OrderItem) *Error {
	return newError(KindInvalidItemPrice,
		"Order item price: %s is not valid for product %s.", item.Price, item.ProductID)
}

func NewInvalidOrderStateError(operation string) *Error {
	return newError(KindInvalidOrderState,
		"Order is not in correct state for %s operation.", operation)
}
