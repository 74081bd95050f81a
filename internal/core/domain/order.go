package domain

import "fmt"

type Address struct {
	Street     string
	PostalCode string
	City       string
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	ProductID ProductID
	Quantity  int
	Price     Money
	SubTotal  Money
}

// Order is the aggregate root of the order consistency boundary.
// It owns its item sequence exclusively and references customer and
// restaurant by identity only.
type Order struct {
	ID              OrderID
	CustomerID      CustomerID
	RestaurantID    RestaurantID
	DeliveryAddress Address
	Items           []OrderItem
	Price           Money
	TrackingID      TrackingID
	Status          OrderStatus
	FailureMessages []string
}

// InitiateOrder validates the order against the restaurant snapshot and,
// on success, assigns identity and moves the order to PENDING. Checks run
// in a fixed sequence and short-circuit on the first failure; no identity
// is assigned and no state is committed unless every check passes.
func (o *Order) InitiateOrder(restaurant *Restaurant) error {
	if len(o.Items) == 0 {
		return NewEmptyItemsError()
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	if err := o.validateItemsPrice(restaurant); err != nil {
		return err
	}
	// the activity gate runs last, after price checks
	if !restaurant.Active {
		return NewRestaurantNotActiveError(restaurant.ID)
	}

	o.ID = NewOrderID()
	o.TrackingID = NewTrackingID()
	o.Status = OrderStatusPending

	return nil
}

func (o *Order) validateTotalPrice() error {
	itemsTotal := ZeroMoney
	for _, item := range o.Items {
		total, err := itemsTotal.Add(item.SubTotal)
		if err != nil {
			return fmt.Errorf("order items total: %w", err)
		}
		itemsTotal = total
	}

	if !o.Price.Equal(itemsTotal) {
		return NewPriceMismatchError(o.Price, itemsTotal)
	}

	return nil
}

func (o *Order) validateItemsPrice(restaurant *Restaurant) error {
	for _, item := range o.Items {
		expected, err := item.Price.Multiply(item.Quantity)
		if err != nil {
			return fmt.Errorf("order item subtotal: %w", err)
		}
		if !item.SubTotal.Equal(expected) {
			return NewItemSubtotalMismatchError(item)
		}

		product, ok := restaurant.FindProduct(item.ProductID)
		if !ok || !item.Price.Equal(product.Price) {
			return NewInvalidItemPriceError(item)
		}
	}

	return nil
}

// Pay moves a pending order to PAID.
func (o *Order) Pay() error {
	if o.Status != OrderStatusPending {
		return NewInvalidOrderStateError("pay")
	}
	o.Status = OrderStatusPaid
	return nil
}

// Approve moves a paid order to APPROVED.
func (o *Order) Approve() error {
	if o.Status != OrderStatusPaid {
		return NewInvalidOrderStateError("approve")
	}
	o.Status = OrderStatusApproved
	return nil
}

// InitCancel starts compensation for a paid order.
func (o *Order) InitCancel(failureMessages []string) error {
	if o.Status != OrderStatusPaid {
		return NewInvalidOrderStateError("initCancel")
	}
	o.Status = OrderStatusCancelling
	o.updateFailureMessages(failureMessages)
	return nil
}

// Cancel terminates an order that is pending or already compensating.
func (o *Order) Cancel(failureMessages []string) error {
	if o.Status != OrderStatusPending && o.Status != OrderStatusCancelling {
		return NewInvalidOrderStateError("cancel")
	}
	o.Status = OrderStatusCancelled
	o.updateFailureMessages(failureMessages)
	return nil
}

func (o *Order) updateFailureMessages(failureMessages []string) {
	for _, m := range failureMessages {
		if m != "" {
			o.FailureMessages = append(o.FailureMessages, m)
		}
	}
}
