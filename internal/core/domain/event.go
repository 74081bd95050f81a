package domain

import "time"

// OrderCreatedEvent is emitted after a new order is persisted in PENDING
// state. Downstream sagas (payment, approval) consume it; this service
// only publishes.
type OrderCreatedEvent struct {
	Order     *Order
	CreatedAt time.Time
}
