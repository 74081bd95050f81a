package port

import (
	"context"

	"github.com/rezvik/foodorder/internal/core/domain"
)

// CreateOrderCommand carries a creation request with the claimed total
// price and the submitted line items. It has no identity: order and
// tracking ids are assigned only after validation passes.
type CreateOrderCommand struct {
	CustomerID   domain.CustomerID
	RestaurantID domain.RestaurantID
	Address      domain.Address
	Price        domain.Money
	Items        []CreateOrderItem
}

type CreateOrderItem struct {
	ProductID domain.ProductID
	Quantity  int
	Price     domain.Money
	SubTotal  domain.Money
}

type CreateOrderResponse struct {
	OrderTrackingID domain.TrackingID
	OrderStatus     domain.OrderStatus
	Message         string
}

type TrackOrderResponse struct {
	OrderTrackingID domain.TrackingID
	OrderStatus     domain.OrderStatus
	FailureMessages []string
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, command *CreateOrderCommand) (*CreateOrderResponse, error)
	TrackOrder(ctx context.Context, trackingID domain.TrackingID) (*TrackOrderResponse, error)
}
