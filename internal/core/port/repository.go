package port

import (
	"context"

	"github.com/rezvik/foodorder/internal/core/domain"
)

// RestaurantQuery keys the restaurant snapshot lookup: the restaurant id
// plus the distinct product ids referenced by the order being created.
type RestaurantQuery struct {
	RestaurantID domain.RestaurantID
	ProductIDs   []domain.ProductID
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type CustomerRepository interface {
	FindCustomer(ctx context.Context, id domain.CustomerID) (*domain.Customer, error)
}

type RestaurantRepository interface {
	FindRestaurantInformation(ctx context.Context, query RestaurantQuery) (*domain.Restaurant, error)
}

type OrderRepository interface {
	// SaveOrder persists the order and returns the persisted representation.
	SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByTrackingID(ctx context.Context, trackingID domain.TrackingID) (*domain.Order, error)
}
