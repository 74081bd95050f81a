package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type (
	CustomerID   uuid.UUID
	RestaurantID uuid.UUID
	ProductID    uuid.UUID
	OrderID      uuid.UUID
	// TrackingID is the externally visible identifier returned to callers
	// to reference a created order.
	TrackingID uuid.UUID
)

func NewOrderID() OrderID       { return OrderID(uuid.New()) }
func NewTrackingID() TrackingID { return TrackingID(uuid.New()) }

func (id CustomerID) String() string   { return uuid.UUID(id).String() }
func (id RestaurantID) String() string { return uuid.UUID(id).String() }
func (id ProductID) String() string    { return uuid.UUID(id).String() }
func (id OrderID) String() string      { return uuid.UUID(id).String() }
func (id TrackingID) String() string   { return uuid.UUID(id).String() }

func ParseCustomerID(s string) (CustomerID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CustomerID{}, fmt.Errorf("customer id: %w", err)
	}
	return CustomerID(u), nil
}

func ParseRestaurantID(s string) (RestaurantID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return RestaurantID{}, fmt.Errorf("restaurant id: %w", err)
	}
	return RestaurantID(u), nil
}

func ParseProductID(s string) (ProductID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, fmt.Errorf("product id: %w", err)
	}
	return ProductID(u), nil
}

func ParseTrackingID(s string) (TrackingID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TrackingID{}, fmt.Errorf("tracking id: %w", err)
	}
	return TrackingID(u), nil
}
