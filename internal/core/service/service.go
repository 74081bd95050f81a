package service

import (
	"context"
	"errors"
	"time"

	"github.com/rezvik/foodorder/internal/core/domain"
	"github.com/rezvik/foodorder/internal/core/port"
	"go.uber.org/zap"
)

const orderCreatedMessage = "Order created successfully."

// Service implements the order application service: creation of new
// orders and tracking of existing ones. Each call is self-contained;
// the aggregate built inside one call is never shared across calls.
type Service struct {
	customers   port.CustomerRepository
	restaurants port.RestaurantRepository
	orders      port.OrderRepository
	publisher   port.OrderMessagePublisher
	logger      *zap.Logger
}

func NewService(customers port.CustomerRepository, restaurants port.RestaurantRepository,
	orders port.OrderRepository, publisher port.OrderMessagePublisher, logger *zap.Logger) (*Service, error) {
	return &Service{
		customers:   customers,
		restaurants: restaurants,
		orders:      orders,
		publisher:   publisher,
		logger:      logger,
	}, nil
}

// CreateOrder validates the command against the customer registry and the
// restaurant snapshot, persists the order in PENDING state and emits an
// order-created event. Exactly one persistence write happens on success
// and none on any failure. No retries are performed here.
func (s *Service) CreateOrder(ctx context.Context, command *port.CreateOrderCommand) (*port.CreateOrderResponse, error) {
	if err := s.checkCustomer(ctx, command.CustomerID); err != nil {
		return nil, err
	}

	restaurant, err := s.findRestaurant(ctx, command)
	if err != nil {
		return nil, err
	}

	order := commandToOrder(command)
	if err := order.InitiateOrder(restaurant); err != nil {
		s.logger.Warn("Order validation failed", zap.Error(err))
		return nil, err
	}

	saved, err := s.orders.SaveOrder(ctx, order)
	if err != nil {
		s.logger.Error("Save order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	event := domain.OrderCreatedEvent{Order: saved, CreatedAt: time.Now().UTC()}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		// the order is committed; downstream sagas recover from the store
		s.logger.Error("Publish order created", zap.Error(err),
			zap.String("order", saved.ID.String()))
	}

	return orderToCreateOrderResponse(saved, orderCreatedMessage), nil
}

// TrackOrder returns the current status and failure messages for the
// order referenced by the tracking id.
func (s *Service) TrackOrder(ctx context.Context, trackingID domain.TrackingID) (*port.TrackOrderResponse, error) {
	order, err := s.orders.FindByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.NewOrderNotFoundError(trackingID)
		}
		s.logger.Error("Find order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return orderToTrackOrderResponse(order), nil
}

func (s *Service) checkCustomer(ctx context.Context, id domain.CustomerID) error {
	_, err := s.customers.FindCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Customer not found", zap.String("customer", id.String()))
			return domain.NewCustomerNotFoundError(id)
		}
		s.logger.Error("Find customer", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

func (s *Service) findRestaurant(ctx context.Context, command *port.CreateOrderCommand) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.FindRestaurantInformation(ctx, commandToRestaurantQuery(command))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Restaurant not found", zap.String("restaurant", command.RestaurantID.String()))
			return nil, domain.NewRestaurantNotFoundError(command.RestaurantID)
		}
		s.logger.Error("Find restaurant information", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return restaurant, nil
}
