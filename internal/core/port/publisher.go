package port

import (
	"context"

	"github.com/rezvik/foodorder/internal/core/domain"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher.go -package=mock
type OrderMessagePublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
}
