package service

import (
	"github.com/rezvik/foodorder/internal/core/domain"
	"github.com/rezvik/foodorder/internal/core/port"
	"github.com/samber/lo"
)

func commandToOrder(command *port.CreateOrderCommand) *domain.Order {
	return &domain.Order{
		CustomerID:      command.CustomerID,
		RestaurantID:    command.RestaurantID,
		DeliveryAddress: command.Address,
		Price:           command.Price,
		Items: lo.Map(command.Items, func(item port.CreateOrderItem, _ int) domain.OrderItem {
			return domain.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				SubTotal:  item.SubTotal,
			}
		}),
	}
}

func commandToRestaurantQuery(command *port.CreateOrderCommand) port.RestaurantQuery {
	productIDs := lo.Map(command.Items, func(item port.CreateOrderItem, _ int) domain.ProductID {
		return item.ProductID
	})

	return port.RestaurantQuery{
		RestaurantID: command.RestaurantID,
		ProductIDs:   lo.Uniq(productIDs),
	}
}

func orderToCreateOrderResponse(order *domain.Order, message string) *port.CreateOrderResponse {
	return &port.CreateOrderResponse{
		OrderTrackingID: order.TrackingID,
		OrderStatus:     order.Status,
		Message:         message,
	}
}

func orderToTrackOrderResponse(order *domain.Order) *port.TrackOrderResponse {
	return &port.TrackOrderResponse{
		OrderTrackingID: order.TrackingID,
		OrderStatus:     order.Status,
		FailureMessages: order.FailureMessages,
	}
}
