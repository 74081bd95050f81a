package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rezvik/foodorder/internal/core/domain"
	"github.com/rezvik/foodorder/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type addressRequest struct {
	Street     string `json:"street" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	City       string `json:"city" binding:"required"`
}

type orderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Price     string `json:"price" binding:"required"`
	SubTotal  string `json:"subTotal" binding:"required"`
}

type createOrderRequest struct {
	CustomerID   string             `json:"customerId" binding:"required"`
	RestaurantID string             `json:"restaurantId" binding:"required"`
	Address      addressRequest     `json:"address" binding:"required"`
	Price        string             `json:"price" binding:"required"`
	Items        []orderItemRequest `json:"items"`
}

type createOrderResponse struct {
	OrderTrackingID string `json:"orderTrackingId"`
	OrderStatus     string `json:"orderStatus"`
	Message         string `json:"message"`
}

type trackOrderResponse struct {
	OrderTrackingID string   `json:"orderTrackingId"`
	OrderStatus     string   `json:"orderStatus"`
	FailureMessages []string `json:"failureMessages,omitempty"`
}

func (req *createOrderRequest) toCommand() (*port.CreateOrderCommand, error) {
	customerID, err := domain.ParseCustomerID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := domain.ParseRestaurantID(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseMoney(req.Price)
	if err != nil {
		return nil, err
	}

	items := make([]port.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := domain.ParseProductID(item.ProductID)
		if err != nil {
			return nil, err
		}
		itemPrice, err := domain.ParseMoney(item.Price)
		if err != nil {
			return nil, err
		}
		subTotal, err := domain.ParseMoney(item.SubTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, port.CreateOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     itemPrice,
			SubTotal:  subTotal,
		})
	}

	return &port.CreateOrderCommand{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Address: domain.Address{
			Street:     req.Address.Street,
			PostalCode: req.Address.PostalCode,
			City:       req.Address.City,
		},
		Price: price,
		Items: items,
	}, nil
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	command, err := req.toCommand()
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	resp, err := oh.service.CreateOrder(ctx, command)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, createOrderResponse{
		OrderTrackingID: resp.OrderTrackingID.String(),
		OrderStatus:     string(resp.OrderStatus),
		Message:         resp.Message,
	})
}

func (oh *OrderHandler) TrackOrder(ctx *gin.Context) {
	trackingID, err := domain.ParseTrackingID(ctx.Param("trackingID"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	resp, err := oh.service.TrackOrder(ctx, trackingID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, trackOrderResponse{
		OrderTrackingID: resp.OrderTrackingID.String(),
		OrderStatus:     string(resp.OrderStatus),
		FailureMessages: resp.FailureMessages,
	})
}
