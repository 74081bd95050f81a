package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rezvik/foodorder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(productID domain.ProductID, price string, active bool) *domain.Restaurant {
	id, err := domain.ParseRestaurantID("dc074d23-ef23-44ed-9ccf-bf701220f302")
	if err != nil {
		panic(err)
	}

	return &domain.Restaurant{
		ID:     id,
		Active: active,
		Products: []domain.Product{
			{ID: productID, Name: "product-1", Price: domain.MustParseMoney(price)},
			{ID: productID, Name: "product-2", Price: domain.MustParseMoney(price)},
		},
	}
}

func newTestOrder(productID domain.ProductID, price string) *domain.Order {
	customerID, _ := domain.ParseCustomerID("7e459fca-3eb5-4ce0-91be-c730f6fffd04")
	restaurantID, _ := domain.ParseRestaurantID("dc074d23-ef23-44ed-9ccf-bf701220f302")

	return &domain.Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		DeliveryAddress: domain.Address{
			Street:     "street_1",
			PostalCode: "1000AB",
			City:       "Paris",
		},
		Price: domain.MustParseMoney(price),
		Items: []domain.OrderItem{
			{
				ProductID: productID,
				Quantity:  1,
				Price:     domain.MustParseMoney("50.00"),
				SubTotal:  domain.MustParseMoney("50.00"),
			},
			{
				ProductID: productID,
				Quantity:  3,
				Price:     domain.MustParseMoney("50.00"),
				SubTotal:  domain.MustParseMoney("150.00"),
			},
		},
	}
}

func assertDomainError(t *testing.T, err error, kind domain.ErrorKind) *domain.Error {
	t.Helper()

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr), "expected domain error, got %v", err)
	assert.Equal(t, kind, domainErr.Kind)
	return domainErr
}

func TestOrder_InitiateOrder(t *testing.T) {
	productID, err := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")
	require.NoError(t, err)

	order := newTestOrder(productID, "200.00")
	restaurant := newTestRestaurant(productID, "50.00", true)

	err = order.InitiateOrder(restaurant)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.NotEqual(t, domain.OrderID{}, order.ID)
	assert.NotEqual(t, domain.TrackingID{}, order.TrackingID)
}

func TestOrder_InitiateOrderEmptyItems(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "200.00")
	order.Items = nil
	restaurant := newTestRestaurant(productID, "50.00", true)

	err := order.InitiateOrder(restaurant)
	assertDomainError(t, err, domain.KindEmptyItems)
	assert.Equal(t, domain.OrderStatus(""), order.Status)
}

func TestOrder_InitiateOrderWrongTotalPrice(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "250.00")
	restaurant := newTestRestaurant(productID, "50.00", true)

	err := order.InitiateOrder(restaurant)
	domainErr := assertDomainError(t, err, domain.KindPriceMismatch)
	assert.Equal(t,
		"Total price: 250.00 is not equal to Order items total: 200.00.",
		domainErr.Error())
	assert.Equal(t, domain.OrderID{}, order.ID)
}

func TestOrder_InitiateOrderWrongItemSubtotal(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "210.00")
	// claimed subtotal is consistent with the order total but not with price*quantity
	order.Items[0].SubTotal = domain.MustParseMoney("60.00")
	restaurant := newTestRestaurant(productID, "50.00", true)

	err := order.InitiateOrder(restaurant)
	assertDomainError(t, err, domain.KindItemSubtotalMismatch)
}

func TestOrder_InitiateOrderWrongProductPrice(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "210.00")
	order.Items[0].Price = domain.MustParseMoney("60.00")
	order.Items[0].SubTotal = domain.MustParseMoney("60.00")
	restaurant := newTestRestaurant(productID, "50.00", true)

	err := order.InitiateOrder(restaurant)
	domainErr := assertDomainError(t, err, domain.KindInvalidItemPrice)
	assert.Equal(t,
		fmt.Sprintf("Order item price: 60.00 is not valid for product %s.", productID),
		domainErr.Error())
}

func TestOrder_InitiateOrderProductMissingFromSnapshot(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")
	otherID, _ := domain.ParseProductID("3f1c7b52-54c9-44d5-8b3a-0a44b8e2e355")

	order := newTestOrder(productID, "200.00")
	restaurant := newTestRestaurant(otherID, "50.00", true)

	err := order.InitiateOrder(restaurant)
	assertDomainError(t, err, domain.KindInvalidItemPrice)
}

func TestOrder_InitiateOrderPassiveRestaurant(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "200.00")
	restaurant := newTestRestaurant(productID, "50.00", false)

	err := order.InitiateOrder(restaurant)
	domainErr := assertDomainError(t, err, domain.KindRestaurantNotActive)
	assert.Equal(t,
		fmt.Sprintf("Restaurant with id %s is currently not active.", restaurant.ID),
		domainErr.Error())
	assert.Equal(t, domain.OrderStatus(""), order.Status)
}

func TestOrder_InitiateOrderPriceChecksRunBeforeActivityCheck(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "250.00")
	restaurant := newTestRestaurant(productID, "50.00", false)

	err := order.InitiateOrder(restaurant)
	assertDomainError(t, err, domain.KindPriceMismatch)
}

func TestOrder_InitiateOrderValidationIsRepeatable(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	order := newTestOrder(productID, "250.00")
	restaurant := newTestRestaurant(productID, "50.00", true)

	first := order.InitiateOrder(restaurant)
	second := order.InitiateOrder(restaurant)

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestOrder_StateTransitions(t *testing.T) {
	productID, _ := domain.ParseProductID("9bd1b243-b0e0-4f23-bb42-6616077132ee")

	newPendingOrder := func(t *testing.T) *domain.Order {
		order := newTestOrder(productID, "200.00")
		restaurant := newTestRestaurant(productID, "50.00", true)
		require.NoError(t, order.InitiateOrder(restaurant))
		return order
	}

	t.Run("pay approve", func(t *testing.T) {
		order := newPendingOrder(t)

		require.NoError(t, order.Pay())
		assert.Equal(t, domain.OrderStatusPaid, order.Status)

		require.NoError(t, order.Approve())
		assert.Equal(t, domain.OrderStatusApproved, order.Status)
	})

	t.Run("pay cancel", func(t *testing.T) {
		order := newPendingOrder(t)

		require.NoError(t, order.Pay())
		require.NoError(t, order.InitCancel([]string{"payment declined"}))
		assert.Equal(t, domain.OrderStatusCancelling, order.Status)

		require.NoError(t, order.Cancel([]string{"restaurant rejected", ""}))
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, []string{"payment declined", "restaurant rejected"}, order.FailureMessages)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		order := newPendingOrder(t)

		require.NoError(t, order.Cancel(nil))
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	})

	t.Run("invalid transitions", func(t *testing.T) {
		order := newPendingOrder(t)

		err := order.Approve()
		assertDomainError(t, err, domain.KindInvalidOrderState)

		require.NoError(t, order.Pay())
		err = order.Pay()
		assertDomainError(t, err, domain.KindInvalidOrderState)
		assert.Equal(t, "Order is not in correct state for pay operation.", err.Error())
	})
}
