package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rezvik/foodorder/internal/adapter/storage"
	"github.com/rezvik/foodorder/internal/core/domain"
	"github.com/rezvik/foodorder/internal/core/port"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) FindCustomer(ctx context.Context, id domain.CustomerID) (*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Select("id").
		From("customers").
		Where(sq.Eq{"id": uuid.UUID(id)})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	var customerID uuid.UUID
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&customerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &domain.Customer{ID: domain.CustomerID(customerID)}, nil
}

func (r *Repository) FindRestaurantInformation(ctx context.Context, query port.RestaurantQuery) (*domain.Restaurant, error) {
	productIDs := make([]uuid.UUID, 0, len(query.ProductIDs))
	for _, id := range query.ProductIDs {
		productIDs = append(productIDs, uuid.UUID(id))
	}

	statement := r.db.QueryBuilder.
		Select("r.id", "r.active", "p.product_id", "p.name", "p.price").
		From("restaurants r").
		Join("restaurant_products p ON p.restaurant_id = r.id").
		Where(sq.Eq{"r.id": uuid.UUID(query.RestaurantID)}).
		Where(sq.Eq{"p.product_id": productIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurant := domain.Restaurant{}
	found := false
	for rows.Next() {
		var (
			restaurantID uuid.UUID
			active       bool
			productID    uuid.UUID
			name         string
			price        decimal.Decimal
		)
		err := rows.Scan(&restaurantID, &active, &productID, &name, &price)
		if err != nil {
			return nil, err
		}

		restaurant.ID = domain.RestaurantID(restaurantID)
		restaurant.Active = active
		restaurant.Products = append(restaurant.Products, domain.Product{
			ID:    domain.ProductID(productID),
			Name:  name,
			Price: domain.NewMoney(price),
		})
		found = true
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, domain.ErrDataNotFound
	}

	return &restaurant, nil
}

func (r *Repository) SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	failureMessages := order.FailureMessages
	if failureMessages == nil {
		failureMessages = []string{}
	}

	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("id", "customer_id", "restaurant_id", "tracking_id",
				"street", "postal_code", "city", "price", "status", "failure_messages").
			Values(uuid.UUID(order.ID), uuid.UUID(order.CustomerID), uuid.UUID(order.RestaurantID),
				uuid.UUID(order.TrackingID), order.DeliveryAddress.Street, order.DeliveryAddress.PostalCode,
				order.DeliveryAddress.City, order.Price.Decimal(), string(order.Status),
				failureMessages)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for i, item := range order.Items {
			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "item_id", "product_id", "quantity", "price", "sub_total").
				Values(uuid.UUID(order.ID), i+1, uuid.UUID(item.ProductID),
					item.Quantity, item.Price.Decimal(), item.SubTotal.Decimal())

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) FindByTrackingID(ctx context.Context, trackingID domain.TrackingID) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "customer_id", "restaurant_id", "tracking_id",
			"street", "postal_code", "city", "price", "status", "failure_messages").
		From("orders").
		Where(sq.Eq{"tracking_id": uuid.UUID(trackingID)})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		orderID         uuid.UUID
		customerID      uuid.UUID
		restaurantID    uuid.UUID
		tracking        uuid.UUID
		price           decimal.Decimal
		status          string
		failureMessages []string
	)
	order := domain.Order{}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&orderID,
		&customerID,
		&restaurantID,
		&tracking,
		&order.DeliveryAddress.Street,
		&order.DeliveryAddress.PostalCode,
		&order.DeliveryAddress.City,
		&price,
		&status,
		&failureMessages,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.ID = domain.OrderID(orderID)
	order.CustomerID = domain.CustomerID(customerID)
	order.RestaurantID = domain.RestaurantID(restaurantID)
	order.TrackingID = domain.TrackingID(tracking)
	order.Price = domain.NewMoney(price)

	order.Status, err = domain.ToOrderStatus(status)
	if err != nil {
		return nil, err
	}

	if len(failureMessages) > 0 {
		order.FailureMessages = failureMessages
	}

	order.Items, err = r.readOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) readOrderItems(ctx context.Context, orderID domain.OrderID) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "quantity", "price", "sub_total").
		From("order_items").
		Where(sq.Eq{"order_id": uuid.UUID(orderID)}).
		OrderBy("item_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int
			price     decimal.Decimal
			subTotal  decimal.Decimal
		)
		err := rows.Scan(&productID, &quantity, &price, &subTotal)
		if err != nil {
			return nil, err
		}

		items = append(items, domain.OrderItem{
			ProductID: domain.ProductID(productID),
			Quantity:  quantity,
			Price:     domain.NewMoney(price),
			SubTotal:  domain.NewMoney(subTotal),
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}
