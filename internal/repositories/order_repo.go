package repositories

import (
	"context"
	"errors"
	"time"

	"breakfastpos/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderRepository is the durable order store. Save persists an order and all
// of its items in one transaction; the partial unique index on
// idempotency_key is what arbitrates concurrent duplicate submissions.
type OrderRepository interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	List(ctx context.Context, limit, offset int) ([]*models.Order, error)
	SumTotalAmountBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
	TopSellingProducts(ctx context.Context, limit int) ([]*models.TopProduct, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

// Save assigns the order and item IDs and commits the whole aggregate
// atomically. Partial persistence is never observable: either the order row
// and every item row commit together or the transaction rolls back.
func (r *orderRepo) Save(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO orders (id, status, order_type, table_number, total_amount, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.Exec(ctx, query, order.ID, order.Status, order.Type, order.TableNumber, order.TotalAmount, order.IdempotencyKey, order.CreatedAt); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, modifiers, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
		if _, err := tx.Exec(ctx, itemQuery, item.ID, item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Modifiers, item.Subtotal); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, status, order_type, table_number, total_amount, idempotency_key, created_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.Status, &order.Type, &order.TableNumber, &order.TotalAmount, &order.IdempotencyKey, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*models.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) FindByIdempotencyKey(ctx context.Context, key string) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, status, order_type, table_number, total_amount, idempotency_key, created_at
		FROM orders
		WHERE idempotency_key = $1
	`
	err := r.db.QueryRow(ctx, query, key).Scan(&order.ID, &order.Status, &order.Type, &order.TableNumber, &order.TotalAmount, &order.IdempotencyKey, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*models.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *orderRepo) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, status, order_type, table_number, total_amount, idempotency_key, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.Status, &order.Type, &order.TableNumber, &order.TotalAmount, &order.IdempotencyKey, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems attaches items to the given orders with a single query.
func (r *orderRepo) loadItems(ctx context.Context, orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Order, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, modifiers, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.Modifiers, &item.Subtotal); err != nil {
			return err
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

func (r *orderRepo) SumTotalAmountBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
	`
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *orderRepo) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
	`
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// TopSellingProducts groups by the denormalized product name so products
// deleted from the menu still show up in historical rankings.
func (r *orderRepo) TopSellingProducts(ctx context.Context, limit int) ([]*models.TopProduct, error) {
	query := `
		SELECT product_name, SUM(quantity), SUM(subtotal)
		FROM order_items
		GROUP BY product_name
		ORDER BY SUM(quantity) DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.TopProduct
	for rows.Next() {
		p := &models.TopProduct{}
		if err := rows.Scan(&p.ProductName, &p.TotalSold, &p.TotalRevenue); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
