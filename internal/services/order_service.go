package services

import (
	"context"
	"log"
	"strings"

	"breakfastpos/internal/common"
	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog supplies live product data for pricing. MenuService implements it;
// tests substitute mocks.
type Catalog interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ReceiptPrinter renders and dispatches a receipt for a committed order.
type ReceiptPrinter interface {
	PrintReceipt(ctx context.Context, order *models.Order) error
}

// CustomerNotifier pushes order progress messages to the customer.
type CustomerNotifier interface {
	NotifyStatusChange(ctx context.Context, order *models.Order) error
}

// CartLine is one client-submitted line before pricing.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Modifiers *string   `json:"modifiers,omitempty"`
}

// CheckoutRequest is the full checkout submission.
type CheckoutRequest struct {
	Type           string     `json:"type"`
	TableNumber    *string    `json:"table_number,omitempty"`
	IdempotencyKey *string    `json:"idempotency_key,omitempty"`
	Items          []CartLine `json:"items"`
}

// OrderService is the checkout engine: it validates a cart, resolves
// idempotent retries, prices every line against the catalog, persists the
// order atomically and then fires best-effort side effects.
type OrderService interface {
	PlaceOrder(ctx context.Context, req *CheckoutRequest) (*models.Order, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	catalog   Catalog
	printer   ReceiptPrinter
	notifier  CustomerNotifier
}

func NewOrderService(orderRepo repositories.OrderRepository, catalog Catalog, printer ReceiptPrinter, notifier CustomerNotifier) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   catalog,
		printer:   printer,
		notifier:  notifier,
	}
}

// PlaceOrder runs the checkout workflow. Any validation or pricing failure
// aborts before persistence; once the order is committed it is returned to
// the caller no matter what the printer or notifier do.
func (s *orderService) PlaceOrder(ctx context.Context, req *CheckoutRequest) (*models.Order, error) {
	orderType, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	// A retried submission with the same key returns the committed order
	// verbatim: no re-pricing, no duplicate persistence, no side effects.
	// Blank keys are treated as absent.
	key := strings.TrimSpace(common.SafeString(req.IdempotencyKey))
	if key != "" {
		existing, err := s.orderRepo.FindByIdempotencyKey(ctx, key)
		if err != nil {
			return nil, common.NewInternal("look up idempotency key", err)
		}
		if existing != nil {
			log.Printf("duplicate checkout detected for idempotency key %q, returning order %s", key, existing.ID)
			return existing, nil
		}
	}

	items, total, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Status:      models.OrderStatusPending,
		Type:        orderType,
		TableNumber: req.TableNumber,
		TotalAmount: total,
		Items:       items,
	}
	if key != "" {
		order.IdempotencyKey = &key
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		// Two submissions with the same key can race past the lookup above.
		// The unique index picks the winner; the loser returns it.
		if key != "" && repositories.IsUniqueViolation(err) {
			winner, ferr := s.orderRepo.FindByIdempotencyKey(ctx, key)
			if ferr == nil && winner != nil {
				log.Printf("lost idempotency race for key %q, returning order %s", key, winner.ID)
				return winner, nil
			}
		}
		return nil, common.NewInternal("save order", err)
	}

	log.Printf("order %s saved: type=%s total=%s", order.ID, order.Type, order.TotalAmount)

	// The order is durable; printer or notifier outages must never fail the
	// checkout or block order intake.
	s.dispatchSideEffects(ctx, order)

	return order, nil
}

func (s *orderService) validateRequest(req *CheckoutRequest) (models.OrderType, error) {
	if len(req.Items) == 0 {
		return "", common.NewInvalidRequest("order items cannot be empty")
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return "", common.NewInvalidRequest("item quantity must be greater than zero")
		}
	}
	orderType, err := models.ParseOrderType(req.Type)
	if err != nil {
		return "", common.NewInvalidRequest("order type must be DINE_IN or TAKEAWAY")
	}
	return orderType, nil
}

// priceItems resolves every cart line against the catalog and snapshots the
// product name and current price into the order line. All arithmetic stays in
// the decimal domain.
func (s *orderService) priceItems(ctx context.Context, lines []CartLine) ([]*models.OrderItem, decimal.Decimal, error) {
	items := make([]*models.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		product, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, decimal.Zero, common.NewInternal("resolve product", err)
		}
		if product == nil {
			return nil, decimal.Zero, common.NewNotFound("product not found with id: %s", line.ProductID)
		}
		if !product.Available {
			return nil, decimal.Zero, common.NewConflict("product is not available: %s", product.Name)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, &models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			Modifiers:   line.Modifiers,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	return items, total, nil
}

func (s *orderService) dispatchSideEffects(ctx context.Context, order *models.Order) {
	if err := s.printer.PrintReceipt(ctx, order); err != nil {
		log.Printf("receipt printing failed for order %s: %v", order.ID, err)
	}
	if err := s.notifier.NotifyStatusChange(ctx, order); err != nil {
		log.Printf("customer notification failed for order %s: %v", order.ID, err)
	}
}
