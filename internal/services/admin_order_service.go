package services

import (
	"context"
	"log"

	"breakfastpos/internal/common"
	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"

	"github.com/google/uuid"
)

// AdminOrderService is the staff-facing order board: listing active orders,
// inspecting one and driving it through the kitchen workflow.
type AdminOrderService interface {
	ListOrders(ctx context.Context, limit, offset int) ([]*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
}

type adminOrderService struct {
	orderRepo repositories.OrderRepository
	notifier  CustomerNotifier
}

func NewAdminOrderService(orderRepo repositories.OrderRepository, notifier CustomerNotifier) AdminOrderService {
	return &adminOrderService{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

func (s *adminOrderService) ListOrders(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	orders, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, common.NewInternal("list orders", err)
	}
	return orders, nil
}

func (s *adminOrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.NewInternal("find order", err)
	}
	if order == nil {
		return nil, common.NewNotFound("order not found with id: %s", id)
	}
	return order, nil
}

// UpdateStatus moves an order to the requested status. Staff may set any
// valid status directly; the workflow trusts the counter, so there is no
// transition graph enforced here.
func (s *adminOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	newStatus, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, common.NewInvalidRequest("invalid order status: %s", status)
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.NewInternal("find order", err)
	}
	if order == nil {
		return nil, common.NewNotFound("order not found with id: %s", id)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, common.NewInternal("update order status", err)
	}
	order.Status = newStatus

	log.Printf("order %s status updated to %s", id, newStatus)

	// Progress pushes are best effort; a messaging outage never blocks the
	// kitchen workflow.
	if err := s.notifier.NotifyStatusChange(ctx, order); err != nil {
		log.Printf("customer notification failed for order %s: %v", id, err)
	}

	return order, nil
}
