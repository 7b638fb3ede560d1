package services

import (
	"context"
	"log"

	"breakfastpos/internal/models"
)

// notifyService pushes order progress messages to the customer's messaging
// channel. Until the messaging provider integration lands, the push is
// simulated with a log line.
type notifyService struct{}

func NewNotifyService() CustomerNotifier {
	return &notifyService{}
}

// NotifyStatusChange sends a progress message for statuses the customer
// cares about. Statuses without a message are silently skipped.
func (s *notifyService) NotifyStatusChange(ctx context.Context, order *models.Order) error {
	message := StatusMessage(order.Status)
	if message == "" {
		return nil
	}
	return s.sendPush(ctx, "U1234567890abcdef", message)
}

func (s *notifyService) sendPush(ctx context.Context, recipientID, message string) error {
	log.Printf("Preparing to send notification to %s: %s", recipientID, message)
	return nil
}

// StatusMessage maps an order status to its customer-facing message, or ""
// when the status has none.
func StatusMessage(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPreparing:
		return "🍕 您的餐點正在製作中！"
	case models.OrderStatusServed:
		return "🛎️ 餐點已準備好，請至櫃檯取餐！"
	case models.OrderStatusCompleted:
		return "✨ 感謝您的光臨，祝您有美好的一天！"
	default:
		return ""
	}
}
