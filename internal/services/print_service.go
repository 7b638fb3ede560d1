package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"breakfastpos/internal/models"
)

const receiptTimeLayout = "2006-01-02 15:04:05"

// printService drives the thermal receipt printer. The current build logs the
// rendered receipt; a production deployment would stream ESC/POS bytes to the
// printer over TCP port 9100.
type printService struct{}

func NewPrintService() ReceiptPrinter {
	return &printService{}
}

func (s *printService) PrintReceipt(ctx context.Context, order *models.Order) error {
	receipt := FormatReceipt(order)
	log.Printf("Sending to Printer ->\n%s", receipt)
	return nil
}

// FormatReceipt renders the fixed-width ticket layout. The output is
// deterministic for a given order so regressions show up as plain string
// diffs.
func FormatReceipt(order *models.Order) string {
	var sb strings.Builder

	sb.WriteString("================================\n")
	sb.WriteString("      SUNRISE BITES POS         \n")
	sb.WriteString("================================\n")
	fmt.Fprintf(&sb, "單號: %s\n", order.ID)
	fmt.Fprintf(&sb, "日期: %s\n", order.CreatedAt.Format(receiptTimeLayout))
	fmt.Fprintf(&sb, "類型: %s\n", order.Type)
	if order.TableNumber != nil {
		fmt.Fprintf(&sb, "桌號: %s\n", *order.TableNumber)
	}
	sb.WriteString("--------------------------------\n")

	for _, item := range order.Items {
		fmt.Fprintf(&sb, "%-15s x%d  $%s\n", item.ProductName, item.Quantity, item.Subtotal)
		if item.Modifiers != nil && *item.Modifiers != "" {
			fmt.Fprintf(&sb, "  * %s\n", *item.Modifiers)
		}
	}

	sb.WriteString("--------------------------------\n")
	fmt.Fprintf(&sb, "總計: $%s\n", order.TotalAmount)
	sb.WriteString("================================\n")
	sb.WriteString("      謝謝惠顧，祝您早安!       \n")
	sb.WriteString("================================\n")

	return sb.String()
}
