package models

import "github.com/shopspring/decimal"

// TodayStatistics is the dashboard snapshot for the current business day.
type TodayStatistics struct {
	TodayRevenue     decimal.Decimal `json:"today_revenue"`
	TodayOrders      int64           `json:"today_orders"`
	TotalProducts    int64           `json:"total_products"`
	UnavailableCount int64           `json:"unavailable_count"`
}

// RevenuePoint is one day of the revenue series.
type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProduct ranks a product by units sold across all orders.
type TopProduct struct {
	ProductName  string          `json:"product_name"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
