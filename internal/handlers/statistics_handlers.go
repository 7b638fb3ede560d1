package handlers

import (
	"strconv"

	"breakfastpos/internal/common"
	"breakfastpos/internal/services"

	"github.com/labstack/echo/v4"
)

// StatisticsHandlers serves the admin dashboard aggregates
type StatisticsHandlers struct {
	statsService services.StatisticsService
}

func NewStatisticsHandlers(statsService services.StatisticsService) *StatisticsHandlers {
	return &StatisticsHandlers{statsService: statsService}
}

// Today handles GET /api/admin/statistics/today
func (h *StatisticsHandlers) Today(c echo.Context) error {
	stats, err := h.statsService.GetTodayStatistics(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, stats)
}

// Revenue handles GET /api/admin/statistics/revenue?days=7
func (h *StatisticsHandlers) Revenue(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	series, err := h.statsService.GetRevenueSeries(c.Request().Context(), days)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, series)
}

// TopProducts handles GET /api/admin/statistics/top-products?limit=5
func (h *StatisticsHandlers) TopProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.statsService.GetTopProducts(c.Request().Context(), limit)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, products)
}
