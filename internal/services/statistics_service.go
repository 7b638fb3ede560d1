package services

import (
	"context"
	"log"
	"time"

	"breakfastpos/internal/caching"
	"breakfastpos/internal/common"
	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"
)

const statsCacheTTL = time.Minute

// StatisticsService aggregates sales figures for the dashboard. Today's
// snapshot is cached with a short TTL and refreshed in the background so the
// dashboard poll never hammers the orders table.
type StatisticsService interface {
	GetTodayStatistics(ctx context.Context) (*models.TodayStatistics, error)
	RefreshTodayStatistics(ctx context.Context) error
	GetRevenueSeries(ctx context.Context, days int) ([]*models.RevenuePoint, error)
	GetTopProducts(ctx context.Context, limit int) ([]*models.TopProduct, error)
}

type statisticsService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cache       caching.CacheService
}

func NewStatisticsService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, cache caching.CacheService) StatisticsService {
	return &statisticsService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

func (s *statisticsService) GetTodayStatistics(ctx context.Context) (*models.TodayStatistics, error) {
	cached, err := s.cache.GetTodayStatistics(ctx)
	if err != nil {
		log.Printf("WARN: statistics cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := s.computeTodayStatistics(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTodayStatistics(ctx, stats, statsCacheTTL); err != nil {
		log.Printf("WARN: statistics cache write failed: %v", err)
	}
	return stats, nil
}

// RefreshTodayStatistics recomputes the snapshot and overwrites the cache.
// The background scheduler calls this on an interval.
func (s *statisticsService) RefreshTodayStatistics(ctx context.Context) error {
	stats, err := s.computeTodayStatistics(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetTodayStatistics(ctx, stats, statsCacheTTL)
}

func (s *statisticsService) computeTodayStatistics(ctx context.Context) (*models.TodayStatistics, error) {
	start := startOfDay(time.Now())
	end := start.AddDate(0, 0, 1)

	revenue, err := s.orderRepo.SumTotalAmountBetween(ctx, start, end)
	if err != nil {
		return nil, common.NewInternal("sum today revenue", err)
	}
	orders, err := s.orderRepo.CountBetween(ctx, start, end)
	if err != nil {
		return nil, common.NewInternal("count today orders", err)
	}
	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, common.NewInternal("count products", err)
	}
	unavailable, err := s.productRepo.CountUnavailable(ctx)
	if err != nil {
		return nil, common.NewInternal("count unavailable products", err)
	}

	return &models.TodayStatistics{
		TodayRevenue:     revenue,
		TodayOrders:      orders,
		TotalProducts:    totalProducts,
		UnavailableCount: unavailable,
	}, nil
}

// GetRevenueSeries returns per-day revenue for the trailing window, oldest
// day first. Days without orders contribute a zero point.
func (s *statisticsService) GetRevenueSeries(ctx context.Context, days int) ([]*models.RevenuePoint, error) {
	if days <= 0 {
		days = 7
	}

	today := startOfDay(time.Now())
	series := make([]*models.RevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)

		revenue, err := s.orderRepo.SumTotalAmountBetween(ctx, start, end)
		if err != nil {
			return nil, common.NewInternal("sum day revenue", err)
		}
		series = append(series, &models.RevenuePoint{
			Date:    start.Format("2006-01-02"),
			Revenue: revenue,
		})
	}
	return series, nil
}

func (s *statisticsService) GetTopProducts(ctx context.Context, limit int) ([]*models.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	products, err := s.orderRepo.TopSellingProducts(ctx, limit)
	if err != nil {
		return nil, common.NewInternal("rank top products", err)
	}
	return products, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
