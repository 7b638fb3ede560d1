package background

import (
	"context"
	"log"
	"time"

	"breakfastpos/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the periodic maintenance work: keeping the dashboard
// statistics cache warm and logging the daily sales summary at close of
// business intervals.
type JobScheduler struct {
	scheduler gocron.Scheduler
	statsSvc  services.StatisticsService
}

func NewJobScheduler(statsSvc services.StatisticsService) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		statsSvc:  statsSvc,
	}
	js.registerJobs()

	return js
}

func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(js.refreshStatistics, context.Background()),
		gocron.WithName("statistics-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create statistics refresh job: %v", err)
	}

	_, err = js.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(js.logDailySummary, context.Background()),
		gocron.WithName("daily-summary"),
	)
	if err != nil {
		log.Printf("Failed to create daily summary job: %v", err)
	}
}

// refreshStatistics recomputes today's figures so dashboard polls hit a warm
// cache instead of the orders table.
func (js *JobScheduler) refreshStatistics(ctx context.Context) error {
	if err := js.statsSvc.RefreshTodayStatistics(ctx); err != nil {
		log.Printf("Failed to refresh today statistics: %v", err)
		return err
	}
	return nil
}

func (js *JobScheduler) logDailySummary(ctx context.Context) error {
	stats, err := js.statsSvc.GetTodayStatistics(ctx)
	if err != nil {
		log.Printf("Failed to collect daily summary: %v", err)
		return err
	}
	log.Printf("Daily summary: revenue=%s orders=%d products=%d unavailable=%d",
		stats.TodayRevenue, stats.TodayOrders, stats.TotalProducts, stats.UnavailableCount)
	return nil
}
