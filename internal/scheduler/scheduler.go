package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// passTimeout bounds one probe pass over all cities.
const passTimeout = 30 * time.Second

// Looker runs a single weather lookup.
type Looker interface {
	Lookup(ctx context.Context, credentials, query map[string]string) weather.Result
}

// Scheduler periodically looks up configured cities and logs the outcome.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	service     Looker
	credentials map[string]string
	cities      []string
	interval    time.Duration
	logger      *zap.Logger
}

// New creates a new Scheduler.
func New(cities []string, interval time.Duration, service Looker, credentials map[string]string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler:   s,
		service:     service,
		credentials: credentials,
		cities:      cities,
		interval:    interval,
		logger:      logger.Named("scheduler"),
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		s.logger.Info("no probe cities configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("probe scheduled", zap.Strings("cities", s.cities), zap.Duration("interval", interval))
	return nil
}

// RunOnce looks up every configured city concurrently and returns the results
// in city order.
func (s *Scheduler) RunOnce(ctx context.Context) []weather.Result {
	s.logger.Info("running weather probe")

	results := make([]weather.Result, len(s.cities))
	var wg sync.WaitGroup
	for i, city := range s.cities {
		i, city := i, city
		wg.Add(1)
		go func() {
			defer wg.Done()

			res := s.service.Lookup(ctx, s.credentials, map[string]string{"city": city})
			results[i] = res
			s.logResult(city, res)
		}()
	}
	wg.Wait()

	s.logger.Info("completed weather probe")
	return results
}

func (s *Scheduler) logResult(city string, res weather.Result) {
	if !res.Success {
		msg := ""
		if res.Error != nil {
			msg = *res.Error
		}
		s.logger.Warn("probe failed",
			zap.String("city", city),
			zap.Stringer("kind", res.Kind()),
			zap.String("error", msg),
		)
		return
	}

	fields := []zap.Field{
		zap.String("city", city),
		zap.String("name", res.Data.City),
		zap.String("description", res.Data.WeatherDescription),
	}
	if res.Data.TemperatureWithUnit != nil {
		fields = append(fields, zap.String("temperature", *res.Data.TemperatureWithUnit))
	}
	s.logger.Info("probe succeeded", fields...)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
