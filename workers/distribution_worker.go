package workers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Rustaman254/waveUnit/service"
)

// DistributionWorker schedules the daily profit distribution run
type DistributionWorker struct {
	distributions service.DistributionService
}

// NewDistributionWorker creates a new distribution worker
func NewDistributionWorker(distributions service.DistributionService) *DistributionWorker {
	return &DistributionWorker{
		distributions: distributions,
	}
}

// Start begins the worker. It fires once per day at distributionHour UTC
// and returns a cleanup function that stops the worker.
func (w *DistributionWorker) Start(ctx context.Context, distributionHour int) func() {
	stopChan := make(chan struct{})

	// Calculate time until the next run
	calculateNextRun := func() time.Duration {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day(), distributionHour, 0, 0, 0, time.UTC)

		// If today's run time has already passed, schedule for tomorrow
		if now.After(next) || now.Equal(next) {
			next = next.Add(24 * time.Hour)
		}

		return next.Sub(now)
	}

	runDistribution := func() {
		runDate := time.Now().UTC()
		log.WithField("runDate", runDate.Format("2006-01-02")).Info("Running daily profit distribution")

		// The run is idempotent per date, so a restart within the same
		// day cannot double-pay
		if _, err := w.distributions.RunDaily(ctx, runDate); err != nil {
			log.Errorf("Error running daily distribution: %v", err)
		}
	}

	go func() {
		log.Infof("Distribution worker started, next run at %02d:00 UTC", distributionHour)

		for {
			waitDuration := calculateNextRun()
			log.Infof("Distribution worker waiting %v until next run", waitDuration)

			select {
			case <-ctx.Done():
				log.Info("Distribution worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Distribution worker shutting down (stop requested)...")
				return
			case <-time.After(waitDuration):
				runDistribution()
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}
