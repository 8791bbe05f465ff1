package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderTrackingJob *OrderTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the status update handler and order repository as dependencies to
// wire up the tracking simulation.
func NewJobManager(
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	orderRepository ports.OrderRepository,
	trackingInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderTrackingJob: NewOrderTrackingJob(updateStatusHandler, orderRepository, trackingInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderTrackingJob.Stop()
}
