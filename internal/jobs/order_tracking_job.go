package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/ports"
	"dineease/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultTrackingInterval is how often active orders advance one status step
// when no interval is configured.
const DefaultTrackingInterval = 15 * time.Second

// OrderTrackingJob simulates order progress. On every tick it lists the
// active orders and moves each one to its next status, so Preparing becomes
// Cooking, Cooking becomes Packaging, and so on until Delivered.
type OrderTrackingJob struct {
	handler         commands.UpdateOrderStatusCommandHandler
	orderRepository ports.OrderRepository
	cron            *cron.Cron
	interval        time.Duration
	logger          *slog.Logger
}

// NewOrderTrackingJob creates a job that advances active orders every
// interval. A non-positive interval falls back to DefaultTrackingInterval.
func NewOrderTrackingJob(
	handler commands.UpdateOrderStatusCommandHandler,
	orderRepository ports.OrderRepository,
	interval time.Duration,
	logger *slog.Logger,
) *OrderTrackingJob {
	if interval <= 0 {
		interval = DefaultTrackingInterval
	}
	return &OrderTrackingJob{
		handler:         handler,
		orderRepository: orderRepository,
		cron:            cron.New(cron.WithSeconds()),
		interval:        interval,
		logger:          logger.With("component", "order_tracking_job"),
	}
}

// Start begins the tracking job on its configured interval.
func (j *OrderTrackingJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.advanceActiveOrders(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order tracking job started", "interval", j.interval.String())
	return nil
}

// Stop stops the tracking job.
func (j *OrderTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order tracking job stopped")
}

// advanceActiveOrders moves every active order one status step forward.
// An order that disappeared or was advanced by hand between listing and
// updating is skipped; those races resolve themselves on the next tick.
func (j *OrderTrackingJob) advanceActiveOrders(ctx context.Context) {
	activeOrders, err := j.orderRepository.GetAllActive(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order tracking job failed to list active orders", "error", err)
		return
	}

	for _, aggregate := range activeOrders {
		next, err := aggregate.Status().Next()
		if err != nil {
			continue
		}

		cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), next)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order tracking job built an invalid command",
				"orderId", aggregate.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsInvalid) {
				continue
			}
			j.logger.ErrorContext(ctx, "Order tracking job failed to advance order",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}
}
