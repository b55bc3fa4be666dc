package bootstrap

import (
	"fmt"

	"github.com/osse101/ProjectLife_Go/internal/event"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/metrics"
	"github.com/osse101/ProjectLife_Go/internal/sse"
)

// EventHandlerDependencies holds what event handler registration needs
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
}

// RegisterEventHandlers subscribes the metrics collector and, when a hub is
// given, the SSE bridge to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorInit)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		logger.Info(LogMsgSSESubscriberInit)
	}

	return nil
}
