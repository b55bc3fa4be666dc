package bootstrap

import (
	"context"
	"io"

	"github.com/osse101/ProjectLife_Go/internal/event"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/server"
	"github.com/osse101/ProjectLife_Go/internal/sse"
)

// closer is satisfied by the progression store
type closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	SSEHub             *sse.Hub
	Planner            io.Closer
	ResilientPublisher *event.ResilientPublisher
	Store              closer
}

// GracefulShutdown stops components in dependency order:
//  1. SSE hub, so open streams end and the server can drain
//  2. HTTP server, so no new completions start
//  3. planner client
//  4. event publisher, flushing queued retries
//  5. store
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Planner != nil {
		if err := components.Planner.Close(); err != nil {
			logger.Error(LogMsgPlannerCloseFailed, "error", err)
		}
	}

	logger.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		logger.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if components.Store != nil {
		components.Store.Close()
	}

	logger.Info(LogMsgServerStopped)
}
