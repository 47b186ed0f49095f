package bootstrap

import (
	"context"

	"github.com/osse101/slotengine/internal/logger"
	"github.com/osse101/slotengine/internal/repository"
	"github.com/osse101/slotengine/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  repository.Machine
}

// GracefulShutdown stops the HTTP server first so no request is still using
// the store when it closes. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			logger.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	logger.Info(LogMsgServerStopped)
}
