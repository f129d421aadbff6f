package bootstrap

import (
	"context"
	"log/slog"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

type closable interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server stoppable
	DBPool closable
}

// GracefulShutdown stops accepting requests, lets in-flight units of work finish,
// then releases the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
