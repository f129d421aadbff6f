package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingBoobaMarket = "Starting Booba Market"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Database startup messages
const (
	LogMsgDatabaseConnected  = "Database connection established"
	LogMsgRunningMigrations  = "Applying database migrations"
	LogMsgMigrationsComplete = "Database migrations up to date"
	ErrMsgConnectDatabase    = "failed to connect to database"
	ErrMsgRunMigrations      = "failed to apply migrations"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
