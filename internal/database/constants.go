package database

// DefaultMinConnections keeps a couple of warm connections for readiness probes.
const DefaultMinConnections int32 = 2

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

const (
	LogMsgConnectedToDatabase = "Connected to machine store"
	LogMsgMigrationApplied    = "Applied migration"
	LogMsgMigrationsUpToDate  = "Machine schema up to date"
)
