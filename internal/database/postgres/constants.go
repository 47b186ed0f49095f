package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Machine Operations
const (
	ErrMsgFailedToGetMachine     = "failed to get machine"
	ErrMsgFailedToListMachines   = "failed to list machines"
	ErrMsgFailedToSaveMachine    = "failed to save machine"
	ErrMsgFailedToDeleteMachine  = "failed to delete machine"
	ErrMsgFailedToEncodeConfig   = "failed to encode machine config"
	ErrMsgFailedToDecodeConfig   = "failed to decode machine config"
	ErrMsgFailedToScanMachineRow = "failed to scan machine row"
)
