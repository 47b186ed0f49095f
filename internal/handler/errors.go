package handler

// Client-facing messages. Server faults never expose internal error text.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidMachineID      = "Invalid machine id"
	ErrMsgMachineIDMismatch     = "Machine id in body does not match the path"
	ErrMsgStoreUnavailable      = "machine store unavailable"
	ErrMsgUnsupportedMediaType  = "Content-Type must be application/json or application/yaml"
)

// Action names used in logs
const (
	ActionListMachines  = "Failed to list machines"
	ActionGetMachine    = "Failed to get machine"
	ActionSaveMachine   = "Failed to save machine"
	ActionDeleteMachine = "Failed to delete machine"
	ActionSpin          = "Failed to spin"
	ActionEvaluate      = "Failed to evaluate grid"
	ActionSimulate      = "Failed to simulate"
)

// Media types accepted for machine uploads
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
)
