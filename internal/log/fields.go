package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldBody       = "body"
	FieldError      = "error"
	FieldErrorCode  = "error_code"
	FieldTopCount   = "top_count"
	FieldGroups     = "groups"
	FieldAccounts   = "accounts"
)

// Components defines standard component names.
const (
	ComponentApp       = "app"
	ComponentClient    = "client"
	ComponentTransport = "transport"
	ComponentCLI       = "cli"
)
