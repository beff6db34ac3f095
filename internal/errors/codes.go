package errors

// ErrorCode identifies a class of failure. Codes are stable strings,
// safe to log and to assert on.
type ErrorCode string

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "service_unavailable"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrMissingConfig ErrorCode = "missing_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Transport errors
	ErrTransport      ErrorCode = "transport_failed"
	ErrAuthentication ErrorCode = "authentication_rejected"
	ErrBadStatus      ErrorCode = "unexpected_http_status"
	ErrMalformedBody  ErrorCode = "malformed_response_body"

	// Discovery errors
	ErrDiscovery           ErrorCode = "endpoint_discovery_failed"
	ErrMissingLink         ErrorCode = "expected_link_missing"
	ErrUnsupportedTopology ErrorCode = "unsupported_topology"

	// Collection errors
	ErrExtraction      ErrorCode = "extraction_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"
	ErrInvalidCategory ErrorCode = "invalid_category"

	// Export errors
	ErrExport ErrorCode = "export_failed"

	// Process errors
	ErrAlreadyRunning ErrorCode = "already_running"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:            "Internal error occurred",
	ErrInvalidArgument:     "Invalid argument provided",
	ErrUnavailable:         "Service unavailable",
	ErrInvalidConfig:       "Invalid configuration",
	ErrMissingConfig:       "Missing configuration",
	ErrBindFlags:           "Failed to bind flags",
	ErrReadConfig:          "Failed to read configuration",
	ErrInvalidLogLevel:     "Invalid log level",
	ErrTransport:           "HTTP request failed",
	ErrAuthentication:      "Authentication rejected by the management controller",
	ErrBadStatus:           "Unexpected HTTP status",
	ErrMalformedBody:       "Failed to decode response body",
	ErrDiscovery:           "Failed to discover Redfish endpoints",
	ErrMissingLink:         "Expected navigation link missing",
	ErrUnsupportedTopology: "Unsupported multi-system topology",
	ErrExtraction:          "Failed to extract telemetry",
	ErrInvalidInterval:     "Invalid interval value",
	ErrInvalidCategory:     "Unknown telemetry category",
	ErrExport:              "Failed to export collected data",
	ErrAlreadyRunning:      "Another instance is already running",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
