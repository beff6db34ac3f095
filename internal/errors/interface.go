package errors

// Error is the domain error carried across package boundaries. Every
// failure surfaced to the CLI wraps one, so callers branch on the code
// instead of matching message strings.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory builds domain errors; New returns the default implementation.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
