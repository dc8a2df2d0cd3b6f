package fambot

import "fmt"

// ErrorKind classifies a failed command.
type ErrorKind int

const (
	// ErrTransport means no usable response was obtained: network failure,
	// timeout, or a payload that could not be decoded.
	ErrTransport ErrorKind = iota
	// ErrApplication means the service rejected the command and reported a
	// code, or answered with a non-success HTTP status.
	ErrApplication
	// ErrLocal means the command was rejected before any round trip, e.g.
	// a required text field was empty.
	ErrLocal
)

// Well-known service error codes surfaced to the user.
const (
	CodeBadFormat      = "BAD_FORMAT"
	CodeInvalidDate    = "INVALID_DATE"
	CodeInvalidURL     = "INVALID_URL"
	CodeTitleRequired  = "TITLE_REQUIRED"
	CodeDateRequired   = "DATE_REQUIRED"
	CodeItemIDRequired = "ITEM_ID_REQUIRED"
	CodeNoPair         = "NO_PAIR"
	CodeUserRequired   = "USER_REQUIRED"
)

// CommandError is the normalized failure reported for any command.
// Code carries the service error code for application failures (or the
// HTTP_<status> fallback when the body had none) and the local validation
// code for local failures.
type CommandError struct {
	Kind ErrorKind
	Code string
	Err  error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case ErrApplication:
		return fmt.Sprintf("service rejected command: %s", e.Code)
	case ErrLocal:
		return fmt.Sprintf("invalid input: %s", e.Code)
	default:
		if e.Err != nil {
			return fmt.Sprintf("transport failure: %v", e.Err)
		}
		return "transport failure"
	}
}

func (e *CommandError) Unwrap() error { return e.Err }

func transportErr(err error) *CommandError {
	return &CommandError{Kind: ErrTransport, Err: err}
}

func applicationErr(code string) *CommandError {
	return &CommandError{Kind: ErrApplication, Code: code}
}

func localErr(code string) *CommandError {
	return &CommandError{Kind: ErrLocal, Code: code}
}
