package nest

import "errors"

// NewError creates a new error with the given error code and underlying error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode classifies the distinguished outcomes of a run.
type ErrorCode int

const (
	// ErrHelpDisplayed marks an error whose message already contains the full
	// contextual help for the deepest subcommand the input resolved to. The
	// caller should print it verbatim and exit non-zero.
	ErrHelpDisplayed ErrorCode = iota + 1

	// ErrHelpRequested is returned when the user explicitly asked for help
	// (-h, --help, or the help command). The message is the rendered help.
	ErrHelpRequested

	// ErrVersionRequested is returned when the user asked for the version.
	// The message is the rendered version line.
	ErrVersionRequested
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrHelpDisplayed:
		return "help displayed"
	case ErrHelpRequested:
		return "help requested"
	case ErrVersionRequested:
		return "version requested"
	default:
		return "unknown error"
	}
}

// Error represents a distinguished run outcome: an error code and an
// underlying error whose message is ready to print.
type Error struct {
	code ErrorCode
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

// Code returns the error code.
func (e *Error) Code() ErrorCode { return e.code }

func (e *Error) Unwrap() error { return e.err }

// HasCode reports whether err is a nest [Error] carrying the given code.
// Useful for mapping run outcomes to process exit codes:
//
//	err := nest.Run(commander)
//	switch {
//	case err == nil:
//	case nest.HasCode(err, nest.ErrHelpRequested), nest.HasCode(err, nest.ErrVersionRequested):
//		fmt.Println(err)
//	default:
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.code == code
}
