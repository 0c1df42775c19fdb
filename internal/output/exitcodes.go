package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // bad flags, bad month bounds, malformed archive records
	ExitSystemError = 2 // unreadable archive, template or output directory failure
)

// ExitError is an error that carries the process exit code for the CLI.
// Message is what the user sees; Cause keeps the original error for errors.Is.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an exit-code-1 error.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewUserErrorWithCause creates an exit-code-1 error wrapping cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message, Cause: cause}
}

// NewSystemError creates an exit-code-2 error.
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewSystemErrorWithCause creates an exit-code-2 error wrapping cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// AsExitError returns err as an *ExitError. Untyped errors become user errors
// carrying err's message.
func AsExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return NewUserErrorWithCause(err.Error(), err)
}

// GetExitCode maps err to a process exit code; nil is ExitSuccess.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return AsExitError(err).Code
}
