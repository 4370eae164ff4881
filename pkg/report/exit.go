package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exit codes shared by every tool in the suite.
const (
	ExitOK               = 0
	ExitValidation       = 1
	ExitCriticalFindings = 2
	ExitIO               = 3
	ExitPermission       = 4
)

// ExitError carries the process exit code alongside the underlying error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ValidationError wraps a malformed-input error with exit code 1.
func ValidationError(err error) error {
	return &ExitError{Code: ExitValidation, Err: err}
}

// ValidationErrorf formats a malformed-input error with exit code 1.
func ValidationErrorf(format string, args ...interface{}) error {
	return &ExitError{Code: ExitValidation, Err: fmt.Errorf(format, args...)}
}

// IOError classifies a filesystem error: permission problems get code 4,
// everything else (including file-not-found) gets code 3.
func IOError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &ExitError{Code: ExitPermission, Err: err}
	}
	return &ExitError{Code: ExitIO, Err: err}
}

// CriticalFindingsError signals that the run succeeded but found critical
// issues, so the process should exit with code 2.
func CriticalFindingsError(count int) error {
	return &ExitError{
		Code: ExitCriticalFindings,
		Err:  fmt.Errorf("%d critical finding(s) detected", count),
	}
}

// CodeFor extracts the exit code from an error chain, defaulting to 1.
func CodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	if errors.Is(err, fs.ErrPermission) {
		return ExitPermission
	}
	if errors.Is(err, fs.ErrNotExist) {
		return ExitIO
	}
	return ExitValidation
}

// Fail prints the error to stderr and exits with its mapped code.
func Fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(CodeFor(err))
}
