package stats

import (
	"errors"
	"fmt"
	"io"
)

// Code classifies the reason a statistic could not be computed.
type Code int

// Error codes. The set is closed; anything else renders as CodeUnknown.
const (
	CodeOK Code = iota
	CodeAllocation
	CodeInvalidParams
	CodeZeroDivision
	CodeMathDomain
	CodeNaN
	CodeOutOfRange
	CodeUnknown
)

var codeNames = [...]string{
	CodeOK:            "ok",
	CodeAllocation:    "allocation",
	CodeInvalidParams: "invalid_params",
	CodeZeroDivision:  "zero_division",
	CodeMathDomain:    "math_domain",
	CodeNaN:           "nan",
	CodeOutOfRange:    "out_of_range",
	CodeUnknown:       "unknown",
}

var codeMessages = [...]string{
	CodeOK:            "no error",
	CodeAllocation:    "memory allocation failed",
	CodeInvalidParams: "invalid parameters",
	CodeZeroDivision:  "division by zero",
	CodeMathDomain:    "math domain error",
	CodeNaN:           "computation produced NaN",
	CodeOutOfRange:    "value out of range",
	CodeUnknown:       "unknown error",
}

func (c Code) valid() bool {
	return c >= CodeOK && c <= CodeUnknown
}

// String returns the stable identifier of the code, suitable for metric labels.
func (c Code) String() string {
	if !c.valid() {
		return codeNames[CodeUnknown]
	}

	return codeNames[c]
}

// Message returns the human-readable description of the code.
func (c Code) Message() string {
	if !c.valid() {
		return codeMessages[CodeUnknown]
	}

	return codeMessages[c]
}

// Sentinel errors, one per failure code. Match with errors.Is.
var (
	ErrAllocation    = &Error{Code: CodeAllocation}
	ErrInvalidParams = &Error{Code: CodeInvalidParams}
	ErrZeroDivision  = &Error{Code: CodeZeroDivision}
	ErrMathDomain    = &Error{Code: CodeMathDomain}
	ErrNaN           = &Error{Code: CodeNaN}
	ErrOutOfRange    = &Error{Code: CodeOutOfRange}
	ErrUnknown       = &Error{Code: CodeUnknown}
)

// Error reports a failed statistic: the operation that failed and why.
type Error struct {
	Op   string
	Code Code
}

func (e *Error) Error() string {
	if e.Op == "" {
		return "stats: " + e.Code.Message()
	}

	return fmt.Sprintf("stats: %s: %s", e.Op, e.Code.Message())
}

// Is matches any *Error carrying the same code, so that
// errors.Is(err, ErrZeroDivision) holds regardless of Op.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

func fail(op string, code Code) error {
	return &Error{Op: op, Code: code}
}

// CodeOf extracts the failure code from err.
// A nil error is CodeOK; errors not produced by this package are CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}

	var se *Error
	if errors.As(err, &se) {
		if !se.Code.valid() {
			return CodeUnknown
		}

		return se.Code
	}

	return CodeUnknown
}

// Status is a caller-owned latch holding the outcome of the most recent call
// recorded into it. Each goroutine keeps its own Status; the zero value is
// ready to use and reports CodeOK.
type Status struct {
	err error
}

// Set records err, replacing whatever was latched before.
func (s *Status) Set(err error) {
	s.err = err
}

// Err returns the latched error, nil after a successful call.
func (s *Status) Err() error {
	return s.err
}

// Code returns the latched failure code.
func (s *Status) Code() Code {
	return CodeOf(s.err)
}

// Message returns the human-readable text of the latched code.
func (s *Status) Message() string {
	return s.Code().Message()
}

// Report writes a one-line diagnostic for the latched state to w, prefixed
// with prefix when it is not empty. Write failures are ignored.
func (s *Status) Report(w io.Writer, prefix string) {
	msg := s.Message()

	var se *Error
	if errors.As(s.err, &se) && se.Op != "" {
		msg = se.Op + ": " + msg
	}

	if prefix != "" {
		msg = prefix + ": " + msg
	}

	_, _ = fmt.Fprintln(w, msg)
}
