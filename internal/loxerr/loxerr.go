// Package loxerr defines Lox's error taxonomy as ordinary Go
// errors: scan, parse, undefined-variable, type, and assertion-failure
// kinds, each a sentinel wrapped by a formatting constructor. The rest
// of the module returns these rather than printing or exiting; only
// the commands under cmd/ (the golox driver and the loxtest harness)
// decide what to report and with which exit code.
package loxerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Use errors.Is(err, loxerr.ErrType) etc. to classify
// an error returned from internal/parser or internal/interpreter.
var (
	ErrScan                = errors.New("scan error")
	ErrParse               = errors.New("parse error")
	ErrUndefinedVariable   = errors.New("undefined variable")
	ErrType                = errors.New("type error")
	ErrAssertionFailed     = errors.New("assertion failed")
	ErrInvalidAssignTarget = errors.New("invalid assignment target")
)

// Scanf builds a ScanError-kind error at the given source line.
func Scanf(line int, format string, args ...any) error {
	return fmt.Errorf("[line %d] %w: %s", line, ErrScan, fmt.Sprintf(format, args...))
}

// Parsef builds a ParseError-kind error at the given source line.
func Parsef(line int, format string, args ...any) error {
	return fmt.Errorf("[line %d] %w: %s", line, ErrParse, fmt.Sprintf(format, args...))
}

// UndefinedVariable builds an UndefinedVariable-kind error for name.
func UndefinedVariable(name string) error {
	return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// Typef builds a TypeError-kind error.
func Typef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

// AssertionFailed builds the fatal AssertionFailed-kind error.
func AssertionFailed() error {
	return fmt.Errorf("%w", ErrAssertionFailed)
}

// InvalidAssignmentTarget builds a ParseError for assignment to a
// non-variable left-hand side. It wraps both ErrParse and
// ErrInvalidAssignTarget so callers can match on either with errors.Is.
func InvalidAssignmentTarget(line int) error {
	return fmt.Errorf("[line %d] %w: %w", line, ErrParse, ErrInvalidAssignTarget)
}
