package source

import (
	"errors"
	"fmt"
)

// Error is a classified parse failure with the location where it was detected.
type Error struct {
	// Code is the failure category.
	Code Code
	// Span locates the failure in the parsed text.
	Span Span
	// Cause is the more specific failure this one was derived from, if any.
	Cause *Error
	// Err is the underlying library error for numeric and calendar failures.
	Err error
}

// New creates an Error for code at span.
func New(code Code, span Span) *Error {
	return &Error{Code: code, Span: span}
}

// Wrap creates an Error for code at span that carries err.
func Wrap(code Code, span Span, err error) *Error {
	return &Error{Code: code, Span: span, Err: err}
}

// Unexpected boxes err so it is not mistaken for the natural failure of the
// rule that probed for it.
func Unexpected(err *Error) *Error {
	return &Error{Code: CodeUnexpected, Span: err.Span, Cause: err}
}

// Incomplete reports input left over after a complete production.
func Incomplete(span Span) *Error {
	return &Error{Code: CodeParseIncomplete, Span: span}
}

// Recode returns err reclassified as code. The span is kept and err becomes the
// cause. Structural errors and errors already carrying code are returned as is.
func Recode(err *Error, code Code) *Error {
	if err == nil || err.Code == code || err.Code.IsStructural() {
		return err
	}
	return &Error{Code: code, Span: err.Span, Cause: err, Err: err.Err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s for span=%d::%d:%d '%s'",
		e.Code, e.Span.Offset, e.Span.Line, e.Span.Column, e.Span.Fragment)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying library error, or the cause.
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.Cause != nil {
		return e.Cause
	}
	return nil
}

// Root returns the innermost failure of the cause chain.
func (e *Error) Root() *Error {
	r := e
	for r.Cause != nil {
		r = r.Cause
	}
	return r
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Code, true
	}
	return 0, false
}
