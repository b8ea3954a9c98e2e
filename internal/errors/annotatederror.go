// Package errors provides error wrapping with slog annotations and source
// locations. It re-exports the standard library helpers so callers only need
// a single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

type annotatedError struct {
	err   error
	msg   string
	attrs []slog.Attr
	file  string
	line  int
}

// NewSentinel creates an error suitable for package-level sentinel values.
func NewSentinel(msg string) error {
	file, line := location()
	return &annotatedError{msg: msg, file: file, line: line}
}

// Wrap annotates err with a message and optional [slog.Attr] that
// [SlogError] later surfaces under error.annotations.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	file, line := location()
	return &annotatedError{err: err, msg: msg, attrs: attrs, file: file, line: line}
}

func location() (string, int) {
	// Skip location and the exported constructor to land on the caller.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// SlogError converts err into a grouped [slog.Attr] containing the message,
// the source location where the error was created, and any annotations
// gathered from the wrap chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []any
		file        string
		line        int
	)
	for current := err; current != nil; {
		var ae *annotatedError
		if !errors.As(current, &ae) {
			break
		}
		if file == "" {
			file = ae.file
			line = ae.line
		}
		for _, attr := range ae.attrs {
			annotations = append(annotations, attr)
		}
		current = ae.err
	}

	args := []any{slog.String("message", err.Error())}
	if file != "" {
		args = append(args, slog.String("source", fmt.Sprintf("%s:%d", file, line)))
	}
	if len(annotations) > 0 {
		args = append(args, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", args...)
}

// DecoratePanic converts a recovered panic value into an error whose source
// location points at the panic site rather than the recovery handler.
func DecoratePanic(excp any) error {
	var pcs [32]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var (
		file       string
		line       int
		afterPanic bool
	)
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.gopanic") {
			afterPanic = true
		} else if afterPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			file = filepath.Base(frame.File)
			line = frame.Line
			break
		}
		if !more {
			break
		}
	}

	return &annotatedError{msg: fmt.Sprintf("panic: %v", excp), file: file, line: line}
}

// New re-exports [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is re-exports [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap re-exports [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join re-exports [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
