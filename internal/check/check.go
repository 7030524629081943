// Package check reports element type mismatches between a declared Go type
// and a matrix's runtime DataType.
//
// Mismatches are diagnostics, not failures: the default policy logs a warning
// and lets the caller continue. Strict callers turn the same condition into a
// *TypeMismatchError instead.
package check

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/born-ml/matkit/internal/mat"
)

// MismatchMessage is the diagnostic logged for a type mismatch.
const MismatchMessage = "data type mismatch, may lead to wrong results"

// ErrTypeMismatch is matched by every *TypeMismatchError.
var ErrTypeMismatch = errors.New("data type mismatch")

// TypeMismatchError describes a declared element type that differs from the
// matrix's runtime type.
type TypeMismatchError struct {
	Op   string       // Operation that detected the mismatch (e.g. "iterable", "transform")
	Want mat.DataType // Declared or inferred element type
	Got  mat.DataType // Runtime element type of the matrix
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: data type mismatch: declared %s, matrix holds %s", e.Op, e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
}

// Logger returns the process-wide diagnostics logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the diagnostics logger and returns the previous one.
// A nil l is ignored.
func SetLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Logger()
	}
	return logger.Swap(l)
}

// TypeMatches reports whether want equals got. On mismatch it logs a
// warning to l (or the process-wide logger when l is nil).
func TypeMatches(l *slog.Logger, op string, want, got mat.DataType) bool {
	if want == got {
		return true
	}
	if l == nil {
		l = Logger()
	}
	l.Warn(MismatchMessage, "op", op, "declared", want.String(), "matrix", got.String())
	return false
}

// Strict returns a *TypeMismatchError if want differs from got, nil otherwise.
func Strict(op string, want, got mat.DataType) error {
	if want == got {
		return nil
	}
	return &TypeMismatchError{Op: op, Want: want, Got: got}
}
