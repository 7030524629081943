// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"log/slog"

	"github.com/born-ml/matkit/internal/check"
)

// ErrTypeMismatch is matched by errors.Is for every strict-mode type error.
var ErrTypeMismatch = check.ErrTypeMismatch

// TypeMismatchError reports a declared element type that differs from the
// matrix's runtime type.
type TypeMismatchError = check.TypeMismatchError

// MismatchMessage is the text of the warning logged on a type mismatch.
const MismatchMessage = check.MismatchMessage

// SetLogger replaces the logger receiving type mismatch warnings and returns
// the previous one. A nil logger is ignored.
//
// Example:
//
//	prev := mat.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//	defer mat.SetLogger(prev)
func SetLogger(l *slog.Logger) *slog.Logger {
	return check.SetLogger(l)
}

// Logger returns the current diagnostics logger.
func Logger() *slog.Logger {
	return check.Logger()
}
