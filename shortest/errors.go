// SPDX-License-Identifier: MIT
package shortest

import "errors"

// ErrModeMismatch indicates a query that does not fit the solution's Mode.
var ErrModeMismatch = errors.New("shortest: query does not match solution mode")

// ErrNilLogger is the panic value of WithLogger(nil).
var ErrNilLogger = errors.New("shortest: logger is nil")
