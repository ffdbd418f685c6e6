// SPDX-License-Identifier: MIT
// Package parallel: sentinel error set.

package parallel

import "errors"

// ErrBadRange indicates an index range with a negative bound or from > to.
// Dispatch functions validate the extent before touching any cell.
var ErrBadRange = errors.New("parallel: invalid index range")

// panic message for SetMode misuse (programmer error, not user input).
const panicBadMode = "parallel: SetMode: unknown Mode value"
