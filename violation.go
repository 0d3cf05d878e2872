// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import (
	"errors"
	"fmt"
)

// ContractViolation reports misuse of the container API: a transformation
// returning a value of the wrong shape, an accessor invoked on a variant
// that cannot satisfy it, or incompatible container families mixed in one
// step. Violations are defects, not data: no operation in this package
// catches or converts them, [Effect.Catch] and [State.Catch] re-raise them
// unchanged, and they propagate to the caller of Run/RunAsync.
type ContractViolation struct {
	msg string
}

// Error implements the error interface.
func (e *ContractViolation) Error() string { return e.msg }

// AsContractViolation classifies a recovered panic value or an error.
// It returns the violation and true when r is a *ContractViolation or
// an error wrapping one.
func AsContractViolation(r any) (*ContractViolation, bool) {
	switch v := r.(type) {
	case *ContractViolation:
		return v, true
	case error:
		var cv *ContractViolation
		if errors.As(v, &cv) {
			return cv, true
		}
	}
	return nil, false
}

// violate panics with a ContractViolation. All messages are prefixed with
// the package name so violations are identifiable at any recovery site.
func violate(format string, args ...any) {
	panic(&ContractViolation{msg: "monad: " + fmt.Sprintf(format, args...)})
}
