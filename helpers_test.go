// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/monad"
)

// requireViolation runs fn and asserts it panics with a contract
// violation, returning it for message checks.
func requireViolation(t *testing.T, fn func()) *monad.ContractViolation {
	t.Helper()
	var cv *monad.ContractViolation
	func() {
		defer func() {
			t.Helper()
			r := recover()
			require.NotNil(t, r, "expected a contract violation")
			var ok bool
			cv, ok = monad.AsContractViolation(r)
			require.True(t, ok, "panic value %v is not a ContractViolation", r)
		}()
		fn()
	}()
	return cv
}

// addOne is the canonical func(any) any payload used by the Ap tests.
func addOne(v any) any { return v.(int) + 1 }
