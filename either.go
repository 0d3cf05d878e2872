// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "fmt"

// Either family: recoverable failure as data.
// Success carries a usable payload; Fail short-circuits the pipeline and
// carries its payload for the OnFail recovery hooks.

// Success wraps v in the continuing Either variant.
func Success(v any) Simple {
	return continuing{kind: kindSuccess, value: v}
}

// Fail wraps v in the halting Either variant. The payload is typically an
// error but may be any value describing the failure.
func Fail(v any) Simple {
	return halting{kind: kindFail, value: v}
}

// Try invokes a zero-argument synchronous computation. An ordinary panic
// becomes a Fail wrapping the panic value as an error; a contract
// violation is re-raised untouched. Try is strictly synchronous: a
// computation that returns a pending [*Future] is a contract violation.
func Try(f func() any) (s Simple) {
	if f == nil {
		violate("Try: nil computation")
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := AsContractViolation(r); ok {
				panic(r)
			}
			s = Fail(panicError(r))
		}
	}()
	v := f()
	if _, ok := v.(*Future); ok {
		violate("Try: computation returned a pending Future; Try is synchronous")
	}
	return Success(v)
}

// panicError converts a recovered panic value to an error payload.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
