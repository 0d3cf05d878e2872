// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Future is a deferred asynchronous result: the pending value that the
// asynchronous track awaits at each step boundary and that the
// synchronous track rejects as a contract violation.
//
// The computation runs on its own goroutine. A panic inside it, contract
// violations included, is transported across the goroutine boundary and
// re-raised by Await, preserving the rule that violations always reach
// the caller of Run/RunAsync.
type Future struct {
	done     chan struct{}
	value    any
	panicked any
}

// Async runs f on a new goroutine and returns its Future.
func Async(f func() any) *Future {
	if f == nil {
		violate("Async: nil computation")
	}
	fu := &Future{done: make(chan struct{})}
	go func() {
		defer close(fu.done)
		defer func() {
			if r := recover(); r != nil {
				fu.panicked = r
			}
		}()
		fu.value = f()
	}()
	return fu
}

// Await blocks until the computation finishes and returns its result.
// If the computation panicked, Await re-raises the panic value.
// Await may be called any number of times; every call observes the same
// outcome.
func (f *Future) Await() any {
	<-f.done
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.value
}

// Done returns a channel closed when the computation finishes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// await flattens v: a plain value passes through, a Future is awaited,
// repeatedly, until a settled value remains.
func await(v any) any {
	for {
		f, ok := v.(*Future)
		if !ok {
			return v
		}
		v = f.Await()
	}
}
