// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Effect wraps a zero-argument computation that is not executed at
// construction. Every Map/Chain/Catch call composes a brand-new Effect
// around a new closure; nothing runs until Run, RunAsync or Fold.
//
// Two execution tracks mirror each operation: the synchronous track
// (Map, Chain, Catch, Fold, Run) raises a contract violation whenever
// the underlying computation turns out to produce a pending [*Future];
// the asynchronous track (MapAsync, ChainAsync, CatchAsync, FoldAsync,
// RunAsync) awaits at every step boundary. The pending check runs at
// every synchronous entry point, not only in Run.
//
// The unwrap rule applies before each step's transformation on both
// tracks: a halting simple container produced by the previous step
// propagates as-is and the step never runs; a continuing simple
// container is flattened to its payload; a plain value passes through.
type Effect struct {
	comp func() any
}

var _ Lazy = Effect{}

func (Effect) lazyContainer() {}

// String identifies the variant; the wrapped computation is opaque.
func (Effect) String() string { return "Effect" }

// NewEffect wraps a computation in an Effect. The computation is not
// invoked.
func NewEffect(f func() any) Effect {
	if f == nil {
		violate("NewEffect: nil computation")
	}
	return Effect{comp: f}
}

// PureEffect wraps a computation that simply returns v.
func PureEffect(v any) Effect {
	return Effect{comp: func() any { return v }}
}

// syncEval invokes comp on the synchronous track. A pending Future means
// the computation is actually asynchronous: every synchronous entry
// point raises a contract violation rather than handing back a pending
// value.
func syncEval(op string, comp func() any) any {
	v := comp()
	if _, ok := v.(*Future); ok {
		violate("%s: computation is asynchronous; use the Async track", op)
	}
	return v
}

// safeEval invokes comp, recovering an ordinary panic as a caught error.
// Contract violations are re-raised: they are defects, not data.
func safeEval(comp func() any) (v, caught any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isViolation := AsContractViolation(r); isViolation {
				panic(r)
			}
			caught, ok = panicError(r), true
		}
	}()
	return comp(), nil, false
}

// stepResult enforces the shape of a step's transformation result:
// lazy containers are forbidden, continuing simple containers are
// unwrapped once more before storing.
func stepResult(op string, r any) any {
	if IsLazyContainer(r) {
		violate("%s: transformation returned %v; use Chain to return an Effect", op, r)
	}
	return unwrapContinuing(r)
}

// Map applies f to the unwrapped result of the computation.
func (e Effect) Map(f func(any) any) Effect {
	prev := e.comp
	return Effect{comp: func() any {
		out, halted := unwrapResult(syncEval("Effect.Map", prev))
		if halted != nil {
			return halted
		}
		return stepResult("Effect.Map", f(out))
	}}
}

// MapAsync is Map on the asynchronous track: the previous computation and
// f's result are both awaited.
func (e Effect) MapAsync(f func(any) any) Effect {
	prev := e.comp
	return Effect{comp: func() any {
		return Async(func() any {
			out, halted := unwrapResult(await(prev()))
			if halted != nil {
				return halted
			}
			return stepResult("Effect.MapAsync", await(f(out)))
		})
	}}
}

// Chain applies f to the unwrapped result and immediately invokes the
// computation of the Effect it returns, subject to the same
// one-more-unwrap rule as Map.
func (e Effect) Chain(f func(any) Effect) Effect {
	prev := e.comp
	return Effect{comp: func() any {
		out, halted := unwrapResult(syncEval("Effect.Chain", prev))
		if halted != nil {
			return halted
		}
		next := f(out)
		if next.comp == nil {
			violate("Effect.Chain: transformation returned the zero Effect")
		}
		return unwrapContinuing(syncEval("Effect.Chain", next.comp))
	}}
}

// ChainAsync is Chain on the asynchronous track.
func (e Effect) ChainAsync(f func(any) Effect) Effect {
	prev := e.comp
	return Effect{comp: func() any {
		return Async(func() any {
			out, halted := unwrapResult(await(prev()))
			if halted != nil {
				return halted
			}
			next := f(out)
			if next.comp == nil {
				violate("Effect.ChainAsync: transformation returned the zero Effect")
			}
			return unwrapContinuing(await(next.comp()))
		})
	}}
}

// Catch recovers an ordinary panic raised by the computation. f receives
// the panic value as an error; its result may be a plain value, a
// continuing simple container (unwrapped), or another Effect, whose
// computation is invoked and used. A contract violation is never caught.
func (e Effect) Catch(f func(any) any) Effect {
	prev := e.comp
	return Effect{comp: func() any {
		v, caught, ok := safeEval(prev)
		if !ok {
			if _, pending := v.(*Future); pending {
				violate("Effect.Catch: computation is asynchronous; use CatchAsync")
			}
			return v
		}
		return catchResult("Effect.Catch", f(caught), func(next Effect) any {
			return syncEval("Effect.Catch", next.comp)
		})
	}}
}

// CatchAsync is Catch on the asynchronous track.
func (e Effect) CatchAsync(f func(any) any) Effect {
	prev := e.comp
	return Effect{comp: func() any {
		return Async(func() any {
			v, caught, ok := safeEval(func() any { return await(prev()) })
			if !ok {
				return v
			}
			return catchResult("Effect.CatchAsync", await(f(caught)), func(next Effect) any {
				return await(next.comp())
			})
		})
	}}
}

// catchResult dispatches a recovery result: another Effect is evaluated
// via eval, any other lazy container is a violation, and simple
// containers fall under the usual continuing unwrap.
func catchResult(op string, r any, eval func(Effect) any) any {
	if next, ok := r.(Effect); ok {
		if next.comp == nil {
			violate("%s: recovery returned the zero Effect", op)
		}
		return unwrapContinuing(eval(next))
	}
	if IsLazyContainer(r) {
		violate("%s: recovery returned %v; want a plain value, simple container or Effect", op, r)
	}
	return unwrapContinuing(r)
}

// FoldHandlers selects a handler per result shape for [Effect.Fold].
// A nil handler is the identity.
type FoldHandlers struct {
	// OnRight receives a continuing simple container result.
	OnRight func(any) any
	// OnHalt receives a halting simple container result.
	OnHalt func(any) any
	// OnValue receives a plain, non-container result.
	OnValue func(any) any
}

// dispatch routes the raw result of a computation to the matching
// handler.
func (h FoldHandlers) dispatch(v any) any {
	pick := h.OnValue
	if s, ok := v.(Simple); ok {
		if s.IsHalt() {
			pick = h.OnHalt
		} else {
			pick = h.OnRight
		}
	}
	if pick == nil {
		return v
	}
	return pick(v)
}

// Fold executes the computation and dispatches on the shape of the raw
// result: continuing simple container, halting simple container, or
// plain value.
func (e Effect) Fold(h FoldHandlers) any {
	return h.dispatch(syncEval("Effect.Fold", e.comp))
}

// FoldAsync is Fold on the asynchronous track; the raw result is awaited
// before dispatch.
func (e Effect) FoldAsync(h FoldHandlers) any {
	return h.dispatch(await(e.comp()))
}

// Run executes the computation and returns the raw result.
func (e Effect) Run() any {
	return syncEval("Effect.Run", e.comp)
}

// RunAsync executes the computation, awaiting a pending result.
func (e Effect) RunAsync() any {
	return await(e.comp())
}
