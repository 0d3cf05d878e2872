// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// State wraps a one-argument transition from an input state to a
// produced value and a next state. Like Effect, nothing runs until an
// explicit Run; unlike Effect, State does not absorb simple containers:
// state-thread values stay plain, and a transformation returning any
// container is a contract violation.
//
// Map and Chain build brand-new States; the predecessor is never
// mutated. The one sanctioned mutation in the package is the private
// iteration queue behind MapIter/ChainIter/RunIter, which is confined to
// the instance that owns it and never copied into derived States. State
// is therefore a pointer type, mirroring the split between the package's
// immutable value containers and its one mutable handle.
type State struct {
	t     func(any) any // returns Pair, or *Future resolving to Pair
	queue []iterStep
}

// Pair is the outcome of one state transition. Asynchronous transitions
// resolve their Future to a Pair.
type Pair struct {
	Value any
	State any
}

// iterStep is one queued batch step; exactly one field is set.
type iterStep struct {
	mapFn   func(any) any
	chainFn func(any) *State
}

var _ Lazy = (*State)(nil)

func (*State) lazyContainer() {}

// String identifies the variant; the wrapped transition is opaque.
func (*State) String() string { return "State" }

// NewState wraps a transition in a State. The transition is not invoked.
func NewState(f func(state any) (value, next any)) *State {
	if f == nil {
		violate("NewState: nil transition")
	}
	return &State{t: func(s any) any {
		v, n := f(s)
		return Pair{Value: v, State: n}
	}}
}

// NewStateAsync wraps an asynchronous transition whose Future resolves
// to a [Pair].
func NewStateAsync(f func(state any) *Future) *State {
	if f == nil {
		violate("NewStateAsync: nil transition")
	}
	return &State{t: func(s any) any { return f(s) }}
}

// PureState produces v and passes the state through unchanged.
func PureState(v any) *State {
	return &State{t: func(s any) any { return Pair{Value: v, State: s} }}
}

// GetState produces the current state as the value.
func GetState() *State {
	return &State{t: func(s any) any { return Pair{Value: s, State: s} }}
}

// PutState replaces the state with next regardless of input; the
// produced value is nil.
func PutState(next any) *State {
	return &State{t: func(any) any { return Pair{State: next} }}
}

// syncPair invokes a transition on the synchronous track. A pending
// Future raises a contract violation; every synchronous entry point
// performs this check.
func syncPair(op string, t func(any) any, in any) Pair {
	v := t(in)
	if _, ok := v.(*Future); ok {
		violate("%s: transition is asynchronous; use the Async track", op)
	}
	return asPair(op, v)
}

// awaitPair awaits a transition result and asserts its shape.
func awaitPair(op string, v any) Pair {
	return asPair(op, await(v))
}

func asPair(op string, v any) Pair {
	p, ok := v.(Pair)
	if !ok {
		violate("%s: transition produced %T, want Pair", op, v)
	}
	return p
}

// plainValue rejects container results from a value transformation.
func plainValue(op string, r any) any {
	if IsContainer(r) {
		violate("%s: transformation returned %v; state-thread values must stay plain", op, r)
	}
	return r
}

// Map applies f to the produced value only; the next state is kept
// unchanged. f must return a plain value.
func (s *State) Map(f func(any) any) *State {
	prev := s.t
	return &State{t: func(in any) any {
		p := syncPair("State.Map", prev, in)
		return Pair{Value: plainValue("State.Map", f(p.Value)), State: p.State}
	}}
}

// MapAsync is Map on the asynchronous track.
func (s *State) MapAsync(f func(any) any) *State {
	prev := s.t
	return &State{t: func(in any) any {
		return Async(func() any {
			p := awaitPair("State.MapAsync", prev(in))
			return Pair{Value: plainValue("State.MapAsync", await(f(p.Value))), State: p.State}
		})
	}}
}

// Chain applies f to the produced value and invokes the returned State's
// transition on the produced next state, returning that pair directly.
func (s *State) Chain(f func(any) *State) *State {
	prev := s.t
	return &State{t: func(in any) any {
		p := syncPair("State.Chain", prev, in)
		next := f(p.Value)
		if next == nil {
			violate("State.Chain: transformation returned a nil State")
		}
		return syncPair("State.Chain", next.t, p.State)
	}}
}

// ChainAsync is Chain on the asynchronous track.
func (s *State) ChainAsync(f func(any) *State) *State {
	prev := s.t
	return &State{t: func(in any) any {
		return Async(func() any {
			p := awaitPair("State.ChainAsync", prev(in))
			next := f(p.Value)
			if next == nil {
				violate("State.ChainAsync: transformation returned a nil State")
			}
			return awaitPair("State.ChainAsync", next.t(p.State))
		})
	}}
}

// Catch recovers an ordinary panic raised by the transition. The
// recovery runs against the original input state, never a partial one:
// a plain result pairs with the input state, a *State result has its
// transition invoked on the input state. A contract violation is never
// caught.
func (s *State) Catch(f func(any) any) *State {
	prev := s.t
	return &State{t: func(in any) any {
		v, caught, ok := safeEval(func() any { return prev(in) })
		if !ok {
			if _, pending := v.(*Future); pending {
				violate("State.Catch: transition is asynchronous; use CatchAsync")
			}
			return asPair("State.Catch", v)
		}
		return stateCatchResult("State.Catch", f(caught), in, func(next *State) Pair {
			return syncPair("State.Catch", next.t, in)
		})
	}}
}

// CatchAsync is Catch on the asynchronous track.
func (s *State) CatchAsync(f func(any) any) *State {
	prev := s.t
	return &State{t: func(in any) any {
		return Async(func() any {
			v, caught, ok := safeEval(func() any { return await(prev(in)) })
			if !ok {
				return asPair("State.CatchAsync", v)
			}
			return stateCatchResult("State.CatchAsync", await(f(caught)), in, func(next *State) Pair {
				return awaitPair("State.CatchAsync", next.t(in))
			})
		})
	}}
}

// stateCatchResult dispatches a recovery result: a *State is evaluated on
// the original input state via eval, any container of another kind is a
// violation, and a plain value pairs with the original input state.
func stateCatchResult(op string, r, in any, eval func(*State) Pair) Pair {
	if next, ok := r.(*State); ok {
		if next == nil {
			violate("%s: recovery returned a nil State", op)
		}
		return eval(next)
	}
	if IsContainer(r) {
		violate("%s: recovery returned %v; want a plain value or State", op, r)
	}
	return Pair{Value: r, State: in}
}

// Run invokes the transition once with the given initial state and
// returns the produced value and next state.
func (s *State) Run(initial any) (value, next any) {
	p := syncPair("State.Run", s.t, initial)
	return p.Value, p.State
}

// RunAsync invokes the transition, awaiting a pending result.
func (s *State) RunAsync(initial any) (value, next any) {
	p := awaitPair("State.RunAsync", s.t(initial))
	return p.Value, p.State
}

// Fold is an alias of Run, kept for interface parity with Effect.
func (s *State) Fold(initial any) (value, next any) { return s.Run(initial) }

// FoldAsync is an alias of RunAsync.
func (s *State) FoldAsync(initial any) (value, next any) { return s.RunAsync(initial) }

// MapIter queues a Map step for RunIter and returns the same instance.
// Unlike Map, no new State is built; very long pipelines run through a
// flat loop instead of nested closures, so the call stack stays flat.
func (s *State) MapIter(f func(any) any) *State {
	if f == nil {
		violate("State.MapIter: nil transformation")
	}
	s.queue = append(s.queue, iterStep{mapFn: f})
	return s
}

// ChainIter queues a Chain step for RunIter and returns the same
// instance.
func (s *State) ChainIter(f func(any) *State) *State {
	if f == nil {
		violate("State.ChainIter: nil transformation")
	}
	s.queue = append(s.queue, iterStep{chainFn: f})
	return s
}

// RunIter performs an ordinary Run, then folds the queued steps in order
// with Map/Chain semantics through a flat loop. When clear is true the
// queue is emptied afterwards, so a subsequent RunIter with no new steps
// behaves as a plain Run; pass false to re-run the same batch. The queue
// is private to this instance: States derived through Map/Chain never
// see it.
func (s *State) RunIter(initial any, clear bool) (value, next any) {
	p := syncPair("State.RunIter", s.t, initial)
	for _, step := range s.queue {
		if step.mapFn != nil {
			p = Pair{Value: plainValue("State.RunIter", step.mapFn(p.Value)), State: p.State}
			continue
		}
		ns := step.chainFn(p.Value)
		if ns == nil {
			violate("State.RunIter: transformation returned a nil State")
		}
		p = syncPair("State.RunIter", ns.t, p.State)
	}
	if clear {
		s.queue = nil
	}
	return p.Value, p.State
}
