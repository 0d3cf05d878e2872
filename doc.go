// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monad provides algebraic effect containers in Go: uniform,
// composable handling of recoverable failure, optional values, deferred
// computation and threaded state, without manual branching on error or
// absence and without manual threading of side effects.
//
// # Design Philosophy
//
// monad provides:
//   - Four simple variants — Success, Fail, Just, Nothing — behind one
//     uniform operation set, so the Either and Maybe families mix freely
//     in a single pipeline
//   - Two lazy variants — [Effect] and [State] — that defer all work
//     until an explicit Run call
//   - Runtime capability markers for O(1) family classification,
//     independent of concrete type identity
//   - A single distinguished failure mode, [ContractViolation], for API
//     misuse, disjoint from domain failures modeled as data
//
// # Simple Containers
//
// Success and Just are the continuing variants: their payload propagates
// through Map and Chain. Fail and Nothing are the halting variants: they
// short-circuit Map, Chain and Ap, and expose their payload only through
// Fold and the recovery hooks (OnFailMap, OnFailChain, OnNothingMap,
// OnNothingChain). Every variant answers every hook from either family,
// acting only when the hook matches its own family's halting condition.
//
// Construction helpers:
//
//   - [Try]: run a synchronous computation, converting an ordinary panic
//     into a Fail
//   - [FromNullable]: classify nil (and optionally other empties) into
//     Nothing, everything else into Just
//
// # Lazy Containers
//
// [Effect] wraps a zero-argument computation; [State] wraps a one-argument
// state transition. Construction never executes; every Map/Chain/Catch
// builds a brand-new container around a newly composed closure.
//
// Effect transparently absorbs simple containers produced inside its
// computation: before each step, a continuing simple container is
// flattened to its payload and a halting one propagates as-is without
// running the step (the unwrap rule). State keeps its value thread plain
// and forbids containers there entirely.
//
// Each operation is mirrored across a synchronous and an asynchronous
// track (Map/MapAsync, Chain/ChainAsync, Catch/CatchAsync, Fold/FoldAsync,
// Run/RunAsync). A synchronous entry point that discovers a pending
// [*Future] raises a contract violation instead of handing back a pending
// result; the check runs at every synchronous entry point, not only Run.
//
// # Error Handling
//
// Two disjoint categories. Contract violations — wrong return shape from
// a transformation, an accessor invoked on the wrong variant, mixed
// container families — panic with a [*ContractViolation] and are never
// caught by any operation here; Catch re-raises them. Domain failures are
// data: Fail and Nothing short-circuit, ordinary panics inside lazy
// computations are caught by Catch, and every halting state has an
// explicit recovery path.
//
// # Concurrency
//
// Execution is single-threaded and strictly left-to-right; the
// asynchronous track suspends at each awaited boundary but never
// reorders or branches. There is no cancellation: short-circuiting is
// designed into the halting-container flow instead. The only mutation in
// the package is State's private iteration queue
// ([State.MapIter]/[State.ChainIter]/[State.RunIter]), confined to the
// owning instance.
package monad
