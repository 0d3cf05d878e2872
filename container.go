// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "fmt"

// Container is the minimal contract shared by every variant: a single
// opaque payload, a variant tag, and a printable form. Classification is
// by capability marker, never by concrete type identity, so the interop
// rules work uniformly across independently defined variants.
type Container interface {
	fmt.Stringer
}

// Simple is the uniform operation set shared by the four simple variants:
// Success and Fail (the Either family) and Just and Nothing (the Maybe
// family). Success and Just are the continuing variants; Fail and Nothing
// are the halting variants. Every variant answers every recovery hook
// from either family, acting on it only when the hook matches its own
// family's halting condition, which is what lets the two families mix
// freely in one pipeline.
//
// The interface carries an unexported marker method. External variants
// satisfy it by embedding [UnimplementedContainer].
type Simple interface {
	Container

	// Map applies f to the payload and wraps the result in the same
	// variant. Halting variants return themselves unchanged; f is never
	// invoked. f must not return a simple container.
	Map(f func(any) any) Simple

	// Chain applies f to the payload and returns f's result directly.
	// Halting variants return themselves unchanged.
	Chain(f func(any) Simple) Simple

	// Fold invokes onRight with the payload on continuing variants and
	// onHalt with the payload on halting variants. A nil handler is the
	// identity.
	Fold(onRight, onHalt func(any) any) any

	// GetOrElse returns the payload on continuing variants and def on
	// halting variants.
	GetOrElse(def any) any

	// Result returns the payload. Halting variants raise a contract
	// violation: their payload is reachable only through recovery hooks.
	Result() any

	// Ap applies the payload, which must be a func(any) any, to the
	// payload of other, wrapping the result with other's own variant
	// constructor. The result's family is determined by the argument,
	// not the receiver. A halting receiver returns itself; a halting
	// argument is returned unchanged.
	Ap(other Simple) Simple

	// OnFailMap recovers a Fail: f is applied to the payload and the
	// result, which must not be a container, is wrapped in Success.
	// Every other variant returns itself unchanged.
	OnFailMap(f func(any) any) Simple

	// OnFailChain recovers a Fail: f is applied to the payload and its
	// result is returned directly. Every other variant returns itself
	// unchanged.
	OnFailChain(f func(any) Simple) Simple

	// OnNothingMap recovers a Nothing: f is applied to the payload and
	// the result, which must not be a container, is wrapped in Just.
	// Every other variant returns itself unchanged.
	OnNothingMap(f func(any) any) Simple

	// OnNothingChain recovers a Nothing: f is applied to the payload and
	// its result is returned directly. Every other variant returns
	// itself unchanged.
	OnNothingChain(f func(any) Simple) Simple

	// IsRight reports whether this is a continuing variant.
	IsRight() bool
	// IsHalt reports whether this is a halting variant.
	IsHalt() bool

	IsSuccess() bool
	IsFail() bool
	IsJust() bool
	IsNothing() bool

	simpleContainer()
}

// Lazy is the capability marker shared by the lazy variants, [Effect] and
// [*State]. Lazy containers wrap a computation that is not executed at
// construction; an explicit Run call is the only way to observe it.
type Lazy interface {
	Container

	lazyContainer()
}

// IsSimpleContainer reports whether v is a simple container.
func IsSimpleContainer(v any) bool {
	_, ok := v.(Simple)
	return ok
}

// IsLazyContainer reports whether v is a lazy container.
func IsLazyContainer(v any) bool {
	_, ok := v.(Lazy)
	return ok
}

// IsContainer reports whether v is any container variant.
func IsContainer(v any) bool {
	return IsSimpleContainer(v) || IsLazyContainer(v)
}

// unwrapResult applies the unwrap rule to the raw result of a lazy
// computation. A halting simple container is returned in halted and
// propagates as-is: the next step must not run. A continuing simple
// container is flattened to its payload. Anything else passes through.
func unwrapResult(v any) (out any, halted Simple) {
	if s, ok := v.(Simple); ok {
		if s.IsHalt() {
			return nil, s
		}
		return s.Result(), nil
	}
	return v, nil
}

// unwrapContinuing flattens a continuing simple container to its payload.
// Halting containers and plain values pass through unchanged.
func unwrapContinuing(v any) any {
	if s, ok := v.(Simple); ok && s.IsRight() {
		return s.Result()
	}
	return v
}

// UnimplementedContainer is the abstract container: every operation
// raises a contract violation until overridden. Embed it to satisfy
// [Simple] when defining a new variant; the embedding also provides the
// capability marker that classification relies on.
type UnimplementedContainer struct{}

func (UnimplementedContainer) simpleContainer() {}

// String identifies the abstract container.
func (UnimplementedContainer) String() string { return "Container" }

func (UnimplementedContainer) Map(func(any) any) Simple {
	violate("Map is not implemented")
	return nil
}

func (UnimplementedContainer) Chain(func(any) Simple) Simple {
	violate("Chain is not implemented")
	return nil
}

func (UnimplementedContainer) Fold(func(any) any, func(any) any) any {
	violate("Fold is not implemented")
	return nil
}

func (UnimplementedContainer) GetOrElse(any) any {
	violate("GetOrElse is not implemented")
	return nil
}

func (UnimplementedContainer) Result() any {
	violate("Result is not implemented")
	return nil
}

func (UnimplementedContainer) Ap(Simple) Simple {
	violate("Ap is not implemented")
	return nil
}

func (UnimplementedContainer) OnFailMap(func(any) any) Simple {
	violate("OnFailMap is not implemented")
	return nil
}

func (UnimplementedContainer) OnFailChain(func(any) Simple) Simple {
	violate("OnFailChain is not implemented")
	return nil
}

func (UnimplementedContainer) OnNothingMap(func(any) any) Simple {
	violate("OnNothingMap is not implemented")
	return nil
}

func (UnimplementedContainer) OnNothingChain(func(any) Simple) Simple {
	violate("OnNothingChain is not implemented")
	return nil
}

func (UnimplementedContainer) IsRight() bool {
	violate("IsRight is not implemented")
	return false
}

func (UnimplementedContainer) IsHalt() bool {
	violate("IsHalt is not implemented")
	return false
}

func (UnimplementedContainer) IsSuccess() bool {
	violate("IsSuccess is not implemented")
	return false
}

func (UnimplementedContainer) IsFail() bool {
	violate("IsFail is not implemented")
	return false
}

func (UnimplementedContainer) IsJust() bool {
	violate("IsJust is not implemented")
	return false
}

func (UnimplementedContainer) IsNothing() bool {
	violate("IsNothing is not implemented")
	return false
}
