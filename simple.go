// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "fmt"

// Shared behavior for the simple-container family.
//
// The four variants are two behavior patterns, not four: Success and Just
// continue, Fail and Nothing halt. Each pattern is one small value struct
// carrying a variant tag, so adding a variant means adding a tag, not a
// type hierarchy.

// variantKind tags the concrete simple variant. The tag decides both the
// family (Either or Maybe) and the branch (continuing or halting).
type variantKind uint8

const (
	kindSuccess variantKind = iota
	kindFail
	kindJust
	kindNothing
)

// String returns the variant name as printed by the containers.
func (k variantKind) String() string {
	switch k {
	case kindSuccess:
		return "Success"
	case kindFail:
		return "Fail"
	case kindJust:
		return "Just"
	default:
		return "Nothing"
	}
}

// counterpart returns the continuing variant of the same family.
// Only meaningful for halting tags.
func (k variantKind) counterpart() variantKind {
	if k == kindFail {
		return kindSuccess
	}
	return kindJust
}

// continuing is the behavior pattern shared by Success and Just.
// Immutable value; the payload propagates through Map and Chain.
type continuing struct {
	kind  variantKind
	value any
}

// halting is the behavior pattern shared by Fail and Nothing.
// Immutable value; Map, Chain and Ap return the receiver untouched and
// the payload is reachable only through Fold and the recovery hooks.
type halting struct {
	kind  variantKind
	value any
}

func (continuing) simpleContainer() {}
func (halting) simpleContainer() {}

var (
	_ Simple = continuing{}
	_ Simple = halting{}
)

func (c continuing) String() string {
	return fmt.Sprintf("%s(%v)", c.kind, c.value)
}

func (h halting) String() string {
	if h.kind == kindNothing {
		return "Nothing"
	}
	return fmt.Sprintf("%s(%v)", h.kind, h.value)
}

// Map applies f to the payload and rewraps in the same variant.
// f must return a plain value; returning a simple container would nest
// containers, which Chain exists for.
func (c continuing) Map(f func(any) any) Simple {
	if f == nil {
		violate("%s.Map: nil transformation", c.kind)
	}
	r := f(c.value)
	if IsSimpleContainer(r) {
		violate("%s.Map: transformation returned %v; use Chain to return a container", c.kind, r)
	}
	return continuing{kind: c.kind, value: r}
}

// Map returns the receiver; f is never invoked.
func (h halting) Map(func(any) any) Simple { return h }

// Chain applies f to the payload and returns its result directly.
func (c continuing) Chain(f func(any) Simple) Simple {
	if f == nil {
		violate("%s.Chain: nil transformation", c.kind)
	}
	r := f(c.value)
	if r == nil {
		violate("%s.Chain: transformation returned a nil container", c.kind)
	}
	return r
}

// Chain returns the receiver; f is never invoked.
func (h halting) Chain(func(any) Simple) Simple { return h }

func (c continuing) Fold(onRight, _ func(any) any) any {
	if onRight == nil {
		return c.value
	}
	return onRight(c.value)
}

func (h halting) Fold(_, onHalt func(any) any) any {
	if onHalt == nil {
		return h.value
	}
	return onHalt(h.value)
}

func (c continuing) GetOrElse(any) any { return c.value }
func (h halting) GetOrElse(def any) any { return def }

func (c continuing) Result() any { return c.value }

// Result raises a contract violation: a halting payload is never exposed
// through the primary accessor.
func (h halting) Result() any {
	violate("%s.Result: cannot extract the payload of a halting container", h.kind)
	return nil
}

// Ap applies the payload as a function to other's payload. The result is
// wrapped with other's own variant constructor, so the result's family
// follows the argument: Success(f).Ap(Just(5)) is a Just.
func (c continuing) Ap(other Simple) Simple {
	fn, ok := c.value.(func(any) any)
	if !ok {
		violate("%s.Ap: payload %v is not a func(any) any", c.kind, c.value)
	}
	if other == nil {
		violate("%s.Ap: nil argument container", c.kind)
	}
	if other.IsHalt() {
		return other
	}
	return wrapLike(other, fn(other.Result()))
}

// Ap returns the receiver; the argument is ignored.
func (h halting) Ap(Simple) Simple { return h }

// wrapLike wraps v using the variant constructor of the continuing
// container model.
func wrapLike(model Simple, v any) Simple {
	switch {
	case model.IsSuccess():
		return Success(v)
	case model.IsJust():
		return Just(v)
	default:
		violate("Ap: argument %v has no continuing variant constructor", model)
		return nil
	}
}

// Recovery hooks. A hook acts only when the receiver is the halting
// variant of the hook's own family; every other combination is a no-op,
// which is what allows Either and Maybe values to mix in one pipeline.

func (c continuing) OnFailMap(func(any) any) Simple { return c }
func (c continuing) OnFailChain(func(any) Simple) Simple { return c }
func (c continuing) OnNothingMap(func(any) any) Simple { return c }
func (c continuing) OnNothingChain(func(any) Simple) Simple { return c }

func (h halting) OnFailMap(f func(any) any) Simple {
	if h.kind != kindFail {
		return h
	}
	return h.recoverMap("OnFailMap", f)
}

func (h halting) OnFailChain(f func(any) Simple) Simple {
	if h.kind != kindFail {
		return h
	}
	return h.recoverChain("OnFailChain", f)
}

func (h halting) OnNothingMap(f func(any) any) Simple {
	if h.kind != kindNothing {
		return h
	}
	return h.recoverMap("OnNothingMap", f)
}

func (h halting) OnNothingChain(f func(any) Simple) Simple {
	if h.kind != kindNothing {
		return h
	}
	return h.recoverChain("OnNothingChain", f)
}

// recoverMap wraps f's result in the continuing counterpart of the same
// family. The result must be a plain value.
func (h halting) recoverMap(op string, f func(any) any) Simple {
	if f == nil {
		violate("%s.%s: nil recovery", h.kind, op)
	}
	r := f(h.value)
	if IsContainer(r) {
		violate("%s.%s: recovery returned %v; want a plain value", h.kind, op, r)
	}
	return continuing{kind: h.kind.counterpart(), value: r}
}

// recoverChain returns f's result directly.
func (h halting) recoverChain(op string, f func(any) Simple) Simple {
	if f == nil {
		violate("%s.%s: nil recovery", h.kind, op)
	}
	r := f(h.value)
	if r == nil {
		violate("%s.%s: recovery returned a nil container", h.kind, op)
	}
	return r
}

// Identification predicates. Exactly one of the four variant predicates
// holds per value; IsRight and IsHalt partition the same four variants by
// branch instead of by name.

func (c continuing) IsRight() bool { return true }
func (c continuing) IsHalt() bool { return false }
func (c continuing) IsSuccess() bool { return c.kind == kindSuccess }
func (c continuing) IsFail() bool { return false }
func (c continuing) IsJust() bool { return c.kind == kindJust }
func (c continuing) IsNothing() bool { return false }

func (h halting) IsRight() bool { return false }
func (h halting) IsHalt() bool { return true }
func (h halting) IsSuccess() bool { return false }
func (h halting) IsFail() bool { return h.kind == kindFail }
func (h halting) IsJust() bool { return false }
func (h halting) IsNothing() bool { return h.kind == kindNothing }
