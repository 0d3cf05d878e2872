// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "reflect"

// Maybe family: optional values as data.
// Just carries a present value; Nothing short-circuits the pipeline and
// answers only the OnNothing recovery hooks.

// Just wraps v in the continuing Maybe variant.
func Just(v any) Simple {
	return continuing{kind: kindJust, value: v}
}

// Nothing is the halting Maybe variant. An optional payload records what
// was classified as absent; it is reachable only through Fold and the
// OnNothing recovery hooks.
func Nothing(v ...any) Simple {
	var payload any
	if len(v) > 0 {
		payload = v[0]
	}
	return halting{kind: kindNothing, value: payload}
}

// FromNullable classifies v: nil, including a typed nil pointer, map,
// slice, channel or function, becomes Nothing unconditionally. An
// optional predicate can classify further values as empty. Everything
// else becomes Just — zero values such as 0 and "" are present.
func FromNullable(v any, isEmpty ...func(any) bool) Simple {
	if isNil(v) {
		return Nothing(v)
	}
	for _, p := range isEmpty {
		if p != nil && p(v) {
			return Nothing(v)
		}
	}
	return Just(v)
}

// isNil reports whether v is nil or a typed nil of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
