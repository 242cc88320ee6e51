// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import (
	"fmt"
	"reflect"

	"code.hybscloud.com/mable/internal/variant"
)

var optionalFamily = variant.NewFamily("Optional", "Absent", "Present")

const (
	caseAbsent variant.Case = iota
	casePresent
)

// Optional represents a value that is either Absent or Present.
// The zero Optional is Absent.
type Optional[T any] struct {
	tag   variant.Case
	value T
}

// Absent creates an Optional holding no value.
func Absent[T any]() Optional[T] {
	return Optional[T]{tag: caseAbsent}
}

// Present creates an Optional holding v.
// v is stored as is, even when it is a nil pointer; see [FromNullable].
func Present[T any](v T) Optional[T] {
	return Optional[T]{tag: casePresent, value: v}
}

// FromNullable returns Absent when v is nil, and Present(v) otherwise.
// Nil means an untyped nil or a nil pointer, interface, map, slice,
// channel or function.
func FromNullable[T any](v T) Optional[T] {
	if isNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

// FromPointer returns Present(*p), or Absent when p is nil.
func FromPointer[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromOk converts a comma-ok pair to an Optional.
//
//	v, ok := m[key]
//	opt := mable.FromOk(v, ok)
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsPresent returns true if o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.tag == casePresent
}

// IsAbsent returns true if o holds no value.
func (o Optional[T]) IsAbsent() bool {
	return o.tag != casePresent
}

// Get returns the value and true, or zero and false.
func (o Optional[T]) Get() (T, bool) {
	if o.tag == casePresent {
		return o.value, true
	}
	var zero T
	return zero, false
}

// WithDefault returns the held value, or d when o is Absent.
func (o Optional[T]) WithDefault(d T) T {
	return MatchOptional(o,
		func() T { return d },
		func(v T) T { return v },
	)
}

// OrElse returns o when it is Present, and FromNullable(d) otherwise.
// Calls can be chained to try several fallbacks in order.
func (o Optional[T]) OrElse(d T) Optional[T] {
	return MatchOptional(o,
		func() Optional[T] { return FromNullable(d) },
		Present[T],
	)
}

func (o Optional[T]) String() string {
	if o.tag == casePresent {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}

// OptionalPattern is a partial pattern over Optional.
// Nil handlers are unhandled cases; Otherwise runs for them.
type OptionalPattern[T, R any] struct {
	Absent    func() R
	Present   func(T) R
	Otherwise func() R
}

// MatchOptional pattern matches on o, calling onAbsent or onPresent.
// Both handlers are required.
func MatchOptional[T, R any](o Optional[T], onAbsent func() R, onPresent func(T) R) R {
	return variant.Dispatch(optionalFamily, o.tag, nil,
		variant.Unit(onAbsent),
		variant.Bind(onPresent, o.value),
	)
}

// CaseOfOptional dispatches o through a partial pattern.
// It panics with [*UnhandledCaseError] if the case of o has no handler
// and p.Otherwise is nil.
func CaseOfOptional[T, R any](o Optional[T], p OptionalPattern[T, R]) R {
	return variant.Dispatch(optionalFamily, o.tag, p.Otherwise,
		variant.Unit(p.Absent),
		variant.Bind(p.Present, o.value),
	)
}

// FoldOptional returns a function that dispatches its argument through p.
func FoldOptional[T, R any](p OptionalPattern[T, R]) func(Optional[T]) R {
	return func(o Optional[T]) R { return CaseOfOptional(o, p) }
}

// MapOptional applies f to the held value.
func MapOptional[T, R any](o Optional[T], f func(T) R) Optional[R] {
	return MatchOptional(o,
		Absent[R],
		func(v T) Optional[R] { return Present(f(v)) },
	)
}

// ChainOptional sequences two Optional computations.
func ChainOptional[T, R any](o Optional[T], f func(T) Optional[R]) Optional[R] {
	return MatchOptional(o, Absent[R], f)
}

// MapOptional2 applies f when both a and b are Present.
func MapOptional2[A, B, R any](a Optional[A], b Optional[B], f func(A, B) R) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return MapOptional(b, func(y B) R { return f(x, y) })
	})
}

// MapOptional3 applies f when a, b and c are all Present.
func MapOptional3[A, B, C, R any](a Optional[A], b Optional[B], c Optional[C], f func(A, B, C) R) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return MapOptional2(b, c, func(y B, z C) R { return f(x, y, z) })
	})
}

// MapOptional4 applies f when all four arguments are Present.
func MapOptional4[A, B, C, D, R any](a Optional[A], b Optional[B], c Optional[C], d Optional[D], f func(A, B, C, D) R) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return MapOptional3(b, c, d, func(y B, z C, w D) R { return f(x, y, z, w) })
	})
}

// MapOptional5 applies f when all five arguments are Present.
func MapOptional5[A, B, C, D, E, R any](a Optional[A], b Optional[B], c Optional[C], d Optional[D], e Optional[E], f func(A, B, C, D, E) R) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return MapOptional4(b, c, d, e, func(y B, z C, w D, u E) R { return f(x, y, z, w, u) })
	})
}

// ChainOptional2 is the two-argument form of [ChainOptional].
func ChainOptional2[A, B, R any](a Optional[A], b Optional[B], f func(A, B) Optional[R]) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return ChainOptional(b, func(y B) Optional[R] { return f(x, y) })
	})
}

func ChainOptional3[A, B, C, R any](a Optional[A], b Optional[B], c Optional[C], f func(A, B, C) Optional[R]) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return ChainOptional2(b, c, func(y B, z C) Optional[R] { return f(x, y, z) })
	})
}

func ChainOptional4[A, B, C, D, R any](a Optional[A], b Optional[B], c Optional[C], d Optional[D], f func(A, B, C, D) Optional[R]) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return ChainOptional3(b, c, d, func(y B, z C, w D) Optional[R] { return f(x, y, z, w) })
	})
}

func ChainOptional5[A, B, C, D, E, R any](a Optional[A], b Optional[B], c Optional[C], d Optional[D], e Optional[E], f func(A, B, C, D, E) Optional[R]) Optional[R] {
	return ChainOptional(a, func(x A) Optional[R] {
		return ChainOptional4(b, c, d, e, func(y B, z C, w D, u E) Optional[R] { return f(x, y, z, w, u) })
	})
}

// SequenceOptional collects the values of opts in order.
// The result is Absent as soon as one argument is Absent.
func SequenceOptional[T any](opts ...Optional[T]) Optional[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		v, ok := o.Get()
		if !ok {
			return Absent[[]T]()
		}
		values = append(values, v)
	}
	return Present(values)
}

// LiftOptional applies the variadic f over opts when all are Present.
func LiftOptional[T, R any](f func(...T) R, opts ...Optional[T]) Optional[R] {
	return MapOptional(SequenceOptional(opts...), func(vs []T) R { return f(vs...) })
}
