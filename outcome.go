// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import (
	"fmt"

	"code.hybscloud.com/mable/internal/variant"
)

var outcomeFamily = variant.NewFamily("Outcome", "Failure", "Success")

const (
	caseFailure variant.Case = iota
	caseSuccess
)

// Outcome represents the result of a fallible computation: either a
// Failure carrying an error of type E, or a Success carrying a value of
// type T. E and T are independent; E need not implement error.
//
// The zero Outcome is a Failure holding the zero E. Construct values with
// [Failure] and [Success].
type Outcome[E, T any] struct {
	tag   variant.Case
	err   E
	value T
}

// Failure creates a failed Outcome.
func Failure[E, T any](e E) Outcome[E, T] {
	return Outcome[E, T]{tag: caseFailure, err: e}
}

// Success creates a successful Outcome.
func Success[E, T any](v T) Outcome[E, T] {
	return Outcome[E, T]{tag: caseSuccess, value: v}
}

// FromTuple converts a Go (value, error) pair to an Outcome.
// A non-nil err yields Failure(err); v is discarded.
func FromTuple[T any](v T, err error) Outcome[error, T] {
	if err != nil {
		return Failure[error, T](err)
	}
	return Success[error](v)
}

// IsSuccess returns true if this is a Success value.
func (o Outcome[E, T]) IsSuccess() bool {
	return o.tag == caseSuccess
}

// IsFailure returns true if this is a Failure value.
func (o Outcome[E, T]) IsFailure() bool {
	return o.tag != caseSuccess
}

// GetValue returns the Success value and true, or zero and false.
func (o Outcome[E, T]) GetValue() (T, bool) {
	if o.tag == caseSuccess {
		return o.value, true
	}
	var zero T
	return zero, false
}

// GetError returns the Failure error and true, or zero and false.
func (o Outcome[E, T]) GetError() (E, bool) {
	if o.tag != caseSuccess {
		return o.err, true
	}
	var zero E
	return zero, false
}

// WithDefault returns the Success value, or d for a Failure.
func (o Outcome[E, T]) WithDefault(d T) T {
	return MatchOutcome(o,
		func(E) T { return d },
		func(v T) T { return v },
	)
}

// Assert returns the Success value. For a Failure it panics with the
// error payload.
//
// Assert is the only operation of this package that aborts the caller on
// a domain failure. Prefer [Outcome.WithDefault] or [MatchOutcome].
func (o Outcome[E, T]) Assert() T {
	if o.tag != caseSuccess {
		panic(o.err)
	}
	return o.value
}

// ToOptional converts o to an Optional. The error of a Failure is dropped.
func (o Outcome[E, T]) ToOptional() Optional[T] {
	return MatchOutcome(o,
		func(E) Optional[T] { return Absent[T]() },
		Present[T],
	)
}

func (o Outcome[E, T]) String() string {
	if o.tag == caseSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}

// OutcomeFromOptional converts opt to an Outcome, using e for Absent.
func OutcomeFromOptional[E, T any](opt Optional[T], e E) Outcome[E, T] {
	return MatchOptional(opt,
		func() Outcome[E, T] { return Failure[E, T](e) },
		Success[E, T],
	)
}

// OutcomePattern is a partial pattern over Outcome.
type OutcomePattern[E, T, R any] struct {
	Failure   func(E) R
	Success   func(T) R
	Otherwise func() R
}

// MatchOutcome pattern matches on o, calling onFailure or onSuccess.
// Both handlers are required.
func MatchOutcome[E, T, R any](o Outcome[E, T], onFailure func(E) R, onSuccess func(T) R) R {
	return variant.Dispatch(outcomeFamily, o.tag, nil,
		variant.Bind(onFailure, o.err),
		variant.Bind(onSuccess, o.value),
	)
}

// CaseOfOutcome dispatches o through a partial pattern.
// It panics with [*UnhandledCaseError] if the case of o has no handler
// and p.Otherwise is nil.
func CaseOfOutcome[E, T, R any](o Outcome[E, T], p OutcomePattern[E, T, R]) R {
	return variant.Dispatch(outcomeFamily, o.tag, p.Otherwise,
		variant.Bind(p.Failure, o.err),
		variant.Bind(p.Success, o.value),
	)
}

// FoldOutcome returns a function that dispatches its argument through p.
func FoldOutcome[E, T, R any](p OutcomePattern[E, T, R]) func(Outcome[E, T]) R {
	return func(o Outcome[E, T]) R { return CaseOfOutcome(o, p) }
}

// MapOutcome applies f to the Success value.
func MapOutcome[E, T, R any](o Outcome[E, T], f func(T) R) Outcome[E, R] {
	return MatchOutcome(o,
		Failure[E, R],
		func(v T) Outcome[E, R] { return Success[E](f(v)) },
	)
}

// MapOutcomeError applies f to the Failure error.
func MapOutcomeError[E, F, T any](o Outcome[E, T], f func(E) F) Outcome[F, T] {
	return MatchOutcome(o,
		func(e E) Outcome[F, T] { return Failure[F, T](f(e)) },
		Success[F, T],
	)
}

// ChainOutcome sequences two Outcome computations.
func ChainOutcome[E, T, R any](o Outcome[E, T], f func(T) Outcome[E, R]) Outcome[E, R] {
	return MatchOutcome(o, Failure[E, R], f)
}

// Combine aggregates named outcomes.
//
// If every input is a Success, the result is a Success mapping each name
// to its value. Otherwise it is a Failure mapping the name of every failed
// input to its error; names that succeeded are omitted. All inputs are
// inspected, unlike the short-circuiting MapOutcome2 family.
func Combine[E, T any](outcomes map[string]Outcome[E, T]) Outcome[map[string]E, map[string]T] {
	values := make(map[string]T, len(outcomes))
	var errs map[string]E
	for name, o := range outcomes {
		if e, failed := o.GetError(); failed {
			if errs == nil {
				errs = make(map[string]E)
			}
			errs[name] = e
			continue
		}
		values[name] = o.value
	}
	if errs != nil {
		return Failure[map[string]E, map[string]T](errs)
	}
	return Success[map[string]E](values)
}

// MapOutcome2 applies f when both a and b are Success.
// The first Failure in argument order is returned unchanged.
func MapOutcome2[E, A, B, R any](a Outcome[E, A], b Outcome[E, B], f func(A, B) R) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return MapOutcome(b, func(y B) R { return f(x, y) })
	})
}

func MapOutcome3[E, A, B, C, R any](a Outcome[E, A], b Outcome[E, B], c Outcome[E, C], f func(A, B, C) R) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return MapOutcome2(b, c, func(y B, z C) R { return f(x, y, z) })
	})
}

func MapOutcome4[E, A, B, C, D, R any](a Outcome[E, A], b Outcome[E, B], c Outcome[E, C], d Outcome[E, D], f func(A, B, C, D) R) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return MapOutcome3(b, c, d, func(y B, z C, w D) R { return f(x, y, z, w) })
	})
}

func MapOutcome5[E, A, B, C, D, F, R any](a Outcome[E, A], b Outcome[E, B], c Outcome[E, C], d Outcome[E, D], e Outcome[E, F], f func(A, B, C, D, F) R) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return MapOutcome4(b, c, d, e, func(y B, z C, w D, u F) R { return f(x, y, z, w, u) })
	})
}

// ChainOutcome2 is the two-argument form of [ChainOutcome].
func ChainOutcome2[E, A, B, R any](a Outcome[E, A], b Outcome[E, B], f func(A, B) Outcome[E, R]) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return ChainOutcome(b, func(y B) Outcome[E, R] { return f(x, y) })
	})
}

func ChainOutcome3[E, A, B, C, R any](a Outcome[E, A], b Outcome[E, B], c Outcome[E, C], f func(A, B, C) Outcome[E, R]) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return ChainOutcome2(b, c, func(y B, z C) Outcome[E, R] { return f(x, y, z) })
	})
}

func ChainOutcome4[E, A, B, C, D, R any](a Outcome[E, A], b Outcome[E, B], c Outcome[E, C], d Outcome[E, D], f func(A, B, C, D) Outcome[E, R]) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return ChainOutcome3(b, c, d, func(y B, z C, w D) Outcome[E, R] { return f(x, y, z, w) })
	})
}

func ChainOutcome5[E, A, B, C, D, F, R any](a Outcome[E, A], b Outcome[E, B], c Outcome[E, C], d Outcome[E, D], e Outcome[E, F], f func(A, B, C, D, F) Outcome[E, R]) Outcome[E, R] {
	return ChainOutcome(a, func(x A) Outcome[E, R] {
		return ChainOutcome4(b, c, d, e, func(y B, z C, w D, u F) Outcome[E, R] { return f(x, y, z, w, u) })
	})
}

// SequenceOutcome collects the values of outcomes in order, stopping at
// the first Failure.
func SequenceOutcome[E, T any](outcomes ...Outcome[E, T]) Outcome[E, []T] {
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if e, failed := o.GetError(); failed {
			return Failure[E, []T](e)
		}
		values = append(values, o.value)
	}
	return Success[E](values)
}

// LiftOutcome applies the variadic f over outcomes when all are Success.
func LiftOutcome[E, T, R any](f func(...T) R, outcomes ...Outcome[E, T]) Outcome[E, R] {
	return MapOutcome(SequenceOutcome(outcomes...), func(vs []T) R { return f(vs...) })
}
