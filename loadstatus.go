// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import (
	"fmt"

	"code.hybscloud.com/mable/internal/variant"
)

var loadStatusFamily = variant.NewFamily("LoadStatus", "NotStarted", "InProgress", "Failed", "Succeeded")

const (
	caseNotStarted variant.Case = iota
	caseInProgress
	caseFailed
	caseSucceeded
)

// LoadStatus represents the lifecycle of an asynchronous fetch:
// NotStarted, InProgress, Failed with an error of type E, or Succeeded
// with a value of type T. The zero LoadStatus is NotStarted.
type LoadStatus[E, T any] struct {
	tag   variant.Case
	err   E
	value T
}

// NotStarted creates a LoadStatus for a fetch that has not been requested.
func NotStarted[E, T any]() LoadStatus[E, T] {
	return LoadStatus[E, T]{tag: caseNotStarted}
}

// InProgress creates a LoadStatus for a fetch awaiting its result.
func InProgress[E, T any]() LoadStatus[E, T] {
	return LoadStatus[E, T]{tag: caseInProgress}
}

// Failed creates a LoadStatus for a fetch that failed with e.
func Failed[E, T any](e E) LoadStatus[E, T] {
	return LoadStatus[E, T]{tag: caseFailed, err: e}
}

// Succeeded creates a LoadStatus for a fetch that produced v.
func Succeeded[E, T any](v T) LoadStatus[E, T] {
	return LoadStatus[E, T]{tag: caseSucceeded, value: v}
}

func (s LoadStatus[E, T]) IsNotStarted() bool { return s.tag == caseNotStarted }
func (s LoadStatus[E, T]) IsInProgress() bool { return s.tag == caseInProgress }
func (s LoadStatus[E, T]) IsFailed() bool     { return s.tag == caseFailed }
func (s LoadStatus[E, T]) IsSucceeded() bool  { return s.tag == caseSucceeded }

// GetValue returns the Succeeded value and true, or zero and false.
func (s LoadStatus[E, T]) GetValue() (T, bool) {
	if s.tag == caseSucceeded {
		return s.value, true
	}
	var zero T
	return zero, false
}

// GetError returns the Failed error and true, or zero and false.
func (s LoadStatus[E, T]) GetError() (E, bool) {
	if s.tag == caseFailed {
		return s.err, true
	}
	var zero E
	return zero, false
}

// WithDefault returns the Succeeded value, or d for the other three cases.
func (s LoadStatus[E, T]) WithDefault(d T) T {
	return CaseOfLoadStatus(s, LoadStatusPattern[E, T, T]{
		Succeeded: func(v T) T { return v },
		Otherwise: func() T { return d },
	})
}

// ToOptional returns Present for Succeeded and Absent otherwise.
func (s LoadStatus[E, T]) ToOptional() Optional[T] {
	return CaseOfLoadStatus(s, LoadStatusPattern[E, T, Optional[T]]{
		Succeeded: Present[T],
		Otherwise: Absent[T],
	})
}

// ToOutcome converts s to an Outcome. Failed and Succeeded map to Failure
// and Success; NotStarted and InProgress have no counterpart and become
// Failure(pending).
func (s LoadStatus[E, T]) ToOutcome(pending E) Outcome[E, T] {
	return CaseOfLoadStatus(s, LoadStatusPattern[E, T, Outcome[E, T]]{
		Failed:    Failure[E, T],
		Succeeded: Success[E, T],
		Otherwise: func() Outcome[E, T] { return Failure[E, T](pending) },
	})
}

func (s LoadStatus[E, T]) String() string {
	switch s.tag {
	case caseFailed:
		return fmt.Sprintf("Failed(%v)", s.err)
	case caseSucceeded:
		return fmt.Sprintf("Succeeded(%v)", s.value)
	}
	return loadStatusFamily.CaseName(s.tag)
}

// LoadStatusFromOptional returns Succeeded for Present and Failed(e) for
// Absent. It never yields NotStarted or InProgress.
func LoadStatusFromOptional[E, T any](opt Optional[T], e E) LoadStatus[E, T] {
	return MatchOptional(opt,
		func() LoadStatus[E, T] { return Failed[E, T](e) },
		Succeeded[E, T],
	)
}

// LoadStatusFromOutcome maps Failure to Failed and Success to Succeeded.
// It never yields NotStarted or InProgress.
func LoadStatusFromOutcome[E, T any](o Outcome[E, T]) LoadStatus[E, T] {
	return MatchOutcome(o, Failed[E, T], Succeeded[E, T])
}

// LoadStatusPattern is a partial pattern over LoadStatus.
type LoadStatusPattern[E, T, R any] struct {
	NotStarted func() R
	InProgress func() R
	Failed     func(E) R
	Succeeded  func(T) R
	Otherwise  func() R
}

// MatchLoadStatus pattern matches on s. All four handlers are required.
func MatchLoadStatus[E, T, R any](
	s LoadStatus[E, T],
	onNotStarted func() R,
	onInProgress func() R,
	onFailed func(E) R,
	onSucceeded func(T) R,
) R {
	return variant.Dispatch(loadStatusFamily, s.tag, nil,
		variant.Unit(onNotStarted),
		variant.Unit(onInProgress),
		variant.Bind(onFailed, s.err),
		variant.Bind(onSucceeded, s.value),
	)
}

// CaseOfLoadStatus dispatches s through a partial pattern.
// It panics with [*UnhandledCaseError] if the case of s has no handler
// and p.Otherwise is nil.
func CaseOfLoadStatus[E, T, R any](s LoadStatus[E, T], p LoadStatusPattern[E, T, R]) R {
	return variant.Dispatch(loadStatusFamily, s.tag, p.Otherwise,
		variant.Unit(p.NotStarted),
		variant.Unit(p.InProgress),
		variant.Bind(p.Failed, s.err),
		variant.Bind(p.Succeeded, s.value),
	)
}

// FoldLoadStatus returns a function that dispatches its argument through p.
func FoldLoadStatus[E, T, R any](p LoadStatusPattern[E, T, R]) func(LoadStatus[E, T]) R {
	return func(s LoadStatus[E, T]) R { return CaseOfLoadStatus(s, p) }
}

// MapLoadStatus applies f to the Succeeded value. Other cases pass through.
func MapLoadStatus[E, T, R any](s LoadStatus[E, T], f func(T) R) LoadStatus[E, R] {
	return ChainLoadStatus(s, func(v T) LoadStatus[E, R] { return Succeeded[E](f(v)) })
}

// MapLoadStatusError applies f to the Failed error. Other cases pass through.
func MapLoadStatusError[E, F, T any](s LoadStatus[E, T], f func(E) F) LoadStatus[F, T] {
	return MatchLoadStatus(s,
		NotStarted[F, T],
		InProgress[F, T],
		func(e E) LoadStatus[F, T] { return Failed[F, T](f(e)) },
		Succeeded[F, T],
	)
}

// ChainLoadStatus applies f to the Succeeded value. Other cases pass
// through as themselves.
func ChainLoadStatus[E, T, R any](s LoadStatus[E, T], f func(T) LoadStatus[E, R]) LoadStatus[E, R] {
	return MatchLoadStatus(s,
		NotStarted[E, R],
		InProgress[E, R],
		Failed[E, R],
		f,
	)
}
