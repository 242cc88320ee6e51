// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import (
	"sync"

	"go.uber.org/zap"
)

// Callback receives the outcome of a [Task].
type Callback[E, T any] func(Outcome[E, T])

// Task is a deferred fallible computation in continuation-passing style.
//
// Calling a Task starts it. The Task reports its outcome by calling the
// callback once, at any later point and on any goroutine. Cancellation,
// retry and timeout belong to whoever implements the Task.
type Task[E, T any] func(Callback[E, T])

// Command is a deferred computation that delivers a message of type M.
type Command[M any] func(func(M))

// Done creates a Task that completes immediately with o.
func Done[E, T any](o Outcome[E, T]) Task[E, T] {
	return func(k Callback[E, T]) {
		k(o)
	}
}

// Resolve creates a Task that completes immediately with Success(v).
func Resolve[E, T any](v T) Task[E, T] {
	return Done(Success[E](v))
}

// Reject creates a Task that completes immediately with Failure(e).
func Reject[E, T any](e E) Task[E, T] {
	return Done(Failure[E, T](e))
}

// MapTask applies f to the Success value of t.
func MapTask[E, T, R any](t Task[E, T], f func(T) R) Task[E, R] {
	return func(k Callback[E, R]) {
		t(func(o Outcome[E, T]) {
			k(MapOutcome(o, f))
		})
	}
}

// ChainTask runs t, then the task f returns for its Success value.
// A Failure of t completes the result without calling f.
func ChainTask[E, T, R any](t Task[E, T], f func(T) Task[E, R]) Task[E, R] {
	return func(k Callback[E, R]) {
		t(func(o Outcome[E, T]) {
			if v, ok := o.GetValue(); ok {
				f(v)(k)
				return
			}
			e, _ := o.GetError()
			k(Failure[E, R](e))
		})
	}
}

// Guard returns a Task that forwards only the first completion of t.
// Later completions are dropped and logged at warn level.
func Guard[E, T any](t Task[E, T], opts ...TaskOption) Task[E, T] {
	return guard(t, newTaskConfig(opts))
}

func guard[E, T any](t Task[E, T], cfg taskConfig) Task[E, T] {
	return func(k Callback[E, T]) {
		shot := once[Outcome[E, T]](k)
		t(func(o Outcome[E, T]) {
			if n, ok := shot.tryResume(o); !ok {
				cfg.logger.Warn("mable: dropped duplicate completion",
					zap.String("task", cfg.name),
					zap.Uint32("completion", n),
					zap.Stringer("outcome", o),
				)
			}
		})
	}
}

// Attempt maps the outcome of a task to a message.
//
// The returned function turns a Task into a Command. When the Command runs,
// it starts the task; once the task completes, f transforms its outcome
// and the result is passed to the Command's callback. The callback runs
// after the task completes and after f returns, and at most once (see
// [Guard]).
//
//	toMsg := mable.Attempt(func(o mable.Outcome[string, int]) Msg { ... })
//	toMsg(fetchNumber)(dispatch)
func Attempt[E, T, M any](f func(Outcome[E, T]) M, opts ...TaskOption) func(Task[E, T]) Command[M] {
	cfg := newTaskConfig(opts)
	return func(t Task[E, T]) Command[M] {
		guarded := guard(t, cfg)
		return func(k func(M)) {
			guarded(func(o Outcome[E, T]) {
				cfg.logger.Debug("mable: task completed",
					zap.String("task", cfg.name),
					zap.Bool("success", o.IsSuccess()),
				)
				k(f(o))
			})
		}
	}
}

// Run starts t and returns its outcome if t completes before Run returns.
// ok is false for a task that completes later; that completion is
// discarded.
func Run[E, T any](t Task[E, T]) (result Outcome[E, T], ok bool) {
	var (
		mu       sync.Mutex
		done     bool
		returned bool
		out      Outcome[E, T]
	)
	t(func(o Outcome[E, T]) {
		mu.Lock()
		defer mu.Unlock()
		if done || returned {
			return
		}
		out, done = o, true
	})
	mu.Lock()
	defer mu.Unlock()
	returned = true
	return out, done
}
