// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mable provides algebraic container types for Go: an optional
// value, a success/failure outcome, and a four-state load status, with
// combinators for working on wrapped values without nil checks or
// sentinel errors.
//
// Each type is a closed tagged union. A value holds exactly one case and
// at most one payload, is immutable, and compares by its payload.
//
// # Dispatch
//
// Every type offers two pattern shapes:
//
//   - Match functions ([MatchOptional], [MatchOutcome], [MatchLoadStatus])
//     take one handler per case as positional arguments, so a forgotten
//     case does not compile.
//   - CaseOf functions ([CaseOfOptional], [CaseOfOutcome], [CaseOfLoadStatus])
//     take a pattern struct where handlers may be left nil and an
//     Otherwise handler runs for them.
//
// A dispatch that reaches a nil handler with no Otherwise panics with
// [*UnhandledCaseError].
//
// Fold functions return the CaseOf dispatch as a reusable function.
//
// # Optional
//
// [Optional] is either Absent or Present:
//
//   - [Absent], [Present]: Constructors
//   - [FromNullable], [FromPointer], [FromOk]: Conversions from Go idioms
//   - [Optional.WithDefault], [Optional.OrElse]: Fallbacks
//   - [MapOptional], [ChainOptional]: Functor map and monadic bind
//   - [MapOptional2] to [MapOptional5], [ChainOptional2] to [ChainOptional5]:
//     Multi-argument forms, Absent if any argument is Absent
//   - [SequenceOptional], [LiftOptional]: Variadic forms
//
// # Outcome
//
// [Outcome] is either Failure (error of type E) or Success (value of type T):
//
//   - [Failure], [Success], [FromTuple]: Constructors
//   - [MapOutcome], [MapOutcomeError], [ChainOutcome]: Transformations
//   - [Outcome.WithDefault]: Fallback
//   - [Outcome.ToOptional], [OutcomeFromOptional]: Conversions
//   - [MapOutcome2] to [MapOutcome5], [ChainOutcome2] to [ChainOutcome5],
//     [SequenceOutcome], [LiftOutcome]: Stop at the first Failure in
//     argument order and return its error unchanged
//   - [Combine]: Inspects every named outcome and collects all failures
//   - [Outcome.Assert]: Returns the value or panics with the error
//
// [Outcome.Assert] is the only operation in the package that turns a
// domain failure into a panic.
//
// # LoadStatus
//
// [LoadStatus] tracks a fetch: NotStarted, InProgress, Failed or Succeeded.
//
//   - [NotStarted], [InProgress], [Failed], [Succeeded]: Constructors
//   - [MapLoadStatus], [MapLoadStatusError], [ChainLoadStatus]: Transformations
//   - [LoadStatus.WithDefault], [LoadStatus.ToOptional], [LoadStatus.ToOutcome]
//   - [LoadStatusFromOptional], [LoadStatusFromOutcome]
//
// Conversions into LoadStatus only produce Failed or Succeeded. NotStarted
// and InProgress are entered by the caller's own state transitions.
//
// # Tasks
//
// [Task] is a deferred computation that reports an [Outcome] to a callback
// once, possibly on another goroutine:
//
//   - [Done], [Resolve], [Reject]: Immediate tasks
//   - [MapTask], [ChainTask]: Sequencing
//   - [Guard]: Forward only the first completion
//   - [Attempt]: Turn a Task into a [Command] delivering a mapped message
//   - [Run]: Collect the outcome of a synchronous task
//
// [WithLogger] and [WithName] configure logging of task completions with zap.
//
// # Example
//
//	parse := func(s string) mable.Outcome[string, int] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return mable.Failure[string, int](fmt.Sprintf("%q is not a number", s))
//		}
//		return mable.Success[string](n)
//	}
//
//	status := mable.LoadStatusFromOutcome(parse("42"))
//	// status == mable.Succeeded[string](42)
package mable
