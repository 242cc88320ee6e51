// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant implements closed tagged unions and pattern dispatch
// over them.
//
// A [Family] declares the finite set of case names of a variant type.
// Values store a [Case] (an index into that set) and at most one payload.
// Dispatch receives one [Arm] per declared case, in declaration order, each
// with its payload already bound. A nil arm is a case the pattern does not
// handle; it falls through to the fallback, or panics with
// [*UnhandledCaseError] when there is none.
package variant

import (
	"strconv"
	"strings"
)

// Case is the discriminant of a variant value.
// It indexes the case names of the value's [Family].
type Case uint8

// Family declares the closed set of cases of a variant type.
// A Family is immutable after [NewFamily] returns.
type Family struct {
	name  string
	cases []string
}

// NewFamily declares a variant family with the given case names.
// Case i of the family is named cases[i].
func NewFamily(name string, cases ...string) *Family {
	if len(cases) == 0 || len(cases) > 256 {
		panic("variant: family must declare between 1 and 256 cases")
	}
	names := make([]string, len(cases))
	copy(names, cases)
	return &Family{name: name, cases: names}
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Len returns the number of declared cases.
func (f *Family) Len() int { return len(f.cases) }

// Valid reports whether c is a declared case of f.
func (f *Family) Valid(c Case) bool { return int(c) < len(f.cases) }

// CaseName returns the declared name of c, or "#n" for an undeclared case.
func (f *Family) CaseName(c Case) string {
	if f.Valid(c) {
		return f.cases[c]
	}
	return "#" + strconv.Itoa(int(c))
}

// Arm is a pattern handler with its payload already bound.
type Arm[R any] func() R

// Bind binds payload p to handler h. A nil handler yields a nil Arm.
func Bind[P, R any](h func(P) R, p P) Arm[R] {
	if h == nil {
		return nil
	}
	return func() R { return h(p) }
}

// Unit adapts a handler of a zero-payload case.
func Unit[R any](h func() R) Arm[R] {
	if h == nil {
		return nil
	}
	return Arm[R](h)
}

// Dispatch runs the arm of case c.
//
// arms are indexed by case. When c is undeclared, or its arm is nil,
// fallback runs instead. When fallback is also nil, Dispatch panics with
// an [*UnhandledCaseError].
func Dispatch[R any](f *Family, c Case, fallback func() R, arms ...Arm[R]) R {
	if f.Valid(c) && int(c) < len(arms) && arms[c] != nil {
		return arms[c]()
	}
	if fallback != nil {
		return fallback()
	}
	panic(unhandled(f, c, arms))
}

func unhandled[R any](f *Family, c Case, arms []Arm[R]) *UnhandledCaseError {
	handled := make([]string, 0, len(arms))
	for i, arm := range arms {
		if arm != nil {
			handled = append(handled, f.CaseName(Case(i)))
		}
	}
	return &UnhandledCaseError{
		Family:  f.name,
		Case:    f.CaseName(c),
		Handled: handled,
	}
}

// UnhandledCaseError reports a dispatch whose pattern had neither a
// handler for the actual case nor a fallback.
// It is raised with panic; no pattern exists to receive it as data.
type UnhandledCaseError struct {
	Family  string   // name of the variant family
	Case    string   // case the value held
	Handled []string // cases the pattern did handle
}

func (e *UnhandledCaseError) Error() string {
	var b strings.Builder
	b.WriteString("variant: unhandled case ")
	b.WriteString(strconv.Quote(e.Case))
	b.WriteString(" of ")
	b.WriteString(e.Family)
	b.WriteString(" (pattern handles ")
	if len(e.Handled) == 0 {
		b.WriteString("nothing")
	} else {
		b.WriteString(strings.Join(e.Handled, ", "))
	}
	b.WriteString(")")
	return b.String()
}
