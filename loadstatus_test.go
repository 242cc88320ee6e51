// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.hybscloud.com/mable"
)

type status = mable.LoadStatus[string, int]

func panicValue(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

var _ = Describe("LoadStatus", func() {
	var (
		notStarted status
		inProgress status
		failed     status
		succeeded  status
	)

	BeforeEach(func() {
		notStarted = mable.NotStarted[string, int]()
		inProgress = mable.InProgress[string, int]()
		failed = mable.Failed[string, int]("An error")
		succeeded = mable.Succeeded[string](42)
	})

	describeStatus := func(s status) string {
		return mable.MatchLoadStatus(s,
			func() string { return "NotStarted" },
			func() string { return "InProgress" },
			func(e string) string { return "Failed: " + e },
			func(v int) string { return "Succeeded: " + strconv.Itoa(v) },
		)
	}

	It("has NotStarted as its zero value", func() {
		var zero status
		Expect(zero.IsNotStarted()).To(BeTrue())
		Expect(zero).To(Equal(notStarted))
	})

	It("reports exactly one case", func() {
		Expect([]bool{notStarted.IsNotStarted(), notStarted.IsInProgress(), notStarted.IsFailed(), notStarted.IsSucceeded()}).
			To(Equal([]bool{true, false, false, false}))
		Expect([]bool{inProgress.IsNotStarted(), inProgress.IsInProgress(), inProgress.IsFailed(), inProgress.IsSucceeded()}).
			To(Equal([]bool{false, true, false, false}))
		Expect([]bool{failed.IsNotStarted(), failed.IsInProgress(), failed.IsFailed(), failed.IsSucceeded()}).
			To(Equal([]bool{false, false, true, false}))
		Expect([]bool{succeeded.IsNotStarted(), succeeded.IsInProgress(), succeeded.IsFailed(), succeeded.IsSucceeded()}).
			To(Equal([]bool{false, false, false, true}))
	})

	It("exposes payloads through accessors", func() {
		v, ok := succeeded.GetValue()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(42))
		e, ok := failed.GetError()
		Expect(ok).To(BeTrue())
		Expect(e).To(Equal("An error"))
		_, ok = inProgress.GetValue()
		Expect(ok).To(BeFalse())
		_, ok = inProgress.GetError()
		Expect(ok).To(BeFalse())
	})

	Describe("MatchLoadStatus", func() {
		It("calls the handler of each case", func() {
			Expect(describeStatus(notStarted)).To(Equal("NotStarted"))
			Expect(describeStatus(inProgress)).To(Equal("InProgress"))
			Expect(describeStatus(failed)).To(Equal("Failed: An error"))
			Expect(describeStatus(succeeded)).To(Equal("Succeeded: 42"))
		})

		It("panics with UnhandledCaseError on a nil handler", func() {
			v := panicValue(func() {
				mable.MatchLoadStatus(inProgress,
					func() int { return 0 }, nil,
					func(string) int { return 0 },
					func(int) int { return 0 },
				)
			})
			Expect(v).To(BeAssignableToTypeOf(&mable.UnhandledCaseError{}))
			Expect(v.(*mable.UnhandledCaseError).Case).To(Equal("InProgress"))
		})
	})

	Describe("CaseOfLoadStatus", func() {
		pattern := mable.LoadStatusPattern[string, int, string]{
			Succeeded: strconv.Itoa,
			Otherwise: func() string { return "pending" },
		}

		It("falls back for cases without a handler", func() {
			Expect(mable.CaseOfLoadStatus(succeeded, pattern)).To(Equal("42"))
			Expect(mable.CaseOfLoadStatus(notStarted, pattern)).To(Equal("pending"))
			Expect(mable.FoldLoadStatus(pattern)(failed)).To(Equal("pending"))
		})

		It("panics when neither a handler nor a fallback exists", func() {
			partial := mable.LoadStatusPattern[string, int, string]{Succeeded: strconv.Itoa}
			v := panicValue(func() { mable.CaseOfLoadStatus(failed, partial) })
			uce, ok := v.(*mable.UnhandledCaseError)
			Expect(ok).To(BeTrue())
			Expect(uce.Family).To(Equal("LoadStatus"))
			Expect(uce.Case).To(Equal("Failed"))
			Expect(uce.Handled).To(Equal([]string{"Succeeded"}))
		})
	})

	DescribeTable("MapLoadStatus",
		func(in status, want string) {
			twice := func(n int) int { return n * 2 }
			Expect(describeStatus(mable.MapLoadStatus(in, twice))).To(Equal(want))
		},
		Entry("NotStarted", mable.NotStarted[string, int](), "NotStarted"),
		Entry("InProgress", mable.InProgress[string, int](), "InProgress"),
		Entry("Failed", mable.Failed[string, int]("An error"), "Failed: An error"),
		Entry("Succeeded", mable.Succeeded[string](21), "Succeeded: 42"),
	)

	DescribeTable("MapLoadStatusError",
		func(in status, want string) {
			exclaim := func(s string) string { return s + "!" }
			Expect(describeStatus(mable.MapLoadStatusError(in, exclaim))).To(Equal(want))
		},
		Entry("NotStarted", mable.NotStarted[string, int](), "NotStarted"),
		Entry("InProgress", mable.InProgress[string, int](), "InProgress"),
		Entry("Failed", mable.Failed[string, int]("An error"), "Failed: An error!"),
		Entry("Succeeded", mable.Succeeded[string](42), "Succeeded: 42"),
	)

	Describe("ChainLoadStatus", func() {
		parse := func(s string) status {
			return mable.LoadStatusFromOutcome(parseOutcome(s))
		}

		It("only calls the function for Succeeded", func() {
			Expect(mable.ChainLoadStatus(mable.NotStarted[string, string](), parse)).To(Equal(notStarted))
			Expect(mable.ChainLoadStatus(mable.InProgress[string, string](), parse)).To(Equal(inProgress))
			Expect(mable.ChainLoadStatus(mable.Failed[string, string]("An error"), parse)).To(Equal(failed))
			Expect(mable.ChainLoadStatus(mable.Succeeded[string]("42"), parse)).To(Equal(succeeded))
		})

		It("reports parse failures", func() {
			Expect(mable.ChainLoadStatus(mable.Succeeded[string]("abc"), parse)).
				To(Equal(mable.Failed[string, int](`"abc" is not a number`)))
		})
	})

	It("returns the default for every case but Succeeded", func() {
		Expect(notStarted.WithDefault(21)).To(Equal(21))
		Expect(inProgress.WithDefault(21)).To(Equal(21))
		Expect(failed.WithDefault(21)).To(Equal(21))
		Expect(succeeded.WithDefault(21)).To(Equal(42))
	})

	It("converts to Optional", func() {
		Expect(notStarted.ToOptional()).To(Equal(mable.Absent[int]()))
		Expect(inProgress.ToOptional()).To(Equal(mable.Absent[int]()))
		Expect(failed.ToOptional()).To(Equal(mable.Absent[int]()))
		Expect(succeeded.ToOptional()).To(Equal(mable.Present(42)))
	})

	It("converts to Outcome with a pending error", func() {
		Expect(notStarted.ToOutcome("pending")).To(Equal(mable.Failure[string, int]("pending")))
		Expect(inProgress.ToOutcome("pending")).To(Equal(mable.Failure[string, int]("pending")))
		Expect(failed.ToOutcome("pending")).To(Equal(mable.Failure[string, int]("An error")))
		Expect(succeeded.ToOutcome("pending")).To(Equal(mable.Success[string](42)))
	})

	It("formats each case", func() {
		Expect(notStarted.String()).To(Equal("NotStarted"))
		Expect(inProgress.String()).To(Equal("InProgress"))
		Expect(failed.String()).To(Equal("Failed(An error)"))
		Expect(succeeded.String()).To(Equal("Succeeded(42)"))
	})

	Describe("conversions into LoadStatus", func() {
		It("maps Optional to Succeeded or Failed", func() {
			Expect(mable.LoadStatusFromOptional(mable.Present(42), "missing")).To(Equal(succeeded))
			Expect(mable.LoadStatusFromOptional(mable.Absent[int](), "missing")).
				To(Equal(mable.Failed[string, int]("missing")))
		})

		It("maps Outcome to Succeeded or Failed", func() {
			Expect(mable.LoadStatusFromOutcome(mable.Failure[string, int]("boom"))).
				To(Equal(mable.Failed[string, int]("boom")))
			Expect(mable.LoadStatusFromOutcome(mable.Success[string](42))).
				To(Equal(mable.Succeeded[string](42)))
		})

		// NotStarted and InProgress are only entered by the caller's own
		// transitions; no conversion produces them.
		It("never yields NotStarted or InProgress", func() {
			converted := []status{
				mable.LoadStatusFromOptional(mable.Present(1), "e"),
				mable.LoadStatusFromOptional(mable.Absent[int](), "e"),
				mable.LoadStatusFromOutcome(mable.Success[string](1)),
				mable.LoadStatusFromOutcome(mable.Failure[string, int]("e")),
			}
			for _, s := range converted {
				Expect(s.IsNotStarted()).To(BeFalse())
				Expect(s.IsInProgress()).To(BeFalse())
			}
		})
	})

	It("parses end to end", func() {
		load := func(s string) status {
			return mable.LoadStatusFromOutcome(parseOutcome(s))
		}
		Expect(load("42")).To(Equal(mable.Succeeded[string](42)))
		Expect(load("abc")).To(Equal(mable.Failed[string, int](`"abc" is not a number`)))
	})
})
