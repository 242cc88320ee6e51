// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import (
	"sync/atomic"
)

// oneShot wraps a completion callback with one-shot enforcement.
// The first call is forwarded; later calls are counted and dropped.
type oneShot[A any] struct {
	calls  atomic.Uint32
	resume func(A)
}

func once[A any](k func(A)) *oneShot[A] {
	return &oneShot[A]{resume: k}
}

// tryResume invokes the callback on first use.
// It returns the ordinal of this call and whether it was forwarded.
func (o *oneShot[A]) tryResume(v A) (uint32, bool) {
	n := o.calls.Add(1)
	if n != 1 {
		return n, false
	}
	o.resume(v)
	return n, true
}
