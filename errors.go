// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import "code.hybscloud.com/mable/internal/variant"

// UnhandledCaseError is the panic value raised by CaseOf dispatch when the
// pattern has no handler for the case of the value and no Otherwise
// fallback, and by Match dispatch when a required handler is nil.
//
// Recover it with errors.As to tell a forgotten case apart from other
// faults.
type UnhandledCaseError = variant.UnhandledCaseError
