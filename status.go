// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import "code.hybscloud.com/kont"

// Status is the terminal status code produced by a RefReceiver, and the error
// arm of a ValueReceiver's Result. This package produces exactly two codes —
// no timeout, no busy, no generic error — per spec §7's error taxonomy.
type Status uint8

const (
	// StatusOk means the sender committed a mutation (RefChannel only).
	StatusOk Status = iota
	// StatusCancelled means the sender was destroyed (Close'd) before
	// delivering a value or committing a mutation.
	StatusCancelled
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Status(?)"
	}
}

// Result is the value a ValueReceiver's Poll resolves to: the delivered value
// on the Right, or a Status (always StatusCancelled) on the Left. Modeled as
// kont.Either rather than a Go error, matching how this ecosystem's session
// layer already surfaces short-circuit results (ExecError/RunError in
// code.hybscloud.com/sess) as a typed Either instead of the error interface.
type Result[T any] = kont.Either[Status, T]

// Ok wraps a delivered value as a successful Result.
func Ok[T any](v T) Result[T] {
	return kont.Right[Status, T](v)
}

// Cancelled produces a Result carrying StatusCancelled.
func Cancelled[T any]() Result[T] {
	return kont.Left[Status, T](StatusCancelled)
}
