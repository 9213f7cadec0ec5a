// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

// Waker is an opaque, one-shot notification handle supplied by the owning
// cooperative task dispatcher. A receiver holds exactly one Waker; the paired
// sender fires it at most once, under the shared lock, when the pair reaches
// a terminal state. The zero value is an empty Waker — fine to Poll against,
// never fine to expect a wake from.
//
// Fire must never block: it runs inside pairLock's critical section, so in
// practice it should do no more than enqueue the waiting task on the
// dispatcher's ready queue. A Waker that blocks deadlocks the whole package —
// this is a documented contract, not something Fire can check.
type Waker struct {
	fn func()
}

// NewWaker wraps fn as a Waker. fn is called at most once, from inside the
// shared spinlock's critical section, and must not block.
func NewWaker(fn func()) Waker {
	return Waker{fn: fn}
}

// Fire consumes the Waker, invoking its callback exactly once. Firing an
// already-empty Waker is a no-op, matching "a consumed waker behaves as
// empty" (spec §4.3).
func (w *Waker) Fire() {
	if w.fn == nil {
		return
	}
	fn := w.fn
	w.fn = nil
	fn()
}

// IsEmpty reports whether the Waker has already been fired (or was never
// installed).
func (w Waker) IsEmpty() bool {
	return w.fn == nil
}

// pollTag distinguishes a Poll's Pending and Ready states.
type pollTag uint8

const (
	pollPending pollTag = iota
	pollReady
)

// Poll is the non-blocking query result returned by ValueReceiver.Poll and
// RefReceiver.Poll: either the task is not yet ready (Pending), or it carries
// a terminal value (Ready).
type Poll[T any] struct {
	tag   pollTag
	value T
}

// Pending returns a Poll in the not-yet-ready state.
func Pending[T any]() Poll[T] {
	return Poll[T]{tag: pollPending}
}

// Ready returns a Poll carrying the given terminal value.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{tag: pollReady, value: v}
}

// IsPending reports whether the poll produced no value yet.
func (p Poll[T]) IsPending() bool {
	return p.tag == pollPending
}

// IsReady reports whether the poll produced a terminal value.
func (p Poll[T]) IsReady() bool {
	return p.tag == pollReady
}

// Value returns the terminal value. It is the zero value of T if the Poll is
// Pending — callers should always check IsReady first.
func (p Poll[T]) Value() T {
	return p.value
}
