// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// pollDispatcher is the structural interface satisfied by the effect
// operations in this file. DispatchPoll is non-blocking: it returns
// iox.ErrWouldBlock at the I/O boundary when the wrapped receiver is still
// Pending, the same boundary code.hybscloud.com/sess uses for its bounded
// SPSC transport.
type pollDispatcher interface {
	DispatchPoll() (kont.Resumed, error)
}

// AwaitValue is the effect operation for awaiting a ValueReceiver's result
// inside a larger kont-driven protocol.
// Perform(AwaitValue[T]{Receiver: r}) suspends until r.Poll() is Ready.
type AwaitValue[T any] struct {
	kont.Phantom[Result[T]]
	Receiver *ValueReceiver[T]
}

// DispatchPoll polls the wrapped ValueReceiver once.
// Non-blocking: returns iox.ErrWouldBlock while the receiver is Pending.
func (a AwaitValue[T]) DispatchPoll() (kont.Resumed, error) {
	p := a.Receiver.Poll()
	if p.IsPending() {
		return nil, iox.ErrWouldBlock
	}
	return p.Value(), nil
}

// AwaitRef is the effect operation for awaiting a RefReceiver's completion
// status inside a larger kont-driven protocol.
// Perform(AwaitRef[T]{Receiver: r}) suspends until r.Poll() is Ready.
type AwaitRef[T any] struct {
	kont.Phantom[Status]
	Receiver *RefReceiver[T]
}

// DispatchPoll polls the wrapped RefReceiver once.
// Non-blocking: returns iox.ErrWouldBlock while the receiver is Pending.
func (a AwaitRef[T]) DispatchPoll() (kont.Resumed, error) {
	p := a.Receiver.Poll()
	if p.IsPending() {
		return nil, iox.ErrWouldBlock
	}
	return p.Value(), nil
}
