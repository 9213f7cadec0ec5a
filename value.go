// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

// valueState is the per-pair state machine described in spec §4.1: Live is
// the only non-terminal state; the rest are terminal. The one transition
// between terminal states is Delivered → Taken, made by the Poll that moves
// the value out.
type valueState uint8

const (
	valueLive valueState = iota
	valueDelivered
	valueCancelled
	valueReceiverGone
	// valueTaken marks a ValueChannel whose delivered value has already been
	// moved out by a prior Poll. Per spec §9's Open Question resolution, a
	// second Poll after Ready(Ok) is not left undefined: it reports
	// Ready(Err(Cancelled)), the same as a genuinely cancelled pair.
	valueTaken
)

// valueCell is the interior-mutable shared state of one ValueChannel pair,
// per §9's redesign guidance: a single allocation both handles point to,
// rather than raw cross back-pointers that must be fixed up on move.
type valueCell[T any] struct {
	id    pairID
	state valueState
	value T
	waker Waker
}

// ValueSender delivers a single T to the paired ValueReceiver. Non-copyable:
// copying it after use would let two handles race to terminate the same
// pair. Safe to use from another goroutine (or an ISR-equivalent context)
// than the ValueReceiver.
type ValueSender[T any] struct {
	_    noCopy
	cell *valueCell[T]
}

// ValueReceiver observes the value sent by the paired ValueSender. Poll is
// the sole suspension point: it never blocks, returning Pending until a
// value is delivered or the sender is Close'd.
type ValueReceiver[T any] struct {
	_    noCopy
	cell *valueCell[T]
}

// MakeValuePair links a new ValueSender/ValueReceiver pair and installs
// waker on the receiver. waker fires at most once, when the pair reaches a
// terminal state.
func MakeValuePair[T any](waker Waker) (*ValueSender[T], *ValueReceiver[T]) {
	var sender ValueSender[T]
	var receiver ValueReceiver[T]
	InitializeValuePair(&sender, &receiver, waker)
	return &sender, &receiver
}

// InitializeValuePair links sender and receiver in place, for callers that
// already own the storage for both endpoints (e.g. as fields of a larger
// struct). Equivalent to MakeValuePair followed by placement into that
// storage.
func InitializeValuePair[T any](sender *ValueSender[T], receiver *ValueReceiver[T], waker Waker) {
	cell := &valueCell[T]{id: nextPairID(), waker: waker}
	sender.cell = cell
	receiver.cell = cell
}

// Send delivers v to the receiver and fires its waker. A no-op if the pair
// has already reached a terminal state (the receiver already took the value,
// the sender already sent or was Close'd, or the receiver was Close'd) — at
// most one delivery per pair, loss after the fact is not an error.
func (s *ValueSender[T]) Send(v T) {
	if s.cell == nil {
		return
	}
	withLock(func() {
		cell := s.cell
		if cell.state != valueLive {
			return
		}
		cell.value = v
		cell.state = valueDelivered
		cell.waker.Fire()
	})
}

// Close is the Go-idiomatic analogue of "the sender was destroyed": if the
// pair is still Live, it cancels the transfer and fires the receiver's
// waker. Idempotent — Close after Send, or Close twice, does nothing further
// and never double-fires the waker.
func (s *ValueSender[T]) Close() {
	if s.cell == nil {
		return
	}
	withLock(func() {
		cell := s.cell
		if cell.state != valueLive {
			return
		}
		cell.state = valueCancelled
		cell.waker.Fire()
	})
}

// Poll is the dispatcher's non-blocking query: Ready(Ok(v)) once exactly, on
// the call that observes delivery; Ready(Err(StatusCancelled)) if the sender
// was Close'd (or after that first successful Poll — see valueTaken);
// Pending otherwise. Never blocks.
func (r *ValueReceiver[T]) Poll() Poll[Result[T]] {
	if r.cell == nil {
		return Ready(Cancelled[T]())
	}
	var result Poll[Result[T]]
	withLock(func() {
		cell := r.cell
		switch cell.state {
		case valueDelivered:
			v := cell.value
			var zero T
			cell.value = zero
			cell.state = valueTaken
			result = Ready(Ok(v))
		case valueLive:
			result = Pending[Result[T]]()
		default: // valueCancelled, valueReceiverGone, valueTaken
			result = Ready(Cancelled[T]())
		}
	})
	return result
}

// PairID returns the debug-trace identifier shared with the peer
// ValueReceiver (the value MakeValuePair/InitializeValuePair assigned the
// underlying cell), or 0 for a zero-value ValueSender. Two endpoints report
// the same PairID if and only if they are linked to the same cell.
func (s *ValueSender[T]) PairID() uint32 {
	if s.cell == nil {
		return 0
	}
	return s.cell.id
}

// Close is the Go-idiomatic analogue of "the receiver was destroyed": any
// subsequent Send on the peer becomes a silent no-op. No waker fires — the
// receiver took its own waker with it; there is no one left to notify.
func (r *ValueReceiver[T]) Close() {
	if r.cell == nil {
		return
	}
	withLock(func() {
		cell := r.cell
		if cell.state != valueLive {
			return
		}
		cell.state = valueReceiverGone
	})
}

// PairID returns the debug-trace identifier shared with the peer
// ValueSender, or 0 for a zero-value ValueReceiver.
func (r *ValueReceiver[T]) PairID() uint32 {
	if r.cell == nil {
		return 0
	}
	return r.cell.id
}
