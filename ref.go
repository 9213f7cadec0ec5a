// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

// refState is the RefChannel state machine of spec §4.2: Live is the only
// non-terminal state. Unlike ValueChannel, ModifyUnsafe never advances it —
// only Set, Commit, or sender Close do.
type refState uint8

const (
	refLive refState = iota
	refDelivered
	refCancelled
	refReceiverGone
)

// refCell is the interior-mutable shared state of one RefChannel pair.
// target points at the caller-owned buffer; it is not itself guarded by
// pairLock (spec §5: "RefChannel's target buffer is not protected by the
// lock") — exclusion there comes from the aliasing invariant, the caller's
// obligation not to touch *target between construction and the terminal
// event.
type refCell[T any] struct {
	id     pairID
	state  refState
	target *T
	waker  Waker
}

// RefSender mutates the caller-owned buffer received by the paired
// RefReceiver, in place. Non-copyable for the same reason as ValueSender.
type RefSender[T any] struct {
	_    noCopy
	cell *refCell[T]
}

// RefReceiver observes completion of the mutation performed by the paired
// RefSender. Poll never blocks.
type RefReceiver[T any] struct {
	_    noCopy
	cell *refCell[T]
}

// MakeRefPair links a new RefSender/RefReceiver pair over target and installs
// waker on the receiver. Between construction and the terminal event, the
// caller must not read or write *target — exclusive logical access belongs
// to the sender.
func MakeRefPair[T any](target *T, waker Waker) (*RefSender[T], *RefReceiver[T]) {
	var sender RefSender[T]
	var receiver RefReceiver[T]
	InitializeRefPair(&sender, &receiver, target, waker)
	return &sender, &receiver
}

// InitializeRefPair links sender and receiver in place around target, for
// callers that already own the storage for both endpoints.
func InitializeRefPair[T any](sender *RefSender[T], receiver *RefReceiver[T], target *T, waker Waker) {
	cell := &refCell[T]{id: nextPairID(), target: target}
	cell.waker = waker
	sender.cell = cell
	receiver.cell = cell
}

// Set copy-assigns value into the target buffer and fires the receiver's
// waker. A no-op if the pair is no longer Live.
func (s *RefSender[T]) Set(value T) {
	if s.cell == nil {
		return
	}
	withLock(func() {
		cell := s.cell
		if cell.state != refLive {
			return
		}
		*cell.target = value
		cell.state = refDelivered
		cell.waker.Fire()
	})
}

// ModifyUnsafe invokes f with the target buffer under the shared lock,
// without firing the waker or unlinking the pair. Used to make several
// in-place edits before a single Commit. f must not call back into any once
// API (the pair's own or any other pair's) — re-entrancy on the same
// process-wide spinlock self-deadlocks — and must not retain the pointer
// past its invocation. A no-op if the pair is no longer Live.
func (s *RefSender[T]) ModifyUnsafe(f func(*T)) {
	if s.cell == nil {
		return
	}
	withLock(func() {
		cell := s.cell
		if cell.state != refLive {
			return
		}
		f(cell.target)
	})
}

// Commit fires the receiver's waker after one or more ModifyUnsafe calls. A
// no-op if the pair is no longer Live.
func (s *RefSender[T]) Commit() {
	if s.cell == nil {
		return
	}
	withLock(func() {
		cell := s.cell
		if cell.state != refLive {
			return
		}
		cell.state = refDelivered
		cell.waker.Fire()
	})
}

// Close is the Go-idiomatic analogue of "the sender was destroyed": if the
// pair is still Live, it cancels the transfer and fires the receiver's
// waker, leaving whatever partial ModifyUnsafe edits were already applied to
// the buffer in place. Idempotent.
func (s *RefSender[T]) Close() {
	if s.cell == nil {
		return
	}
	withLock(func() {
		cell := s.cell
		if cell.state != refLive {
			return
		}
		cell.state = refCancelled
		cell.waker.Fire()
	})
}

// PairID returns the debug-trace identifier shared with the peer
// RefReceiver (the value MakeRefPair/InitializeRefPair assigned the
// underlying cell), or 0 for a zero-value RefSender. Two endpoints report
// the same PairID if and only if they are linked to the same cell.
func (s *RefSender[T]) PairID() uint32 {
	if s.cell == nil {
		return 0
	}
	return s.cell.id
}

// Poll is the dispatcher's non-blocking query: Ready(StatusOk) once the
// sender has Set/Commit'd, Ready(StatusCancelled) once the sender was
// Close'd without committing, Pending otherwise. Never blocks.
func (r *RefReceiver[T]) Poll() Poll[Status] {
	if r.cell == nil {
		return Ready(StatusCancelled)
	}
	var result Poll[Status]
	withLock(func() {
		switch r.cell.state {
		case refDelivered:
			result = Ready(StatusOk)
		case refLive:
			result = Pending[Status]()
		default: // refCancelled, refReceiverGone
			result = Ready(StatusCancelled)
		}
	})
	return result
}

// Close is the Go-idiomatic analogue of "the receiver was destroyed": any
// subsequent Set/ModifyUnsafe/Commit on the peer becomes a silent no-op.
func (r *RefReceiver[T]) Close() {
	if r.cell == nil {
		return
	}
	withLock(func() {
		cell := r.cell
		if cell.state != refLive {
			return
		}
		cell.state = refReceiverGone
	})
}

// PairID returns the debug-trace identifier shared with the peer RefSender,
// or 0 for a zero-value RefReceiver.
func (r *RefReceiver[T]) PairID() uint32 {
	if r.cell == nil {
		return 0
	}
	return r.cell.id
}
