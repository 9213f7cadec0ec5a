// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package once provides one-shot value and by-reference transfer primitives
// for delivering a single result from a producer to a consumer running under
// a cooperative task dispatcher.
//
// # Architecture
//
//   - ValueChannel: [MakeValuePair] links a [ValueSender] to a [ValueReceiver].
//     The sender hands over a T by value; the receiver observes [Poll] of
//     [Result].
//   - RefChannel: [MakeRefPair] links a [RefSender] to a [RefReceiver] around
//     a caller-owned buffer. The sender mutates the buffer in place; the
//     receiver observes [Poll] of [Status].
//   - Locking: every state transition — Send/Set/Commit/ModifyUnsafe/Poll/
//     Close — runs under a single process-wide interrupt-safe spinlock (see
//     lock.go), so senders may run on another goroutine or be invoked from
//     signal/interrupt-equivalent contexts.
//   - Waker integration: the receiver installs a [Waker] at construction; the
//     sender fires it at most once, inside the lock, when the pair reaches a
//     terminal state.
//   - Diagnostics: PairID on each endpoint reports the debug-trace identifier
//     of the shared cell it names, so two handles can be confirmed to refer
//     to the same pair.
//
// # Dispatcher integration
//
// [AwaitValue] and [AwaitRef] are [code.hybscloud.com/kont] effect operations
// wrapping a receiver's [Poll], so a one-shot transfer composes into a larger
// dispatcher-driven protocol the same way [code.hybscloud.com/sess] composes
// Send/Recv. [Step] and [Advance] evaluate one effect at a time for direct
// integration with a proactor loop; [Exec] and [ExecExpr] block past
// iox.ErrWouldBlock using adaptive backoff.
//
// # Example
//
//	waker := once.NewWaker(func() { /* wake the owning task */ })
//	sender, receiver := once.MakeValuePair[int](waker)
//	go func() {
//		sender.Send(42)
//	}()
//	for {
//		if p := receiver.Poll(); p.IsReady() {
//			result := p.Value() // Result[int]
//			_ = result
//			break
//		}
//	}
package once
