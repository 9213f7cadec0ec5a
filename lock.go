// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import "code.hybscloud.com/spin"

// pairLock is the single process-wide interrupt-safe spinlock guarding every
// ValueChannel and RefChannel pair's state transitions: Close, Send, Set,
// ModifyUnsafe, Commit and Poll. Like sync.Mutex, its zero value is a
// ready-to-use lock — there is no separate initialization step, matching the
// "lazily initialized, never destroyed" global lock this package is grounded
// on (the sender_receiver_lock() in the original pw_async2 C++ source).
//
// It is deliberately coarse-grained: critical sections here are O(1) and
// never block, which is what allows a Waker to be fired from inside the lock
// (see Waker.Fire) without risking a self-deadlock against a preempted or
// interrupted holder.
var pairLock spin.Lock

// withLock runs f with the shared spinlock held. f must not block and must
// not call back into any exported once API — doing so self-deadlocks on the
// same lock, exactly as RefSender.ModifyUnsafe's contract documents.
func withLock(f func()) {
	pairLock.Lock()
	defer pairLock.Unlock()
	f()
}
