// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

// noCopy makes go vet's -copylocks analysis flag accidental copies of a
// ValueSender/ValueReceiver/RefSender/RefReceiver after first use, the same
// idiom sync.WaitGroup uses. It otherwise has no runtime effect.
//
// Endpoints hold a pointer into a shared cell (see §9's redesign guidance:
// an interior-mutable shared cell with two handles, rather than raw
// cross-endpoint back-pointers), so a struct copy would silently alias the
// same cell instead of producing a second independent endpoint — exactly the
// "non-copyable, non-assignable" invariant spec.md requires.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
