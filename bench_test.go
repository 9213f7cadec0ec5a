// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/once"
)

// BenchmarkValueSendPoll measures a single Send/Poll round trip.
func BenchmarkValueSendPoll(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		w := once.NewWaker(func() {})
		sender, receiver := once.MakeValuePair[int](w)
		sender.Send(42)
		receiver.Poll()
	}
}

// BenchmarkRefSetPoll measures a single Set/Poll round trip.
func BenchmarkRefSetPoll(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var buf int
		w := once.NewWaker(func() {})
		sender, receiver := once.MakeRefPair(&buf, w)
		sender.Set(7)
		receiver.Poll()
	}
}

// BenchmarkRefModifyUnsafeCommit measures several ModifyUnsafe calls
// followed by a single Commit.
func BenchmarkRefModifyUnsafeCommit(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var buf int
		w := once.NewWaker(func() {})
		sender, receiver := once.MakeRefPair(&buf, w)
		sender.ModifyUnsafe(func(n *int) { *n++ })
		sender.ModifyUnsafe(func(n *int) { *n++ })
		sender.Commit()
		receiver.Poll()
	}
}

// BenchmarkAwaitValueThenExec measures the fused-protocol path through Exec.
func BenchmarkAwaitValueThenExec(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		w := once.NewWaker(func() {})
		sender, receiver := once.MakeValuePair[int](w)
		protocol := once.AwaitValueThen(receiver, func(r once.Result[int]) kont.Eff[int] {
			v, _ := r.GetRight()
			return kont.Pure(v)
		})
		sender.Send(42)
		once.Exec(protocol)
	}
}

// BenchmarkStepAdvance measures stepping a protocol via Step+Advance without
// the Backoff spin of Exec.
func BenchmarkStepAdvance(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		w := once.NewWaker(func() {})
		sender, receiver := once.MakeValuePair[int](w)
		protocol := once.AwaitValueThen(receiver, func(r once.Result[int]) kont.Eff[int] {
			v, _ := r.GetRight()
			return kont.Pure(v)
		})
		sender.Send(42)

		_, susp := once.Step[int](kont.Reify(protocol))
		for susp != nil {
			var err error
			_, susp, err = once.Advance(susp)
			if err != nil {
				continue
			}
		}
	}
}

// BenchmarkRunValue measures concurrently awaiting two ValueReceivers.
func BenchmarkRunValue(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		wa := once.NewWaker(func() {})
		senderA, receiverA := once.MakeValuePair[int](wa)
		wb := once.NewWaker(func() {})
		senderB, receiverB := once.MakeValuePair[int](wb)
		senderA.Send(1)
		senderB.Send(2)
		once.RunValue(receiverA, receiverB)
	}
}
