// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/once"
)

func TestAwaitValueThenExec(t *testing.T) {
	w := once.NewWaker(func() {})
	sender, receiver := once.MakeValuePair[int](w)

	protocol := once.AwaitValueThen(receiver, func(r once.Result[int]) kont.Eff[string] {
		v, ok := r.GetRight()
		if !ok {
			return kont.Pure("cancelled")
		}
		return kont.Pure(fmt.Sprintf("got %d", v))
	})

	go sender.Send(42)

	result := once.Exec(protocol)
	if result != "got 42" {
		t.Fatalf("got %q, want %q", result, "got 42")
	}
}

func TestAwaitRefThenExec(t *testing.T) {
	var buf int
	w := once.NewWaker(func() {})
	sender, receiver := once.MakeRefPair(&buf, w)

	protocol := once.AwaitRefThen(receiver, func(s once.Status) kont.Eff[string] {
		return kont.Pure(s.String())
	})

	go sender.Set(7)

	result := once.Exec(protocol)
	if result != "Ok" {
		t.Fatalf("got %q, want %q", result, "Ok")
	}
	if buf != 7 {
		t.Fatalf("buf = %d, want 7", buf)
	}
}

func TestAwaitValueThenCancelled(t *testing.T) {
	w := once.NewWaker(func() {})
	sender, receiver := once.MakeValuePair[int](w)

	protocol := once.AwaitValueThen(receiver, func(r once.Result[int]) kont.Eff[string] {
		if _, ok := r.GetLeft(); ok {
			return kont.Pure("cancelled")
		}
		return kont.Pure("delivered")
	})

	go sender.Close()

	result := once.Exec(protocol)
	if result != "cancelled" {
		t.Fatalf("got %q, want %q", result, "cancelled")
	}
}

func TestFusedChainedAwaits(t *testing.T) {
	wa := once.NewWaker(func() {})
	senderA, receiverA := once.MakeValuePair[int](wa)
	wb := once.NewWaker(func() {})
	senderB, receiverB := once.MakeValuePair[int](wb)

	protocol := once.AwaitValueThen(receiverA, func(ra once.Result[int]) kont.Eff[int] {
		a, _ := ra.GetRight()
		return once.AwaitValueThen(receiverB, func(rb once.Result[int]) kont.Eff[int] {
			b, _ := rb.GetRight()
			return kont.Pure(a + b)
		})
	})

	go senderA.Send(10)
	go senderB.Send(32)

	result := once.Exec(protocol)
	if result != 42 {
		t.Fatalf("got %d, want 42", result)
	}
}
