// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"code.hybscloud.com/kont"
)

// AwaitValueThen awaits rx's result and passes it to next.
// Fuses Perform(AwaitValue[T]{Receiver: rx}) + Bind.
func AwaitValueThen[T, B any](rx *ValueReceiver[T], next func(Result[T]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(AwaitValue[T]{Receiver: rx}), next)
}

// AwaitRefThen awaits rx's completion status and passes it to next.
// Fuses Perform(AwaitRef[T]{Receiver: rx}) + Bind.
func AwaitRefThen[T, B any](rx *RefReceiver[T], next func(Status) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(AwaitRef[T]{Receiver: rx}), next)
}
