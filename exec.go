// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// pollHandler implements kont.Handler for AwaitValue/AwaitRef effects,
// turning their non-blocking DispatchPoll into blocking evaluation for
// Exec/ExecExpr via adaptive backoff.
type pollHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (pollHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(pollDispatcher)
	if !ok {
		panic("once: unhandled effect in pollHandler")
	}
	var bo iox.Backoff
	for {
		v, err := pop.DispatchPoll()
		if err == nil {
			return v, true
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world one-shot-await protocol to completion, blocking
// past iox.ErrWouldBlock with adaptive backoff (iox.Backoff). Does not spawn
// goroutines or create channels — suitable for a task waiting on a value
// produced by another goroutine or dispatcher task.
func Exec[R any](protocol kont.Eff[R]) R {
	return kont.Handle(protocol, pollHandler[R]{})
}

// ExecExpr runs an Expr-world one-shot-await protocol to completion, the
// same way Exec does for Cont-world.
func ExecExpr[R any](protocol kont.Expr[R]) R {
	return kont.HandleExpr(protocol, pollHandler[R]{})
}
