// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run evaluates two Cont-world one-shot-await protocols to completion,
// interleaving their polling on the calling goroutine with adaptive backoff
// (iox.Backoff) whenever neither side can make progress. Does not spawn
// goroutines. Unlike Exec, which blocks on one protocol, Run lets a task
// wait on two independent one-shot results — e.g. a ValueReceiver and a
// RefReceiver — without giving either one priority.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(kont.Reify(a), kont.Reify(b))
}

// RunExpr is the Expr-world counterpart of Run.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var popA pollDispatcher
	if suspA != nil {
		popA = suspA.Op().(pollDispatcher)
	}
	var popB pollDispatcher
	if suspB != nil {
		popB = suspB.Op().(pollDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := popA.DispatchPoll()
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					popA = suspA.Op().(pollDispatcher)
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := popB.DispatchPoll()
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					popB = suspB.Op().(pollDispatcher)
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}

// RunValue concurrently awaits two independent ValueReceivers on the calling
// goroutine, interleaving Poll calls with adaptive backoff. Does not spawn
// goroutines or allocate an effect protocol — a thin convenience wrapper
// over Poll for the common two-receiver case.
func RunValue[A, B any](ra *ValueReceiver[A], rb *ValueReceiver[B]) (Result[A], Result[B]) {
	var bo iox.Backoff
	var resA Result[A]
	var resB Result[B]
	doneA, doneB := false, false
	for !doneA || !doneB {
		progress := false
		if !doneA {
			if p := ra.Poll(); p.IsReady() {
				resA = p.Value()
				doneA = true
				progress = true
			}
		}
		if !doneB {
			if p := rb.Poll(); p.IsReady() {
				resB = p.Value()
				doneB = true
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resA, resB
}

// RunRef concurrently awaits two independent RefReceivers on the calling
// goroutine, the RefChannel counterpart of RunValue.
func RunRef[A, B any](ra *RefReceiver[A], rb *RefReceiver[B]) (Status, Status) {
	var bo iox.Backoff
	var stA, stB Status
	doneA, doneB := false, false
	for !doneA || !doneB {
		progress := false
		if !doneA {
			if p := ra.Poll(); p.IsReady() {
				stA = p.Value()
				doneA = true
				progress = true
			}
		}
		if !doneB {
			if p := rb.Poll(); p.IsReady() {
				stB = p.Value()
				doneB = true
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return stA, stB
}
