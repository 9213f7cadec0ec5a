// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import "code.hybscloud.com/atomix"

// pairID is a monotonically increasing debug-trace identifier assigned to
// each ValueChannel/RefChannel pair. It carries no protocol meaning — it lets
// a caller holding either endpoint (via PairID) confirm both handles still
// name the same shared cell, the same role code.hybscloud.com/sess.Serial
// plays for session pairs via Endpoint.Serial().
type pairID = uint32

// pairCounter is the global monotonic counter for pair identifiers.
var pairCounter atomix.Uint32

// nextPairID returns the next monotonically increasing pair identifier.
func nextPairID() pairID {
	return pairCounter.Add(1)
}
