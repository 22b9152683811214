// SPDX-License-Identifier: EPL-2.0

package loop

import "errors"

var (
	// ErrRange indicates loop points that do not fit inside the track.
	ErrRange = errors.New("loop points out of range")
)
