// SPDX-License-Identifier: EPL-2.0

package loopster

import "errors"

var (
	// ErrSampleRateMismatch indicates the tempo's sample rate differs from
	// the probed file's. Loop points would land in the wrong place.
	ErrSampleRateMismatch = errors.New("sample rate mismatch")
)
