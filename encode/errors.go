// SPDX-License-Identifier: EPL-2.0

package encode

import "errors"

var (
	// ErrQuality indicates a -q:a value outside the Vorbis range -1..10.
	ErrQuality = errors.New("quality must be between -1 and 10")

	// ErrPaths indicates a missing input or output path, or both being the
	// same file.
	ErrPaths = errors.New("invalid input/output paths")
)
