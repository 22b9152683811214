// SPDX-License-Identifier: EPL-2.0

package probe

import "errors"

var (
	// ErrMetadata indicates the probed file does not carry exactly one audio
	// stream with a sample rate and a duration.
	ErrMetadata = errors.New("audio metadata")

	// ErrUnsupportedFormat indicates no prober is registered for a file.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
