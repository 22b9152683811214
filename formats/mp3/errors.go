// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrUnknownLength indicates the stream length could not be determined.
var ErrUnknownLength = errors.New("mp3 stream length unknown")
