// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrUnknownLength indicates the last granule position could not be read.
var ErrUnknownLength = errors.New("ogg vorbis stream length unknown")
