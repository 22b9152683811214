// SPDX-License-Identifier: EPL-2.0

package manifest

import "errors"

// ErrInvalid indicates a manifest that parses but cannot be run.
var ErrInvalid = errors.New("invalid manifest")
