// SPDX-License-Identifier: EPL-2.0

package timing

import "errors"

var (
	// ErrFormat indicates a malformed bar:beat:tick position string.
	ErrFormat = errors.New("position must look like 1:1:0 (bar:beat:tick)")

	// ErrInvalidTempo indicates a tempo or meter field that is not positive.
	ErrInvalidTempo = errors.New("invalid tempo/meter")
)
