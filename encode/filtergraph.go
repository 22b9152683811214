// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"strings"

	"github.com/ik5/loopster/loop"
)

// FilterGraph renders f as an ffmpeg -filter_complex graph over input 0.
// It returns "" when f copies nothing.
func FilterGraph(f loop.TailFilter) string {
	if f.Len() <= 0 {
		return ""
	}

	// Copy the segment and rebase its timestamps so adelay counts from 0.
	trim := fmt.Sprintf("atrim=start_sample=%d:end_sample=%d", f.TrimStart, f.TrimEnd)
	rebase := "asetpts=PTS-STARTPTS"
	delay := fmt.Sprintf("adelay=delays=%dS:all=1", f.Delay)

	// normalize=0 keeps both inputs at unity gain.
	mix := "amix=inputs=2:duration=longest:normalize=0"

	var b strings.Builder
	b.WriteString("[0]")
	b.WriteString(strings.Join([]string{trim, rebase, delay}, ","))
	b.WriteString("[tail];[0][tail]")
	b.WriteString(mix)
	return b.String()
}
