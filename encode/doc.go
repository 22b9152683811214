// SPDX-License-Identifier: EPL-2.0

// Package encode turns a loop.Plan into an ffmpeg invocation that writes
// the stitched, tagged Ogg Vorbis file.
//
// FilterGraph is the only place that knows ffmpeg's filter syntax. For a
// plan with a tail it renders
//
//	[0]atrim=start_sample=S:end_sample=E,asetpts=PTS-STARTPTS,adelay=delays=DS:all=1[tail];
//	[0][tail]amix=inputs=2:duration=longest:normalize=0
//
// which copies source samples [S, E), delays them by D samples and mixes
// them back over the source without changing the level.
//
// Args builds the complete argument list and FFmpeg runs it:
//
//	req := encode.Request{Input: "in.wav", Output: "out.ogg", Plan: plan, Quality: 7}
//	err := encode.NewFFmpeg().Encode(ctx, req)
//
// The LOOPSTART and LOOPLENGTH tags always carry the plan's output loop
// start and loop length.
package encode
