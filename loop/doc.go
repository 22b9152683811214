// SPDX-License-Identifier: EPL-2.0

// Package loop derives the intro, body and tail regions of a rendered track
// and the offsets needed to stitch the tail back into the loop.
//
// A rendered track is laid out as
//
//	| intro | body (the musical loop) | tail (reverb/decay) |
//	0       loopStart                 loopEnd               total
//
// Playing the body in a loop would cut the tail off at every wrap. Instead
// the first TailLength samples of the body are copied, delayed to loopEnd and
// mixed over the tail. In the stitched file the region
//
//	[IntroLength+TailLength, loopEnd+TailLength)
//
// then wraps seamlessly, so LoopStart is IntroLength+TailLength and
// LoopLength is BodyLength.
//
// Plan only returns numbers. Rendering them into a particular tool's filter
// syntax is done by the encode package.
package loop
