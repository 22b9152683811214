// SPDX-License-Identifier: EPL-2.0

// Package manifest loads YAML batch files describing many tracks to loop.
//
//	defaults:
//	  bpm: 120
//	  quality: 6
//	  artist: Phana
//	  album: Overworld
//	tracks:
//	  - input: town.wav
//	    loop_end: "9"
//	    title: Town
//	  - input: battle.wav
//	    output: out/battle.ogg
//	    bpm: 168
//	    loop_start: "2"
//	    loop_end: "34:1:0"
//
// Every track inherits unset settings from defaults. Relative paths are
// resolved against the manifest's directory and a missing output becomes
// the input with an .ogg extension.
package manifest
