// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the PCM container and sample conversion functions
// Package audio provides the PCM container shared by the decoders and the
// modulation pipeline.
//
// This package defines:
//   - Format: Describes a PCM sample layout (sample rate, channels, bit depth)
//   - PCM: Decoded audio as interleaved float64 samples in [-1, 1)
//
// It also provides utilities for converting integer samples to float:
//   - 8/16/24/32-bit signed integers to full-scale float
//   - 24-bit packed bytes to int32
//
// Example:
//
//	pcm := audio.PCM{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    Samples:    interleaved,
//	}
//	fmt.Printf("%d frames, %.2fs\n", pcm.Frames(), pcm.Duration())
package audio
