// ABOUTME: Audio decoder package for multiple container formats
// ABOUTME: Provides Decoder interface and implementations for WAV, MP3, FLAC, raw PCM
// Package decode reads audio files into audio.PCM buffers.
//
// Supports: WAV (8/16/24-bit integer), MP3, FLAC, raw little-endian PCM
// (16 and 24-bit)
//
// All decoders implement the Decoder interface and output interleaved
// float64 samples scaled to [-1, 1).
//
// Example:
//
//	pcm, err := decode.File("speech.wav", audio.Format{})
//	if err != nil {
//	    log.Fatal(err)
//	}
package decode
