// ABOUTME: Audio encoder package
// ABOUTME: Writes PCM buffers back out as WAV files
// Package encode writes audio.PCM buffers as WAV files.
//
// It is used to dump intermediate pipeline stages for listening and to
// build fixtures.
//
// Example:
//
//	f, _ := os.Create("preview.wav")
//	defer f.Close()
//	err := encode.WAV(f, pcm, 16)
package encode
