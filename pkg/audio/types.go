// ABOUTME: Audio type definitions
// ABOUTME: Defines PCM buffers and integer to float sample conversions
package audio

import "fmt"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes a PCM sample layout
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Validate checks that the format can describe real audio
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("invalid channel count: %d", f.Channels)
	}
	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24, 32)", f.BitDepth)
	}
	return nil
}

// PCM holds decoded audio. Samples are interleaved by channel and scaled
// to full-scale float in [-1, 1).
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []float64
}

// Frames returns the number of sample frames (samples per channel)
func (p PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Duration returns the length of the audio in seconds
func (p PCM) Duration() float64 {
	if p.SampleRate <= 0 {
		return 0
	}
	return float64(p.Frames()) / float64(p.SampleRate)
}

// SampleFromInt16 converts an int16 sample to full-scale float
func SampleFromInt16(sample int16) float64 {
	return float64(sample) / 32768.0
}

// SampleFromBits converts a signed integer sample of the given bit depth to
// full-scale float
func SampleFromBits(sample int32, bitDepth int) float64 {
	return float64(sample) / float64(int64(1)<<(bitDepth-1))
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	// Reconstruct 24-bit value and sign-extend to 32-bit
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF // Set upper 8 bits to 1 for negative values
	}
	return val
}
