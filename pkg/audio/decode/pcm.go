// ABOUTME: Raw PCM audio decoder
// ABOUTME: Decodes headerless 16-bit and 24-bit little-endian PCM
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

// PCMDecoder decodes headerless PCM audio
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new raw PCM decoder for the given layout
func NewPCM(format audio.Format) (*PCMDecoder, error) {
	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("raw PCM input requires a sample rate, got %d", format.SampleRate)
	}
	if format.Channels <= 0 {
		return nil, fmt.Errorf("raw PCM input requires a channel count, got %d", format.Channels)
	}
	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	return &PCMDecoder{format: format}, nil
}

// Decode reads r to the end and converts it to PCM samples
func (d *PCMDecoder) Decode(r io.Reader) (audio.PCM, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("failed to read PCM data: %w", err)
	}

	return audio.PCM{
		SampleRate: d.format.SampleRate,
		Channels:   d.format.Channels,
		Samples:    d.DecodeBytes(data),
	}, nil
}

// DecodeBytes converts PCM bytes to float samples. A trailing partial frame
// is dropped.
func (d *PCMDecoder) DecodeBytes(data []byte) []float64 {
	width := d.format.BitDepth / 8
	frameBytes := width * d.format.Channels
	numSamples := (len(data) / frameBytes) * d.format.Channels

	samples := make([]float64, numSamples)
	if d.format.BitDepth == 24 {
		for i := 0; i < numSamples; i++ {
			b := [3]byte{data[i*3], data[i*3+1], data[i*3+2]}
			samples[i] = audio.SampleFromBits(audio.SampleFrom24Bit(b), 24)
		}
		return samples
	}

	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = audio.SampleFromInt16(sample16)
	}
	return samples
}
