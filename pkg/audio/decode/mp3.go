// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 audio to float samples
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

// MP3Decoder decodes MP3 audio
type MP3Decoder struct{}

// NewMP3 creates a new MP3 decoder
func NewMP3() *MP3Decoder {
	return &MP3Decoder{}
}

// Decode reads a complete MP3 stream from r
func (d *MP3Decoder) Decode(r io.Reader) (audio.PCM, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	// go-mp3 always outputs 16-bit little-endian stereo
	data, err := io.ReadAll(decoder)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := (len(data) / 4) * 2
	samples := make([]float64, numSamples)
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = audio.SampleFromInt16(sample16)
	}

	return audio.PCM{
		SampleRate: decoder.SampleRate(),
		Channels:   2,
		Samples:    samples,
	}, nil
}
