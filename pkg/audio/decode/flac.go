// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC audio frame by frame to float samples
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct{}

// NewFLAC creates a new FLAC decoder
func NewFLAC() *FLACDecoder {
	return &FLACDecoder{}
}

// Decode reads a complete FLAC stream from r
func (d *FLACDecoder) Decode(r io.Reader) (audio.PCM, error) {
	stream, err := flac.New(r)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	pcm := audio.PCM{
		SampleRate: int(info.SampleRate),
		Channels:   channels,
	}
	if info.NSamples > 0 {
		pcm.Samples = make([]float64, 0, int(info.NSamples)*channels)
	}

	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return audio.PCM{}, fmt.Errorf("flac frame error: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				sample := frame.Subframes[ch].Samples[i]
				pcm.Samples = append(pcm.Samples, audio.SampleFromBits(sample, bitDepth))
			}
		}
	}

	return pcm, nil
}
