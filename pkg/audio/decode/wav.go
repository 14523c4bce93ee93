// ABOUTME: WAV audio decoder
// ABOUTME: Decodes RIFF/WAVE files through beep's wav streamer
package decode

import (
	"fmt"
	"io"

	"github.com/gopxl/beep/v2/wav"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

const streamChunkFrames = 4096

// WAVDecoder decodes WAV audio
type WAVDecoder struct{}

// NewWAV creates a new WAV decoder
func NewWAV() *WAVDecoder {
	return &WAVDecoder{}
}

// Decode reads a complete WAV stream from r
func (d *WAVDecoder) Decode(r io.Reader) (audio.PCM, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("failed to decode WAV: %w", err)
	}
	defer streamer.Close()

	channels := format.NumChannels
	if channels < 1 || channels > 2 {
		return audio.PCM{}, fmt.Errorf("unsupported WAV channel count: %d", channels)
	}

	pcm := audio.PCM{
		SampleRate: int(format.SampleRate),
		Channels:   channels,
	}
	if n := streamer.Len(); n > 0 {
		pcm.Samples = make([]float64, 0, n*channels)
	}

	// beep always streams stereo frames; mono files carry the sample in both slots
	buf := make([][2]float64, streamChunkFrames)
	for {
		n, ok := streamer.Stream(buf)
		for _, frame := range buf[:n] {
			pcm.Samples = append(pcm.Samples, frame[:channels]...)
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return audio.PCM{}, fmt.Errorf("wav stream error: %w", err)
	}

	return pcm, nil
}
