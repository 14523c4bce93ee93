// ABOUTME: WAV audio encoder
// ABOUTME: Encodes float PCM to 8, 16 or 24-bit WAV through beep
package encode

import (
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

// WAV writes pcm to w as integer PCM with the given bit depth
func WAV(w io.WriteSeeker, pcm audio.PCM, bitDepth int) error {
	if pcm.Channels != 1 && pcm.Channels != 2 {
		return fmt.Errorf("unsupported channel count for WAV: %d", pcm.Channels)
	}
	if bitDepth != 8 && bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24)", bitDepth)
	}
	if pcm.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", pcm.SampleRate)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(pcm.SampleRate),
		NumChannels: pcm.Channels,
		Precision:   bitDepth / 8,
	}

	if err := wav.Encode(w, Streamer(pcm), format); err != nil {
		return fmt.Errorf("failed to encode WAV: %w", err)
	}
	return nil
}

// Streamer adapts a PCM buffer to a beep.Streamer. Mono samples are copied
// to both beep channels.
func Streamer(pcm audio.PCM) beep.Streamer {
	pos := 0
	frames := pcm.Frames()
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= frames {
			return 0, false
		}
		for n < len(samples) && pos < frames {
			base := pos * pcm.Channels
			left := pcm.Samples[base]
			right := left
			if pcm.Channels == 2 {
				right = pcm.Samples[base+1]
			}
			samples[n][0], samples[n][1] = left, right
			n++
			pos++
		}
		return n, true
	})
}
