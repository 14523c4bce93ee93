// ABOUTME: Symbol stream preview
// ABOUTME: Reconstructs the pulse envelope a receiver would hear
package serialsdr

import (
	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
	"github.com/serial-sdr/serial-sdr-go/pkg/modulate"
)

// Preview decodes symbols to their pulse levels, centred and scaled to
// [-1, 1], as mono PCM at symbolRate
func Preview(symbols []byte, symbolRate int) (audio.PCM, error) {
	levels, err := modulate.DecodeLevels(symbols)
	if err != nil {
		return audio.PCM{}, err
	}

	const mid = float64(modulate.NumLevels-1) / 2
	for i, l := range levels {
		levels[i] = (l - mid) / mid
	}

	return audio.PCM{
		SampleRate: symbolRate,
		Channels:   1,
		Samples:    levels,
	}, nil
}
