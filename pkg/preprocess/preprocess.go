// ABOUTME: Preprocessing steps and pipeline
// ABOUTME: Produces a zero-mean sample sequence in [-1, 1] at the symbol rate
package preprocess

import (
	"errors"
	"fmt"
	"math"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
	"github.com/serial-sdr/serial-sdr-go/pkg/audio/resample"
)

var (
	// ErrUnsupportedChannels is returned for input that is neither mono nor stereo
	ErrUnsupportedChannels = errors.New("unsupported channel layout")

	// ErrEmptyWindow is returned when the selected time range holds no samples
	ErrEmptyWindow = errors.New("empty time window")

	// ErrSilentInput is returned when the signal has no amplitude to normalize
	ErrSilentInput = errors.New("silent input")
)

// Options configures Process
type Options struct {
	// AudioRate is the intermediate rate in Hz. Input at any other rate is
	// resampled to it first.
	AudioRate int

	// SymbolRate is the output rate in symbols per second
	SymbolRate float64

	// Start is the window start in seconds
	Start float64

	// End is the window end in seconds; nil selects to the end of the input
	End *float64
}

// Process runs every preprocessing step over pcm
func Process(pcm audio.PCM, opts Options) ([]float64, error) {
	if opts.AudioRate <= 0 {
		return nil, fmt.Errorf("invalid audio rate: %d", opts.AudioRate)
	}
	if opts.SymbolRate <= 0 {
		return nil, fmt.Errorf("invalid symbol rate: %v", opts.SymbolRate)
	}
	if pcm.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid input sample rate: %d", pcm.SampleRate)
	}

	samples, err := Mixdown(pcm)
	if err != nil {
		return nil, err
	}

	samples, err = Window(samples, pcm.SampleRate, opts.Start, opts.End)
	if err != nil {
		return nil, err
	}

	// this low-pass filters in the case of high-sample-rate inputs
	if pcm.SampleRate != opts.AudioRate {
		samples, err = resample.Mono(samples, float64(pcm.SampleRate), float64(opts.AudioRate))
		if err != nil {
			return nil, fmt.Errorf("resample to audio rate: %w", err)
		}
	}

	samples, err = resample.Mono(samples, float64(opts.AudioRate), opts.SymbolRate)
	if err != nil {
		return nil, fmt.Errorf("resample to symbol rate: %w", err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no symbols at %v symbols/s", ErrEmptyWindow, opts.SymbolRate)
	}

	RemoveDC(samples)
	if err := Normalize(samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// Mixdown returns the mono signal of pcm. Stereo frames are averaged; mono
// samples are copied unchanged.
func Mixdown(pcm audio.PCM) ([]float64, error) {
	switch pcm.Channels {
	case 1:
		out := make([]float64, len(pcm.Samples))
		copy(out, pcm.Samples)
		return out, nil
	case 2:
		frames := pcm.Frames()
		out := make([]float64, frames)
		for i := 0; i < frames; i++ {
			out[i] = (pcm.Samples[2*i] + pcm.Samples[2*i+1]) / 2
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d channels (supported: 1, 2)", ErrUnsupportedChannels, pcm.Channels)
	}
}

// Window selects the samples between start and end seconds at the given
// rate. A nil or NaN end selects to the end; an end past the input is
// clipped. Offsets are bounded before they become indices.
func Window(samples []float64, rate int, start float64, end *float64) ([]float64, error) {
	if !(start >= 0) {
		return nil, fmt.Errorf("%w: invalid start offset %v", ErrEmptyWindow, start)
	}

	n := float64(len(samples))
	startPos := start * float64(rate)
	if startPos >= n {
		return nil, fmt.Errorf("%w: start %vs is past the end of the input", ErrEmptyWindow, start)
	}
	from := int(startPos)

	to := len(samples)
	if end != nil {
		switch endPos := *end * float64(rate); {
		case endPos <= 0:
			to = 0
		case endPos < n:
			to = int(endPos)
		}
	}

	if from >= to {
		return nil, fmt.Errorf("%w: start %vs is not before end %vs", ErrEmptyWindow, start, *end)
	}
	return samples[from:to], nil
}

// RemoveDC subtracts the arithmetic mean from every sample in place
func RemoveDC(samples []float64) {
	if len(samples) == 0 {
		return
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))
	for i := range samples {
		samples[i] -= mean
	}
}

// Normalize divides every sample by the peak absolute value in place, so the
// result lies in [-1, 1]
func Normalize(samples []float64) error {
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		return fmt.Errorf("%w: peak amplitude is zero", ErrSilentInput)
	}
	for i := range samples {
		samples[i] /= peak
	}
	return nil
}
