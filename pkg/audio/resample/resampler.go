// ABOUTME: Polyphase resampler for converting audio sample rates
// ABOUTME: Wraps go-audio-resampling and pins the output length
package resample

import (
	"fmt"
	"math"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Resampler converts mono float signals from inputRate to outputRate
type Resampler struct {
	inputRate  float64
	outputRate float64
	ratio      float64
}

// New creates a new resampler
func New(inputRate, outputRate float64) (*Resampler, error) {
	if inputRate <= 0 || outputRate <= 0 {
		return nil, fmt.Errorf("invalid resample rates: %v -> %v", inputRate, outputRate)
	}
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      outputRate / inputRate,
	}, nil
}

// Resample converts a complete signal. Each call runs an independent filter
// from a cleared state, so a Resampler can be reused across signals.
func (r *Resampler) Resample(input []float64) ([]float64, error) {
	want := r.OutputSamplesNeeded(len(input))
	if len(input) == 0 {
		return []float64{}, nil
	}

	if r.inputRate == r.outputRate {
		out := make([]float64, len(input))
		copy(out, input)
		return out, nil
	}

	engine, err := resampling.New(&resampling.Config{
		InputRate:  r.inputRate,
		OutputRate: r.outputRate,
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	out, err := engine.Process(input)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}
	tail, err := engine.Flush()
	if err != nil {
		return nil, fmt.Errorf("resample flush error: %w", err)
	}
	out = append(out, tail...)

	return fitLength(out, want), nil
}

// OutputSamplesNeeded calculates how many output samples a signal of
// inputSamples produces
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	// Tolerate ratios such as 7350/11025 that are not exact in binary
	return int(math.Ceil(float64(inputSamples)*r.ratio - 1e-9))
}

// InputRate returns the source sample rate
func (r *Resampler) InputRate() float64 { return r.inputRate }

// OutputRate returns the target sample rate
func (r *Resampler) OutputRate() float64 { return r.outputRate }

// Mono is a convenience wrapper for one-shot conversion
func Mono(input []float64, inputRate, outputRate float64) ([]float64, error) {
	r, err := New(inputRate, outputRate)
	if err != nil {
		return nil, err
	}
	return r.Resample(input)
}

// fitLength trims or zero-pads samples to exactly n
func fitLength(samples []float64, n int) []float64 {
	if len(samples) >= n {
		return samples[:n]
	}
	padded := make([]float64, n)
	copy(padded, samples)
	return padded
}
