// ABOUTME: Tests for the sample preprocessor
// ABOUTME: Tests each step and the full Process pipeline
package preprocess

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

func ptr(v float64) *float64 { return &v }

func TestMixdown_Stereo(t *testing.T) {
	pcm := audio.PCM{SampleRate: 8000, Channels: 2, Samples: []float64{1, 3, 2, 4}}

	out, err := Mixdown(pcm)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0, 3.0}, out)
}

func TestMixdown_MonoPassthrough(t *testing.T) {
	pcm := audio.PCM{SampleRate: 8000, Channels: 1, Samples: []float64{0.5, -0.25}}

	out, err := Mixdown(pcm)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25}, out)

	// Must not alias the input
	out[0] = 0
	assert.Equal(t, 0.5, pcm.Samples[0])
}

func TestMixdown_Unsupported(t *testing.T) {
	for _, channels := range []int{0, 3, 6} {
		pcm := audio.PCM{SampleRate: 8000, Channels: channels, Samples: make([]float64, 12)}
		_, err := Mixdown(pcm)
		assert.True(t, errors.Is(err, ErrUnsupportedChannels), "channels=%d", channels)
	}
}

func TestWindow(t *testing.T) {
	samples := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name  string
		start float64
		end   *float64
		want  []float64
	}{
		{"whole", 0, nil, samples},
		{"from start", 0.5, nil, []float64{5, 6, 7, 8, 9}},
		{"bounded", 0.2, ptr(0.4), []float64{2, 3}},
		{"end clipped", 0.7, ptr(5), []float64{7, 8, 9}},
		{"fractional index truncates", 0.25, ptr(0.55), []float64{2, 3, 4}},
		{"infinite end clipped", 0.8, ptr(math.Inf(1)), []float64{8, 9}},
		{"huge end clipped", 0.8, ptr(1e300), []float64{8, 9}},
		{"nan end unbounded", 0.8, ptr(math.NaN()), []float64{8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Window(samples, 10, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWindow_Empty(t *testing.T) {
	samples := make([]float64, 10)

	tests := []struct {
		name  string
		start float64
		end   *float64
	}{
		{"start equals end", 0.3, ptr(0.3)},
		{"start after end", 0.5, ptr(0.2)},
		{"start past input", 1.0, nil},
		{"start far past input", 3.0, ptr(4)},
		{"negative start", -1, nil},
		{"nan start", math.NaN(), nil},
		{"infinite start", math.Inf(1), nil},
		{"huge start", 1e300, nil},
		{"negative infinite end", 0, ptr(math.Inf(-1))},
		{"huge negative end", 0, ptr(-1e300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Window(samples, 10, tt.start, tt.end)
			assert.True(t, errors.Is(err, ErrEmptyWindow), "got %v", err)
		})
	}
}

func TestRemoveDC(t *testing.T) {
	samples := []float64{1, 2, 3, 6}
	RemoveDC(samples)
	assert.Equal(t, []float64{-2, -1, 0, 3}, samples)

	RemoveDC(nil)
}

func TestNormalize(t *testing.T) {
	samples := []float64{-2, 1, 0.5, 4}
	require.NoError(t, Normalize(samples))
	assert.Equal(t, []float64{-0.5, 0.25, 0.125, 1}, samples)
}

func TestNormalize_Silent(t *testing.T) {
	err := Normalize([]float64{0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrSilentInput))
}

func sinePCM(freq float64, rate, n int) audio.PCM {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.3*math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) + 0.1
	}
	return audio.PCM{SampleRate: rate, Channels: 1, Samples: samples}
}

func TestProcess_SymbolCountAndRange(t *testing.T) {
	pcm := sinePCM(440, 44100, 44100)

	out, err := Process(pcm, Options{AudioRate: 11025, SymbolRate: 7350})
	require.NoError(t, err)
	require.Len(t, out, 7350)

	var sum, peak float64
	for _, v := range out {
		assert.LessOrEqual(t, math.Abs(v), 1.0)
		sum += v
		peak = math.Max(peak, math.Abs(v))
	}
	assert.InDelta(t, 0, sum/float64(len(out)), 1e-9)
	assert.InDelta(t, 1, peak, 1e-12)
}

func TestProcess_Window(t *testing.T) {
	pcm := sinePCM(440, 11025, 2*11025)

	out, err := Process(pcm, Options{AudioRate: 11025, SymbolRate: 1000, Start: 0.5, End: ptr(1.5)})
	require.NoError(t, err)
	assert.Len(t, out, 1000)
}

func TestProcess_Silent(t *testing.T) {
	pcm := audio.PCM{SampleRate: 11025, Channels: 1, Samples: []float64{0, 0, 0, 0}}

	_, err := Process(pcm, Options{AudioRate: 11025, SymbolRate: 11025})
	assert.True(t, errors.Is(err, ErrSilentInput))
}

func TestProcess_Errors(t *testing.T) {
	good := sinePCM(440, 8000, 800)

	tests := []struct {
		name string
		pcm  audio.PCM
		opts Options
		is   error
	}{
		{"bad channels", audio.PCM{SampleRate: 8000, Channels: 4, Samples: make([]float64, 8)}, Options{AudioRate: 8000, SymbolRate: 8000}, ErrUnsupportedChannels},
		{"empty window", good, Options{AudioRate: 8000, SymbolRate: 8000, Start: 1}, ErrEmptyWindow},
		{"no audio rate", good, Options{SymbolRate: 8000}, nil},
		{"no symbol rate", good, Options{AudioRate: 8000}, nil},
		{"no input rate", audio.PCM{Channels: 1, Samples: []float64{1}}, Options{AudioRate: 8000, SymbolRate: 8000}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Process(tt.pcm, tt.opts)
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}
