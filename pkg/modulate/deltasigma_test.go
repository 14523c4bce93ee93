// ABOUTME: Tests for delta-sigma encoders
// ABOUTME: Property tests for convergence, boundedness and feedback activity
package modulate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(c float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestDeltaSigma1Bit_Alphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	samples := make([]float64, 5000)
	for i := range samples {
		samples[i] = 2*rng.Float64() - 1
	}

	for _, s := range EncodeDeltaSigma1Bit(samples) {
		assert.Contains(t, []byte{LowDensity, HighDensity}, s)
	}
}

func TestDeltaSigma1Bit_SilenceToggles(t *testing.T) {
	out := EncodeDeltaSigma1Bit(constant(0, 100))

	// the accumulator reaches the threshold on the second sample and only
	// passes it on the third
	require.Equal(t, []byte{0xff, 0xff, 0x55, 0xff, 0x55, 0xff, 0x55}, out[:7])
	for i := 2; i < len(out); i++ {
		want := byte(LowDensity)
		if i%2 == 0 {
			want = HighDensity
		}
		require.Equal(t, want, out[i], "symbol %d", i)
	}
}

func TestDeltaSigma1Bit_Density(t *testing.T) {
	const n = 10000

	for _, c := range []float64{-1, -0.6, 0, 0.35, 1} {
		out := EncodeDeltaSigma1Bit(constant(c, n))

		highs := 0
		for _, s := range out {
			if s == HighDensity {
				highs++
			}
		}
		assert.InDelta(t, float64(n)*(1+c)/2, float64(highs), 1.5, "c=%v", c)
	}
}

func TestDeltaSigmaMulti_Convergence(t *testing.T) {
	for _, n := range []int{1000, 100000} {
		for _, c := range []float64{-1, -0.7, -0.25, 0, 0.3, 0.9, 1} {
			levels, err := DecodeLevels(EncodeDeltaSigmaMulti(constant(c, n)))
			require.NoError(t, err)

			var sum float64
			for _, l := range levels {
				sum += l
			}
			// the residual stays in [0, 1), so the total is off by less than one level
			assert.InDelta(t, float64(n)*(2+2*c), sum, 1+1e-6, "n=%d c=%v", n, c)
		}
	}
}

func TestDeltaSigmaMulti_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := map[string]func(i int) float64{
		"uniform":  func(int) float64 { return 2*rng.Float64() - 1 },
		"floor":    func(int) float64 { return -1 },
		"ceiling":  func(int) float64 { return 1 },
		"square":   func(i int) float64 { return float64(1 - 2*((i/37)%2)) },
		"sine":     func(i int) float64 { return math.Sin(float64(i) * 0.01) },
		"near low": func(int) float64 { return -0.999 },
	}

	for name, gen := range inputs {
		t.Run(name, func(t *testing.T) {
			var d dsMulti
			for i := 0; i < 50000; i++ {
				d.next(gen(i))
				require.GreaterOrEqual(t, d.err, -1e-9, "step %d", i)
				require.Less(t, d.err, 1+1e-9, "step %d", i)
			}
		})
	}
}

func TestDeltaSigmaMulti_SaturatesOvershoot(t *testing.T) {
	out := EncodeDeltaSigmaMulti([]float64{3, -3, 1.0000001, math.NaN(), math.Inf(1)})
	for _, s := range out {
		_, ok := LevelOf(s)
		assert.True(t, ok)
	}
}

func TestOvershootRecovers(t *testing.T) {
	samples := append(constant(1.5, 1000), constant(-1, 10)...)

	t.Run("multi", func(t *testing.T) {
		var d dsMulti
		for _, v := range samples[:1000] {
			d.next(v)
		}
		assert.Less(t, d.err, 1.0)

		out := EncodeDeltaSigmaMulti(samples)
		assert.Equal(t, byte(HighDensity), out[999])
		for i := 1000; i < len(out); i++ {
			assert.Equal(t, byte(LowDensity), out[i], "symbol %d", i)
		}
	})

	t.Run("1bit", func(t *testing.T) {
		out := EncodeDeltaSigma1Bit(samples)
		for i := 1000; i < len(out); i++ {
			assert.Equal(t, byte(LowDensity), out[i], "symbol %d", i)
		}
	})

	t.Run("nan is silence", func(t *testing.T) {
		assert.Equal(t, EncodeDeltaSigma1Bit(constant(0, 20)), EncodeDeltaSigma1Bit(constant(math.NaN(), 20)))
		assert.Equal(t, EncodeDeltaSigmaMulti(constant(0, 20)), EncodeDeltaSigmaMulti(constant(math.NaN(), 20)))
	})
}

// smooth applies a [1 2 1]/4 low-pass, the crudest model of the receiver's
// envelope detector
func smooth(x []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		prev, next := x[max(i-1, 0)], x[min(i+1, len(x)-1)]
		out[i] = (prev + 2*x[i] + next) / 4
	}
	return out
}

// nrmse is the RMS difference normalized by the range of want
func nrmse(got, want []float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	var sum float64
	for i := range want {
		d := got[i] - want[i]
		sum += d * d
		lo, hi = math.Min(lo, want[i]), math.Max(hi, want[i])
	}
	return math.Sqrt(sum/float64(len(want))) / (hi - lo)
}

func TestDeltaSigmaMulti_SineEnvelope(t *testing.T) {
	const rate, freq = 7350.0, 1000.0
	samples := make([]float64, int(rate))
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}

	levels, err := DecodeLevels(EncodeDeltaSigmaMulti(samples))
	require.NoError(t, err)

	// level 2+2v maps back to v
	decoded := make([]float64, len(levels))
	for i, l := range levels {
		decoded[i] = (l - 2) / 2
	}

	assert.Less(t, nrmse(smooth(decoded), smooth(samples)), 0.1)
}
