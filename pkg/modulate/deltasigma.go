// ABOUTME: Delta-sigma encoders
// ABOUTME: 1-bit and 5-level first-order noise-shaping quantizers
package modulate

// Threshold1Bit is the decision threshold of the 1-bit encoder. The
// accumulator gains 1+v per sample and loses Threshold1Bit per high symbol,
// so the high-symbol density is (1+v)/2 and err stays in [0, 2].
const Threshold1Bit = 2.0

// EncodeDeltaSigma1Bit emits HighDensity whenever the accumulated 1+v
// exceeds Threshold1Bit, and LowDensity otherwise. Silence encodes as
// ff ff 55 ff 55 ...
func EncodeDeltaSigma1Bit(samples []float64) []byte {
	chars := make([]byte, len(samples))
	var err float64
	for i, v := range samples {
		err += 1 + clampSample(v)
		if err > Threshold1Bit {
			err -= Threshold1Bit
			chars[i] = HighDensity
		} else {
			chars[i] = LowDensity
		}
	}
	return chars
}

// dsMulti is the state of the 5-level encoder
type dsMulti struct {
	err float64
}

// next accumulates the target level 2+2v and emits the floor of the
// accumulator. Feedback is the emitted code's pulses above the start-bit
// pulse every code carries, Levels[level]-Levels[0], which keeps err in
// [0, 1). Samples outside [-1, 1] saturate before they reach the
// accumulator.
func (d *dsMulti) next(v float64) int {
	d.err += 2 + 2*clampSample(v)
	level := quantize(d.err)
	d.err -= float64(Levels[level] - Levels[0])
	return level
}

// EncodeDeltaSigmaMulti noise-shapes the sequence over all five codes
func EncodeDeltaSigmaMulti(samples []float64) []byte {
	chars := make([]byte, len(samples))
	var d dsMulti
	for i, v := range samples {
		chars[i] = CodeTable[d.next(v)]
	}
	return chars
}
