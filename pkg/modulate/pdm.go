// ABOUTME: Character-based pulse-density modulation
// ABOUTME: Memoryless rounding of each sample to one of five levels
package modulate

import "math"

// EncodePDM quantizes each sample v in [-1, 1] to level round(2+2v).
// No error is carried between samples.
func EncodePDM(samples []float64) []byte {
	chars := make([]byte, len(samples))
	for i, v := range samples {
		chars[i] = CodeTable[pdmLevel(v)]
	}
	return chars
}

func pdmLevel(v float64) int {
	return quantize(math.Round(2 + 2*clampSample(v)))
}
