// ABOUTME: Code table shared by all encoders
// ABOUTME: Five UART characters ordered by pulse count
package modulate

import (
	"errors"
	"fmt"
)

// NumLevels is the number of quantization levels
const NumLevels = 5

// CodeTable maps a level to its UART character. Frames are shown start
// bit first, LSB first, stop bit last:
//
//	0xff -_---------
//	0xfd -_-_-------
//	0xf5 -_-_-_-----
//	0xd5 -_-_-_-_---
//	0x55 -_-_-_-_-_-
var CodeTable = [NumLevels]byte{0xff, 0xfd, 0xf5, 0xd5, 0x55}

// Levels holds the number of low pulses in each code
var Levels = [NumLevels]int{1, 2, 3, 4, 5}

const (
	// LowDensity is the code with the fewest pulses
	LowDensity = 0xff

	// HighDensity is the code with the most pulses
	HighDensity = 0x55
)

// ErrUnknownCode is returned when decoding a byte that is not in CodeTable
var ErrUnknownCode = errors.New("byte is not a code table entry")

// clampSample limits v to [-1, 1]. NaN is treated as silence.
func clampSample(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	case v != v:
		return 0
	default:
		return v
	}
}

// quantize returns clamp(floor(x), 0, NumLevels-1). Clamping happens before
// the integer conversion so overshoot of any size saturates.
func quantize(x float64) int {
	switch {
	case x >= NumLevels-1:
		return NumLevels - 1
	case x >= 0:
		return int(x)
	default:
		// negative values and NaN
		return 0
	}
}

// LevelOf returns the level of a code table entry
func LevelOf(code byte) (int, bool) {
	for level, c := range CodeTable {
		if c == code {
			return level, true
		}
	}
	return 0, false
}

// DecodeLevels maps each symbol back to its level, for envelope inspection
// of an encoded stream
func DecodeLevels(symbols []byte) ([]float64, error) {
	levels := make([]float64, len(symbols))
	for i, s := range symbols {
		level, ok := LevelOf(s)
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02x at offset %d", ErrUnknownCode, s, i)
		}
		levels[i] = float64(level)
	}
	return levels, nil
}
