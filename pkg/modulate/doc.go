// ABOUTME: Symbol encoder package for UART pulse-density modulation
// ABOUTME: Maps normalized samples to bytes whose frames carry pulse energy
// Package modulate encodes a normalized sample sequence as UART characters.
//
// When a byte is shifted out of a UART at a fixed baud rate, every low bit
// is a short pulse on the TX line. The five codes of CodeTable carry one to
// five pulses per frame, so the choice of code sets the energy radiated in
// that frame.
//
// Three interchangeable methods pick the codes:
//   - PDM: memoryless 5-level quantization
//   - DeltaSigma1Bit: first-order 1-bit delta-sigma over the extreme codes
//   - DeltaSigmaMulti: first-order 5-level delta-sigma (the default)
//
// Example:
//
//	symbols, err := modulate.Encode(modulate.DeltaSigmaMulti, samples)
package modulate
