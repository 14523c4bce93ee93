// ABOUTME: Unmodulated square carrier
// ABOUTME: Builds the constant 0x55 stream that toggles TX every bit
package modulate

// CarrierBaud is the baud rate that produces a square wave at frequency Hz.
// Every bit of a 0x55 frame alternates, so two bits make one period.
func CarrierBaud(frequency float64) int {
	return int(2 * frequency)
}

// SquareWave returns n copies of HighDensity. At n equal to the baud rate
// the stream lasts one second per transmission.
func SquareWave(n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = HighDensity
	}
	return out
}
