// ABOUTME: Audio resampling package using a polyphase FIR resampler
// ABOUTME: Converts complete mono signals between sample rates
// Package resample provides anti-aliased sample rate conversion.
//
// Conversion is delegated to github.com/tphakala/go-audio-resampling, a pure
// Go port of libsoxr. Its polyphase filter low-pass filters the signal before
// decimating, so downsampling from high-rate sources does not alias.
//
// The output of a conversion always holds exactly ceil(n * out / in)
// samples, so a signal of d seconds maps to d*out samples.
//
// Example:
//
//	r, err := resample.New(44100, 11025)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := r.Resample(samples)
package resample
