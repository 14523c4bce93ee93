// ABOUTME: Sample preprocessing package for the modulation pipeline
// ABOUTME: Mixdown, windowing, resampling, DC removal and peak normalization
// Package preprocess turns decoded audio into the normalized sample sequence
// consumed by the symbol encoders.
//
// Steps, in order:
//   - Mixdown: stereo to mono by averaging the two channels
//   - Window: keep the part between the start and end offsets
//   - Resample to the audio rate (anti-aliased), then to the symbol rate
//   - RemoveDC: subtract the mean
//   - Normalize: scale so the peak absolute value is 1
//
// Example:
//
//	samples, err := preprocess.Process(pcm, preprocess.Options{
//	    AudioRate:  11025,
//	    SymbolRate: 7350,
//	})
package preprocess
