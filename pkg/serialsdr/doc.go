// ABOUTME: High-level serial-sdr library API
// ABOUTME: Binds the preprocessor and a symbol encoder into one pipeline
// Package serialsdr turns audio into UART symbol streams.
//
// This is the main entry point for library users, providing:
//   - Pipeline: preprocess decoded audio and encode it as symbols
//   - Preview: decode a symbol stream back to its pulse envelope
//
// For lower-level control, see the audio, preprocess, modulate and sink
// packages.
//
// Example:
//
//	pcm, err := decode.File("/path/to/voice.wav", audio.Format{})
//	pipeline, err := serialsdr.NewPipeline(serialsdr.PipelineConfig{
//	    SymbolRate: 7350,
//	})
//	symbols, err := pipeline.Process(pcm)
package serialsdr
