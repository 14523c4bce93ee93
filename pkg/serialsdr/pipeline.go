// ABOUTME: Modulation pipeline from decoded audio to symbol bytes
// ABOUTME: Preprocesses samples and encodes them with the selected method
package serialsdr

import (
	"fmt"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
	"github.com/serial-sdr/serial-sdr-go/pkg/modulate"
	"github.com/serial-sdr/serial-sdr-go/pkg/preprocess"
)

// DefaultAudioRate is the intermediate audio rate in Hz
const DefaultAudioRate = 11025

// PipelineConfig holds pipeline configuration
type PipelineConfig struct {
	// AudioRate is the intermediate audio rate in Hz (default: 11025)
	AudioRate int

	// SymbolRate is the number of symbols per second, normally the baud rate
	SymbolRate float64

	// Start is the window start in seconds
	Start float64

	// End is the window end in seconds; nil runs to the end of the input
	End *float64

	// Method selects the symbol encoder (default: multilevel delta-sigma)
	Method modulate.Method
}

// Pipeline converts PCM audio into a symbol stream
type Pipeline struct {
	config PipelineConfig
}

// NewPipeline validates config and fills in defaults
func NewPipeline(config PipelineConfig) (*Pipeline, error) {
	if config.AudioRate == 0 {
		config.AudioRate = DefaultAudioRate
	}
	if config.AudioRate < 0 {
		return nil, fmt.Errorf("invalid audio rate: %d", config.AudioRate)
	}
	if config.SymbolRate <= 0 {
		return nil, fmt.Errorf("invalid symbol rate: %v", config.SymbolRate)
	}
	if config.Start < 0 {
		return nil, fmt.Errorf("invalid start offset: %v", config.Start)
	}
	if config.End != nil && *config.End <= config.Start {
		return nil, fmt.Errorf("end offset %v must be after start offset %v", *config.End, config.Start)
	}
	if _, err := config.Method.MarshalText(); err != nil {
		return nil, err
	}

	return &Pipeline{config: config}, nil
}

// Config returns the effective configuration
func (p *Pipeline) Config() PipelineConfig {
	return p.config
}

// Preprocess returns the normalized sample sequence at the symbol rate
func (p *Pipeline) Preprocess(pcm audio.PCM) ([]float64, error) {
	return preprocess.Process(pcm, preprocess.Options{
		AudioRate:  p.config.AudioRate,
		SymbolRate: p.config.SymbolRate,
		Start:      p.config.Start,
		End:        p.config.End,
	})
}

// Encode maps preprocessed samples to symbols
func (p *Pipeline) Encode(samples []float64) ([]byte, error) {
	return modulate.Encode(p.config.Method, samples)
}

// Process runs Preprocess then Encode
func (p *Pipeline) Process(pcm audio.PCM) ([]byte, error) {
	samples, err := p.Preprocess(pcm)
	if err != nil {
		return nil, err
	}
	return p.Encode(samples)
}
