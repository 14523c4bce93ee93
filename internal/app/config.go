// ABOUTME: Application configuration and validation
// ABOUTME: Loads YAML config files and derives baud and symbol rates
package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
	"github.com/serial-sdr/serial-sdr-go/pkg/audio/decode"
	"github.com/serial-sdr/serial-sdr-go/pkg/modulate"
	"github.com/serial-sdr/serial-sdr-go/pkg/serialsdr"
)

// Config holds transmitter configuration
type Config struct {
	InputFile   string   `yaml:"input_file"`
	Port        string   `yaml:"port"`
	OutputFile  string   `yaml:"output_file"`
	PreviewFile string   `yaml:"preview_file"`
	StartOffset float64  `yaml:"start_offset"` // seconds
	EndOffset   *float64 `yaml:"end_offset"`   // seconds
	AudioRate   int      `yaml:"audio_rate"`
	BaudRate    float64  `yaml:"baud_rate"`
	Frequency   float64  `yaml:"frequency"`
	Modulation  string   `yaml:"modulation"`
	Loop        bool     `yaml:"loop"`
	Delay       float64  `yaml:"delay"` // seconds
	FrameBits   int      `yaml:"frame_bits"`
	RawRate     int      `yaml:"raw_rate"`
	RawChannels int      `yaml:"raw_channels"`
	RawBits     int      `yaml:"raw_bits"`
	Debug       bool     `yaml:"debug"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		AudioRate:   serialsdr.DefaultAudioRate,
		Modulation:  modulate.DefaultMethod.String(),
		Delay:       1.0,
		FrameBits:   1,
		RawRate:     44100,
		RawChannels: 1,
		RawBits:     16,
	}
}

// LoadFile reads the YAML file at path over cfg. Keys missing from the file
// keep their current values; unknown keys are an error.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks every setting without touching the input or the device
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.New("input_file is required")
	}
	if c.Port == "" && c.OutputFile == "" {
		return errors.New("either port or output_file must be specified")
	}

	if c.BaudRate < 0 {
		return fmt.Errorf("baud_rate must not be negative, got %v", c.BaudRate)
	}
	if c.Frequency < 0 {
		return fmt.Errorf("frequency must not be negative, got %v", c.Frequency)
	}
	if c.BaudRate > 0 && c.Frequency > 0 {
		return errors.New("baud_rate and frequency are mutually exclusive")
	}
	if c.BaudRate == 0 && c.Frequency == 0 {
		return errors.New("one of baud_rate or frequency is required")
	}
	if c.DeviceBaud() < 1 {
		return fmt.Errorf("baud rate must be at least 1, got %d", c.DeviceBaud())
	}

	if c.FrameBits < 1 {
		return fmt.Errorf("frame_bits must be at least 1, got %d", c.FrameBits)
	}
	if c.AudioRate < 1 {
		return fmt.Errorf("audio_rate must be positive, got %d", c.AudioRate)
	}
	if c.StartOffset < 0 {
		return fmt.Errorf("start_offset must not be negative, got %v", c.StartOffset)
	}
	if c.EndOffset != nil && *c.EndOffset <= c.StartOffset {
		return fmt.Errorf("end_offset (%v) must be greater than start_offset (%v)", *c.EndOffset, c.StartOffset)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", c.Delay)
	}

	if _, err := c.Method(); err != nil {
		return err
	}

	// Picks the decoder by extension and checks the raw layout
	if _, err := decode.ForPath(c.InputFile, c.RawFormat()); err != nil {
		return err
	}
	return nil
}

// DeviceBaud is the UART baud rate: floor(baud_rate), or floor(2*frequency)
// for a carrier at frequency
func (c *Config) DeviceBaud() int {
	if c.BaudRate > 0 {
		return int(c.BaudRate)
	}
	return modulate.CarrierBaud(c.Frequency)
}

// SymbolRate is the number of symbols per second, one per frame_bits bits
func (c *Config) SymbolRate() float64 {
	return float64(c.DeviceBaud()) / float64(c.FrameBits)
}

// Method returns the parsed modulation method
func (c *Config) Method() (modulate.Method, error) {
	return modulate.ParseMethod(c.Modulation)
}

// LoopDelay returns the delay between transmissions
func (c *Config) LoopDelay() time.Duration {
	return time.Duration(c.Delay * float64(time.Second))
}

// RawFormat returns the sample layout for headerless input
func (c *Config) RawFormat() audio.Format {
	return audio.Format{
		SampleRate: c.RawRate,
		Channels:   c.RawChannels,
		BitDepth:   c.RawBits,
	}
}

// Pipeline builds the modulation pipeline for this configuration
func (c *Config) Pipeline() (*serialsdr.Pipeline, error) {
	method, err := c.Method()
	if err != nil {
		return nil, err
	}
	return serialsdr.NewPipeline(serialsdr.PipelineConfig{
		AudioRate:  c.AudioRate,
		SymbolRate: c.SymbolRate(),
		Start:      c.StartOffset,
		End:        c.EndOffset,
		Method:     method,
	})
}
