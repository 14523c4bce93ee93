// ABOUTME: Transmitter orchestration
// ABOUTME: Decodes, modulates and transmits one input file
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio/decode"
	"github.com/serial-sdr/serial-sdr-go/pkg/audio/encode"
	"github.com/serial-sdr/serial-sdr-go/pkg/modulate"
	"github.com/serial-sdr/serial-sdr-go/pkg/preprocess"
	"github.com/serial-sdr/serial-sdr-go/pkg/serialsdr"
	"github.com/serial-sdr/serial-sdr-go/pkg/sink"
)

// Run transmits cfg.InputFile. Cancelling ctx stops a looping transmission
// and is not an error.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	pipeline, err := cfg.Pipeline()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	pcm, err := decode.File(cfg.InputFile, cfg.RawFormat())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	log.Printf("Decoded %s: %.2fs, %d Hz, %d channels",
		cfg.InputFile, pcm.Duration(), pcm.SampleRate, pcm.Channels)

	symbols, err := pipeline.Process(pcm)
	if err != nil {
		return fmt.Errorf("%w: %w", processCategory(err), err)
	}
	log.Printf("Encoded %d symbols with %s at %.0f symbols/s (%d baud)",
		len(symbols), pipeline.Config().Method, cfg.SymbolRate(), cfg.DeviceBaud())

	if cfg.Debug {
		logLevelHistogram(symbols)
	}

	if cfg.PreviewFile != "" {
		if err := writePreview(cfg.PreviewFile, symbols, int(cfg.SymbolRate())); err != nil {
			return fmt.Errorf("%w: %w", ErrSink, err)
		}
		log.Printf("Wrote envelope preview to %s", cfg.PreviewFile)
	}

	out, err := openSink(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSink, err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Printf("Failed to close output: %v", err)
		}
	}()

	n, err := sink.Transmit(ctx, out, symbols, sink.Options{
		Loop:  cfg.Loop,
		Delay: cfg.LoopDelay(),
	})
	if errors.Is(err, context.Canceled) {
		log.Printf("Transmission stopped after %d iterations", n)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSink, err)
	}

	log.Printf("Transmission complete")
	return nil
}

// processCategory separates bad input (layout, time window) from a signal
// that cannot be modulated
func processCategory(err error) error {
	if errors.Is(err, preprocess.ErrEmptyWindow) || errors.Is(err, preprocess.ErrUnsupportedChannels) {
		return ErrInput
	}
	return ErrSignal
}

// openSink prefers the output file over the serial port
func openSink(cfg Config) (sink.Sink, error) {
	if cfg.OutputFile != "" {
		log.Printf("Writing symbols to %s", cfg.OutputFile)
		return sink.CreateFile(cfg.OutputFile)
	}
	return sink.OpenSerial(cfg.Port, cfg.DeviceBaud())
}

func writePreview(path string, symbols []byte, rate int) error {
	pcm, err := serialsdr.Preview(symbols, rate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	if err := encode.WAV(f, pcm, 16); err != nil {
		return err
	}
	return f.Sync()
}

func logLevelHistogram(symbols []byte) {
	var counts [modulate.NumLevels]int
	for _, s := range symbols {
		if level, ok := modulate.LevelOf(s); ok {
			counts[level]++
		}
	}
	for level, count := range counts {
		log.Printf("Level %d (0x%02x): %d symbols", level, modulate.CodeTable[level], count)
	}
}
