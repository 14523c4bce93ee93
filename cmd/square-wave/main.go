// ABOUTME: Entry point for the square-wave carrier tool
// ABOUTME: Streams 0x55 at twice the carrier frequency until interrupted
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/serial-sdr/serial-sdr-go/internal/version"
	"github.com/serial-sdr/serial-sdr-go/pkg/modulate"
	"github.com/serial-sdr/serial-sdr-go/pkg/sink"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "square-wave [PORT] FREQUENCY",
		Short: "Transmit an unmodulated square carrier using a serial port",
		Long: `square-wave writes 0x55 continuously at a baud rate of twice FREQUENCY,
so the TX line toggles every bit and carries a square wave at FREQUENCY.

Examples:
  square-wave /dev/ttyUSB0 57600
  square-wave -o carrier.bin 1000`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := ""
			if len(args) == 2 {
				port = args[0]
			} else if output == "" {
				return errors.New("either PORT or --output must be specified")
			}

			frequency, err := strconv.ParseFloat(args[len(args)-1], 64)
			if err != nil {
				return fmt.Errorf("invalid frequency %q: %w", args[len(args)-1], err)
			}
			return transmit(cmd.Context(), port, output, frequency)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the carrier to this file instead of a port")
	return cmd
}

func transmit(ctx context.Context, port, output string, frequency float64) error {
	baud := modulate.CarrierBaud(frequency)
	if baud < 1 {
		return fmt.Errorf("frequency must be at least 0.5 Hz, got %v", frequency)
	}

	var out sink.Sink
	var err error
	if output != "" {
		out, err = sink.CreateFile(output)
	} else {
		out, err = sink.OpenSerial(port, baud)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Printf("Failed to close output: %v", err)
		}
	}()

	log.Printf("Transmitting %v Hz square wave at %d baud", frequency, baud)
	log.Printf("Press Ctrl-C to stop")

	// one second of carrier per write
	n, err := sink.Transmit(ctx, out, modulate.SquareWave(baud), sink.Options{Loop: true})
	if errors.Is(err, context.Canceled) {
		log.Printf("Stopped after %d writes", n)
		return nil
	}
	return err
}
