// ABOUTME: Entry point for the serial-sdr transmitter
// ABOUTME: Parses CLI flags and config files, then runs the transmitter
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/serial-sdr/serial-sdr-go/internal/app"
	"github.com/serial-sdr/serial-sdr-go/internal/version"
	"github.com/serial-sdr/serial-sdr-go/pkg/modulate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(app.Run).ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// runFunc executes a validated configuration
type runFunc func(ctx context.Context, cfg app.Config) error

// cliFlags holds values that only exist on the command line
type cliFlags struct {
	configFile string
	logFile    string
	endOffset  float64
}

func newRootCmd(run runFunc) *cobra.Command {
	var cli cliFlags
	flagCfg := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serial-sdr [INPUT [PORT]]",
		Short: "Transmit AM-modulated RF using a serial port",
		Long: `serial-sdr turns an audio file into a UART byte stream whose start
and data bits pulse the TX line like an AM carrier.

The symbol rate is the baud rate (-b), or twice the carrier frequency (-f).
The port may be given with -p or as the second argument. With -o the
stream is written to a file instead of a serial port. Any setting can
also come from a --config YAML file; flags and arguments win.

Examples:
  serial-sdr voice.wav /dev/ttyUSB0 -b 115200
  serial-sdr voice.flac -p /dev/ttyUSB0 -f 57600 -m ds1bit -l -d 2
  serial-sdr voice.mp3 -f 57600 -o stream.bin`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(cli.logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			cfg, err := buildConfig(cmd.Flags(), cli, flagCfg, args)
			if err != nil {
				return fmt.Errorf("%w: %w", app.ErrConfig, err)
			}
			if cfg.Debug {
				log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
				log.Printf("Debug logging enabled")
			}

			log.Printf("Starting %s", version.String())
			if cfg.Loop {
				log.Printf("Press Ctrl-C to stop")
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cli.configFile, "config", "", "YAML config file (flags override its values)")
	f.StringVar(&cli.logFile, "log-file", "", "Also write logs to this file")
	f.BoolVar(&flagCfg.Debug, "debug", false, "Enable debug logging")

	f.StringVarP(&flagCfg.Port, "port", "p", "", "Serial port device name")
	f.Float64VarP(&flagCfg.StartOffset, "start", "s", flagCfg.StartOffset, "Audio start point (seconds)")
	f.Float64VarP(&cli.endOffset, "end", "e", 0, "Audio end point (seconds)")
	f.IntVarP(&flagCfg.AudioRate, "rate", "r", flagCfg.AudioRate, "Audio resample rate (Hz)")
	f.Float64VarP(&flagCfg.BaudRate, "baud", "b", 0, "Baud rate")
	f.Float64VarP(&flagCfg.Frequency, "frequency", "f", 0, "Fundamental frequency (Hz); baud rate is twice this")
	f.StringVarP(&flagCfg.Modulation, "method", "m", flagCfg.Modulation,
		"Modulation method ("+strings.Join(modulate.MethodNames(), ", ")+")")
	f.BoolVarP(&flagCfg.Loop, "loop", "l", false, "Transmit continuously")
	f.Float64VarP(&flagCfg.Delay, "delay", "d", flagCfg.Delay, "Delay between loops (seconds)")
	f.StringVarP(&flagCfg.OutputFile, "output", "o", "", "Write the symbol stream to this file instead of a port")
	f.StringVar(&flagCfg.PreviewFile, "preview", "", "Write the decoded pulse envelope as WAV")
	f.IntVar(&flagCfg.FrameBits, "frame-bits", flagCfg.FrameBits, "Bits per symbol (10 sends one symbol per 8N1 character)")
	f.IntVar(&flagCfg.RawRate, "raw-rate", flagCfg.RawRate, "Sample rate of .raw/.pcm input")
	f.IntVar(&flagCfg.RawChannels, "raw-channels", flagCfg.RawChannels, "Channel count of .raw/.pcm input")
	f.IntVar(&flagCfg.RawBits, "raw-bits", flagCfg.RawBits, "Bit depth of .raw/.pcm input (16 or 24)")

	cmd.MarkFlagsMutuallyExclusive("baud", "frequency")

	return cmd
}

// buildConfig layers defaults, the config file, changed flags and finally
// positional arguments
func buildConfig(flags *pflag.FlagSet, cli cliFlags, flagCfg app.Config, args []string) (app.Config, error) {
	cfg := app.DefaultConfig()
	if cli.configFile != "" {
		if err := app.LoadFile(cli.configFile, &cfg); err != nil {
			return app.Config{}, err
		}
		log.Printf("Loaded config from %s", cli.configFile)
	}

	overrides := map[string]func(){
		"debug":        func() { cfg.Debug = flagCfg.Debug },
		"port":         func() { cfg.Port = flagCfg.Port },
		"start":        func() { cfg.StartOffset = flagCfg.StartOffset },
		"end":          func() { end := cli.endOffset; cfg.EndOffset = &end },
		"rate":         func() { cfg.AudioRate = flagCfg.AudioRate },
		"baud":         func() { cfg.BaudRate, cfg.Frequency = flagCfg.BaudRate, 0 },
		"frequency":    func() { cfg.Frequency, cfg.BaudRate = flagCfg.Frequency, 0 },
		"method":       func() { cfg.Modulation = flagCfg.Modulation },
		"loop":         func() { cfg.Loop = flagCfg.Loop },
		"delay":        func() { cfg.Delay = flagCfg.Delay },
		"output":       func() { cfg.OutputFile = flagCfg.OutputFile },
		"preview":      func() { cfg.PreviewFile = flagCfg.PreviewFile },
		"frame-bits":   func() { cfg.FrameBits = flagCfg.FrameBits },
		"raw-rate":     func() { cfg.RawRate = flagCfg.RawRate },
		"raw-channels": func() { cfg.RawChannels = flagCfg.RawChannels },
		"raw-bits":     func() { cfg.RawBits = flagCfg.RawBits },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})

	if len(args) > 0 {
		cfg.InputFile = args[0]
	}
	if len(args) > 1 {
		if flags.Changed("port") {
			return app.Config{}, fmt.Errorf("port given both as argument %q and flag %q", args[1], cfg.Port)
		}
		cfg.Port = args[1]
	}
	return cfg, nil
}

// setupLogging adds a log file next to stderr when path is set
func setupLogging(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.Printf("Logging to: %s", path)

	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
