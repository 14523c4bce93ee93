// ABOUTME: Tests for the serial-sdr command line
// ABOUTME: Tests arguments, flag parsing and config file precedence
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serial-sdr/serial-sdr-go/internal/app"
)

// execute runs the root command and returns the configuration it produced
func execute(t *testing.T, args ...string) (app.Config, error) {
	t.Helper()

	var got app.Config
	cmd := newRootCmd(func(ctx context.Context, cfg app.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})

	err := cmd.ExecuteContext(context.Background())
	return got, err
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestRootCmd_PositionalPort(t *testing.T) {
	cfg, err := execute(t, "voice.wav", "/dev/ttyUSB0", "-b", "115200")
	require.NoError(t, err)

	assert.Equal(t, "voice.wav", cfg.InputFile)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Port)
	assert.Equal(t, 115200.0, cfg.BaudRate)
	assert.Equal(t, "dsmulti", cfg.Modulation)
	assert.Equal(t, 11025, cfg.AudioRate)
	assert.Nil(t, cfg.EndOffset)
}

func TestRootCmd_Flags(t *testing.T) {
	cfg, err := execute(t, "voice.flac",
		"-p", "/dev/ttyACM0", "-f", "57600", "-m", "ds1bit",
		"-s", "1.5", "-e", "4", "-r", "8000", "-l", "-d", "2",
		"--frame-bits", "10", "--debug")
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Port)
	assert.Equal(t, 57600.0, cfg.Frequency)
	assert.Zero(t, cfg.BaudRate)
	assert.Equal(t, "ds1bit", cfg.Modulation)
	assert.Equal(t, 1.5, cfg.StartOffset)
	require.NotNil(t, cfg.EndOffset)
	assert.Equal(t, 4.0, *cfg.EndOffset)
	assert.Equal(t, 8000, cfg.AudioRate)
	assert.True(t, cfg.Loop)
	assert.Equal(t, 2.0, cfg.Delay)
	assert.Equal(t, 10, cfg.FrameBits)
	assert.True(t, cfg.Debug)
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"baud and frequency", []string{"voice.wav", "-p", "/dev/ttyUSB0", "-b", "9600", "-f", "1000"}},
		{"port twice", []string{"voice.wav", "/dev/ttyUSB0", "-p", "/dev/ttyUSB1", "-b", "9600"}},
		{"too many arguments", []string{"voice.wav", "/dev/ttyUSB0", "extra"}},
		{"bad number", []string{"voice.wav", "-b", "fast"}},
		{"missing config file", []string{"voice.wav", "--config", "/nonexistent/tx.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRootCmd_ConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.yaml")
	content := `input_file: file.wav
port: /dev/ttyS0
baud_rate: 9600
modulation: pdm
delay: 3
end_offset: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := execute(t, "--config", path, "-f", "1000", "-d", "0.5")
	require.NoError(t, err)

	// from the file
	assert.Equal(t, "file.wav", cfg.InputFile)
	assert.Equal(t, "/dev/ttyS0", cfg.Port)
	assert.Equal(t, "pdm", cfg.Modulation)
	require.NotNil(t, cfg.EndOffset)
	assert.Equal(t, 10.0, *cfg.EndOffset)

	// overridden by flags
	assert.Equal(t, 1000.0, cfg.Frequency)
	assert.Zero(t, cfg.BaudRate, "frequency flag replaces the file's baud_rate")
	assert.Equal(t, 0.5, cfg.Delay)

	// positional arguments win over the file
	cfg, err = execute(t, "--config", path, "other.wav", "/dev/ttyUSB9")
	require.NoError(t, err)
	assert.Equal(t, "other.wav", cfg.InputFile)
	assert.Equal(t, "/dev/ttyUSB9", cfg.Port)
	assert.Equal(t, 9600.0, cfg.BaudRate)
}

func TestRootCmd_RunErrorPropagates(t *testing.T) {
	want := errors.New("boom")
	cmd := newRootCmd(func(ctx context.Context, cfg app.Config) error { return want })
	cmd.SetArgs([]string{"voice.wav", "/dev/ttyUSB0", "-b", "9600"})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, want)
}

func TestRootCmd_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.log")

	_, err := execute(t, "voice.wav", "/dev/ttyUSB0", "-b", "9600", "--log-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting serial-sdr")
}
