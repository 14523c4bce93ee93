// ABOUTME: Decoder interface definition and file dispatch
// ABOUTME: Selects an implementation by file extension
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/serial-sdr/serial-sdr-go/pkg/audio"
)

// ErrUnsupportedFormat is returned for files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decoder decodes a complete audio stream to PCM samples
type Decoder interface {
	Decode(r io.Reader) (audio.PCM, error)
}

// ForPath returns the decoder matching the file extension of path. raw
// describes the sample layout of headerless .raw/.pcm files and is ignored
// for every other format.
func ForPath(path string, raw audio.Format) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav", ".wave":
		return NewWAV(), nil
	case ".mp3":
		return NewMP3(), nil
	case ".flac":
		return NewFLAC(), nil
	case ".raw", ".pcm":
		return NewPCM(raw)
	default:
		return nil, fmt.Errorf("%w: %q (supported: .wav, .mp3, .flac, .raw, .pcm)", ErrUnsupportedFormat, ext)
	}
}

// File opens and fully decodes the audio file at path
func File(path string, raw audio.Format) (audio.PCM, error) {
	dec, err := ForPath(path, raw)
	if err != nil {
		return audio.PCM{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	pcm, err := dec.Decode(f)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pcm, nil
}
