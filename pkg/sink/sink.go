// ABOUTME: Sink interface and transmit loop
// ABOUTME: Writes a finished symbol stream once or repeatedly
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"
)

// ErrWrite wraps every failed write to a sink
var ErrWrite = errors.New("sink write failed")

// Sink receives encoded symbol streams
type Sink interface {
	io.WriteCloser
}

// drainer is implemented by sinks that buffer writes, such as serial ports
type drainer interface {
	Drain() error
}

// Options configures Transmit
type Options struct {
	// Loop repeats the stream until the context is cancelled
	Loop bool

	// Delay is the pause between loop iterations
	Delay time.Duration
}

// Transmit writes stream to w. Without Loop it writes once. With Loop it
// writes, waits Delay, and repeats until ctx is cancelled, returning the
// number of completed iterations and ctx.Err(). A write error ends the run
// immediately; there are no retries.
func Transmit(ctx context.Context, w io.Writer, stream []byte, opts Options) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if !opts.Loop {
		if err := writeAll(w, stream); err != nil {
			return 0, err
		}
		return 1, nil
	}

	iterations := 0
	for {
		if err := writeAll(w, stream); err != nil {
			return iterations, err
		}
		iterations++
		log.Printf("Transmission %d complete (%d bytes)", iterations, len(stream))

		select {
		case <-ctx.Done():
			return iterations, ctx.Err()
		case <-time.After(opts.Delay):
		}
	}
}

// writeAll writes the whole stream, continuing after short writes, and
// waits for buffered sinks to drain
func writeAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %w", ErrWrite, io.ErrShortWrite)
		}
		p = p[n:]
	}

	if d, ok := w.(drainer); ok {
		if err := d.Drain(); err != nil {
			return fmt.Errorf("%w: drain: %w", ErrWrite, err)
		}
	}
	return nil
}
