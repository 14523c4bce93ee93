// ABOUTME: Error categories reported by the application
// ABOUTME: Every failure from Run wraps exactly one of these
package app

import "errors"

var (
	// ErrConfig covers invalid or inconsistent configuration
	ErrConfig = errors.New("configuration error")

	// ErrInput covers unreadable or malformed audio input
	ErrInput = errors.New("input error")

	// ErrSignal covers audio that cannot be turned into symbols
	ErrSignal = errors.New("signal error")

	// ErrSink covers failures opening or writing the output
	ErrSink = errors.New("sink error")
)
