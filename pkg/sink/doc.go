// ABOUTME: Transmission sink package
// ABOUTME: Delivers symbol streams to serial devices or files
// Package sink delivers an encoded symbol stream.
//
// A Sink is any io.WriteCloser. Two are provided:
//   - Serial: a UART opened 8N1 at the symbol rate (go.bug.st/serial)
//   - File: a raw binary blob for later replay, no header or framing
//
// Transmit writes the stream once, or in a loop with a delay between
// iterations until its context is cancelled.
//
// Example:
//
//	port, err := sink.OpenSerial("/dev/ttyUSB0", 7350)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//	_, err = sink.Transmit(ctx, port, symbols, sink.Options{Loop: true, Delay: time.Second})
package sink
