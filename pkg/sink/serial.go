// ABOUTME: Serial port sink
// ABOUTME: Opens a UART 8N1 at the symbol rate
package sink

import (
	"fmt"
	"log"

	"go.bug.st/serial"
)

// Serial is a serial port sink
type Serial struct {
	serial.Port
	name string
	baud int
}

// OpenSerial opens the named port at baud with 8 data bits, no parity and
// one stop bit
func OpenSerial(name string, baud int) (*Serial, error) {
	if baud <= 0 {
		return nil, fmt.Errorf("invalid baud rate: %d", baud)
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}

	log.Printf("Opened serial port %s at %d baud", name, baud)

	return &Serial{Port: port, name: name, baud: baud}, nil
}

// Name returns the device name
func (s *Serial) Name() string { return s.name }

// Baud returns the configured baud rate
func (s *Serial) Baud() int { return s.baud }
