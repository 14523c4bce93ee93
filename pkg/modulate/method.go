// ABOUTME: Modulation method selection
// ABOUTME: Closed set of encoders dispatched once per run
package modulate

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects an encoding strategy
type Method int

// The zero Method is DeltaSigmaMulti, so an unset field selects the default.
const (
	// DeltaSigmaMulti noise-shapes over all five codes
	DeltaSigmaMulti Method = iota
	// PDM quantizes each sample independently
	PDM
	// DeltaSigma1Bit alternates between the lowest and highest density codes
	DeltaSigma1Bit
)

// DefaultMethod has the lowest audible distortion for a given symbol rate
const DefaultMethod = DeltaSigmaMulti

// ErrUnknownMethod is returned for unrecognized method names or values
var ErrUnknownMethod = errors.New("unknown modulation method")

var methodNames = map[Method]string{
	PDM:             "pdm",
	DeltaSigma1Bit:  "ds1bit",
	DeltaSigmaMulti: "dsmulti",
}

// MethodNames lists the accepted method names
func MethodNames() []string {
	return []string{"pdm", "ds1bit", "dsmulti"}
}

// String returns the configuration name of the method
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a configuration name
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownMethod, name, strings.Join(MethodNames(), ", "))
}

// UnmarshalText lets a Method be read from flags and config files
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText writes the configuration name
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

// Encode produces one symbol per sample with the selected method
func Encode(method Method, samples []float64) ([]byte, error) {
	switch method {
	case PDM:
		return EncodePDM(samples), nil
	case DeltaSigma1Bit:
		return EncodeDeltaSigma1Bit(samples), nil
	case DeltaSigmaMulti:
		return EncodeDeltaSigmaMulti(samples), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}
