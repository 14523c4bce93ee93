// ABOUTME: Product and version constants
// ABOUTME: Reported by the CLI version flag and startup log
package version

const (
	// Product is the tool name
	Product = "serial-sdr"

	// Manufacturer identifies the maintainers
	Manufacturer = "serial-sdr project"

	// Version is the release version
	Version = "0.2.0"
)

// String returns the product and version for display
func String() string {
	return Product + " " + Version
}
