package typstify

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the package-wide diagnostic logger. It writes to stderr so the
// Typst output stream stays clean.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "typstify",
})

// SetLogger sets a custom logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
