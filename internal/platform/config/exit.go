package config

import (
	"fmt"
	"os"
)

// Exitf reports a fatal configuration error on stderr and exits with code 1.
// Only command entry points should call this; library code returns errors.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
