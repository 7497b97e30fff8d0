// Package config holds the small helpers shared by every binary's
// configuration layer: environment loading and fatal CLI exits.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv populates target from environment variables using its env tags.
// Defaults declared with envDefault apply when a variable is unset.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	return nil
}

// Exitf prints a formatted message to stderr and terminates the process
// with exit code 1. CLI entry points call it instead of log.Fatalf so
// usage errors are not stamped with a log prefix.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
