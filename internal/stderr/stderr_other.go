//go:build !unix

// Package stderr is a no-op where audio backends do not write to fd 2.
package stderr

import (
	"os"

	"github.com/rs/zerolog"
)

// Start is a no-op on this platform.
func Start(zerolog.Logger) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on this platform.
func Stop() {}
