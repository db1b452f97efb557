// Package settings exposes process-wide configuration read once from the
// environment.
package settings

import (
	"os"
	"strings"
	"sync"
)

var (
	once sync.Once
	dev  bool
)

// Dev reports whether development mode is enabled. The value is read from
// the AIEXEC_DEV environment variable on first call (default false) and
// fixed for the process lifetime.
func Dev() bool {
	once.Do(func() {
		dev = strings.EqualFold(os.Getenv("AIEXEC_DEV"), "true")
	})
	return dev
}
