// Package fingerprint derives a stable identifier for the machine the client
// runs on. The identifier feeds the per-account device binding check during
// login; it is an obfuscated convenience value, not a security boundary, and
// anyone with shell access can forge it.
package fingerprint

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/andreaprogra/rapport-vocal/models"
)

// Collect gathers the environment signals the fingerprint is derived from.
// Every signal has a fixed fallback so the fingerprint stays stable even in
// stripped-down environments (no TTY, empty locale).
func Collect() models.DeviceSignals {
	return models.DeviceSignals{
		ScreenResolution: terminalResolution(),
		Timezone:         timezoneName(),
		Locale:           localeName(),
		Platform:         runtime.GOOS + "/" + runtime.GOARCH,
		UserAgent:        userAgent(),
	}
}

func terminalResolution() string {
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return fmt.Sprintf("%dx%d", width, height)
	}
	return "0x0"
}

func timezoneName() string {
	zone, _ := time.Now().Zone()
	if zone == "" {
		return "UTC"
	}
	return zone
}

func localeName() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return "C"
}

func userAgent() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown-host"
	}
	return fmt.Sprintf("rapport-vocal (%s; go %s)", host, runtime.Version())
}
