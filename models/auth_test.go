package models

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signals() DeviceSignals {
	return DeviceSignals{
		ScreenResolution: "80x24",
		Timezone:         "Europe/Paris",
		Locale:           "fr_FR.UTF-8",
		Platform:         "linux/amd64",
		UserAgent:        "rapport-vocal (linux/amd64; go go1.24)",
	}
}

func TestDeviceSignals_Fingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, signals().Fingerprint(), signals().Fingerprint())
}

func TestDeviceSignals_Fingerprint_ChangesWithSignals(t *testing.T) {
	other := signals()
	other.Timezone = "Europe/Berlin"

	assert.NotEqual(t, signals().Fingerprint(), other.Fingerprint())
}

func TestDeviceSignals_Fingerprint_Decodable(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(signals().Fingerprint())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Europe/Paris")
}

func TestDeviceSignals_Fingerprint_TruncatesLongUserAgent(t *testing.T) {
	// A version suffix past the cap must not change the fingerprint.
	long := signals()
	long.UserAgent = strings.Repeat("a", 60)

	longer := signals()
	longer.UserAgent = strings.Repeat("a", 60) + "-v2"

	assert.Equal(t, long.Fingerprint(), longer.Fingerprint())
}
