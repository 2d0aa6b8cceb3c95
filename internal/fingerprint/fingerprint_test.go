package fingerprint

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect_AllSignalsPopulated(t *testing.T) {
	signals := Collect()

	assert.NotEmpty(t, signals.ScreenResolution)
	assert.NotEmpty(t, signals.Timezone)
	assert.NotEmpty(t, signals.Locale)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, signals.Platform)
	assert.True(t, strings.HasPrefix(signals.UserAgent, "rapport-vocal ("))
}

func TestCollect_StableAcrossCalls(t *testing.T) {
	assert.Equal(t, Collect().Fingerprint(), Collect().Fingerprint())
}

func TestLocaleName_FallsBackToC(t *testing.T) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(key, "")
	}
	assert.Equal(t, "C", localeName())
}

func TestLocaleName_PrefersLCAll(t *testing.T) {
	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "fr_FR.UTF-8", localeName())
}
