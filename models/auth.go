package models

import (
	"encoding/base64"
	"strings"
	"time"
)

// DeviceSignals are the stable local signals a fingerprint is derived from.
// Keeping them as an explicit struct makes the derivation a pure function
// that can be tested without a real device environment.
type DeviceSignals struct {
	ScreenResolution string
	Timezone         string
	Locale           string
	Platform         string
	UserAgent        string
}

// maxUserAgentLen bounds the user-agent contribution so fingerprints stay
// stable across minor client version bumps appended to the agent string.
const maxUserAgentLen = 50

// Fingerprint encodes the signals into the opaque device token used by the
// binding policies. Same signals always yield the same token.
func (s DeviceSignals) Fingerprint() string {
	agent := s.UserAgent
	if len(agent) > maxUserAgentLen {
		agent = agent[:maxUserAgentLen]
	}
	joined := strings.Join([]string{s.ScreenResolution, s.Timezone, s.Locale, s.Platform, agent}, "-")
	return base64.StdEncoding.EncodeToString([]byte(joined))
}

// AuthResult is a successful authentication outcome: the directory user,
// the moment of login and a locally signed session token.
type AuthResult struct {
	User    User
	Token   string
	LoginAt time.Time
}
