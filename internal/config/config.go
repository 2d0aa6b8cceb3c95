package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// rapport-vocal client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, session token
	// parameters and the device-binding policy.
	App App `envPrefix:"APP_"`

	// Directory holds settings for the external user directory
	// (the published spreadsheet export).
	Directory Directory `envPrefix:"DIRECTORY_"`

	// Webhook holds settings for the transcription webhook endpoint.
	Webhook Webhook `envPrefix:"WEBHOOK_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Ingestion holds audio capture and upload validation settings.
	Ingestion Ingestion `envPrefix:"INGESTION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// DevicePolicy selects how account/device binding is enforced at login.
type DevicePolicy string

const (
	// PolicySingleDevice binds the account permanently to the first device
	// that logs in; any other fingerprint is rejected.
	PolicySingleDevice DevicePolicy = "single"

	// PolicyMultiDevice allows up to MaxDevices distinct fingerprints per
	// account, bound on first use.
	PolicyMultiDevice DevicePolicy = "multi"
)

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DevicePolicy is either "single" or "multi". The two policies are
	// alternate designs, not layers; exactly one is active.
	// Env: APP_DEVICE_POLICY
	DevicePolicy DevicePolicy `env:"DEVICE_POLICY"`

	// MaxDevices is the fingerprint cap per account under the multi-device
	// policy. Ignored under the single-device policy.
	// Env: APP_MAX_DEVICES
	MaxDevices int `env:"MAX_DEVICES"`

	// TokenSignKey is the secret key used to sign the local session token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the session token lifetime (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ExportDir is the directory where text exports and PDF downloads are
	// written.
	// Env: APP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`

	// ShareCommand is an optional system command used for the native-share
	// step of the share chain (e.g. "xdg-open"). Empty means the native
	// share capability is absent and the chain falls through to clipboard.
	// Env: APP_SHARE_COMMAND
	ShareCommand string `env:"SHARE_COMMAND"`
}

// DirectoryMode selects where the user roster comes from.
type DirectoryMode string

const (
	// ModeRemote loads the roster from the published spreadsheet export.
	ModeRemote DirectoryMode = "remote"

	// ModeStatic uses the built-in roster only; no network calls are made.
	ModeStatic DirectoryMode = "static"
)

// DirectoryFormat selects the export wire format of the remote roster.
type DirectoryFormat string

const (
	// FormatGviz is the JSON table wrapper export (gviz/tq?tqx=out:json).
	FormatGviz DirectoryFormat = "gviz"

	// FormatCSV is the raw CSV export.
	FormatCSV DirectoryFormat = "csv"
)

// Directory holds settings for the external user directory source.
type Directory struct {
	// Mode is "remote" or "static".
	// Env: DIRECTORY_MODE
	Mode DirectoryMode `env:"MODE"`

	// SheetID is the spreadsheet resource identifier.
	// Env: DIRECTORY_SHEET_ID
	SheetID string `env:"SHEET_ID"`

	// SheetName is the tab name inside the spreadsheet.
	// Env: DIRECTORY_SHEET_NAME
	SheetName string `env:"SHEET_NAME"`

	// Format is "gviz" or "csv".
	// Env: DIRECTORY_FORMAT
	Format DirectoryFormat `env:"FORMAT"`

	// CacheTTL is how long a fetched roster stays fresh before a refetch
	// is attempted.
	// Env: DIRECTORY_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`

	// RequestTimeout is the timeout for a single roster fetch.
	// Env: DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Webhook holds settings for the transcription webhook endpoint.
type Webhook struct {
	// URL is the full webhook endpoint the audio payload is posted to.
	// Env: WEBHOOK_URL
	URL string `env:"URL"`

	// RequestTimeout bounds a single transcription round trip. A hung
	// webhook would otherwise leave a draft generating forever.
	// Env: WEBHOOK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// QuotaBytes caps the serialized size of the persisted aggregate.
	// A save that would exceed it triggers retention trimming.
	// Env: STORAGE_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`

	// MaxDrafts is how many most-recent drafts survive a quota trim.
	// Env: STORAGE_MAX_DRAFTS
	MaxDrafts int `env:"MAX_DRAFTS"`

	// MaxReports is how many most-recent reports survive a quota trim.
	// Env: STORAGE_MAX_REPORTS
	MaxReports int `env:"MAX_REPORTS"`
}

// Ingestion holds audio capture and upload validation settings.
type Ingestion struct {
	// MaxFileSize is the upload size cap in bytes.
	// Env: INGESTION_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// SupportedMIMETypes is the upload allow-list.
	// Env: INGESTION_SUPPORTED_MIME_TYPES (comma-separated)
	SupportedMIMETypes []string `env:"SUPPORTED_MIME_TYPES" envSeparator:","`

	// PreferredFormats is the ordered encoding preference list for the
	// recorder; the first supported one wins.
	// Env: INGESTION_PREFERRED_FORMATS (comma-separated)
	PreferredFormats []string `env:"PREFERRED_FORMATS" envSeparator:","`
}

// GetClientConfig loads, merges, defaults and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins during the merge):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
