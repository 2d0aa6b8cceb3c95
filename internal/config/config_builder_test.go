package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase covers the fields validate() insists on, so tests can focus on
// the one aspect they exercise.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Webhook: Webhook{URL: "https://hook.example.com"},
	}
}

// ── build ────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{App: App{Version: "2.0.0"}},
		&StructuredConfig{Storage: Storage{DSN: "custom.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "custom.db", cfg.Storage.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	// mergo keeps the value already set, so earlier configs take priority.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{Storage: Storage{DSN: "env.db"}},
		&StructuredConfig{Storage: Storage{DSN: "json.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Storage.DSN)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, PolicySingleDevice, cfg.App.DevicePolicy)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, ModeRemote, cfg.Directory.Mode)
	assert.Equal(t, FormatGviz, cfg.Directory.Format)
	assert.Equal(t, defaultSheetID, cfg.Directory.SheetID)
	assert.Equal(t, defaultCacheTTL, cfg.Directory.CacheTTL)
	assert.Equal(t, defaultWebhookTimeout, cfg.Webhook.RequestTimeout)
	assert.Equal(t, defaultDSN, cfg.Storage.DSN)
	assert.Equal(t, defaultMaxDrafts, cfg.Storage.MaxDrafts)
	assert.Equal(t, defaultMaxReports, cfg.Storage.MaxReports)
	assert.Equal(t, int64(defaultMaxFileSize), cfg.Ingestion.MaxFileSize)
	assert.NotEmpty(t, cfg.Ingestion.SupportedMIMETypes)
	assert.NotEmpty(t, cfg.Ingestion.PreferredFormats)
}

func TestBuild_DefaultsDoNotOverrideValues(t *testing.T) {
	base := validBase()
	base.App.TokenDuration = time.Hour
	base.Storage.MaxDrafts = 5

	b := newConfigBuilder()
	b.configs = append(b.configs, base)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5, cfg.Storage.MaxDrafts)
}

// ── validate ─────────────────────────────────────────────────────────────────

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := validBase()
	cfg.App.TokenSignKey = ""
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_UnknownDevicePolicy(t *testing.T) {
	cfg := validBase()
	cfg.applyDefaults()
	cfg.App.DevicePolicy = "triple"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_UnknownDirectoryMode(t *testing.T) {
	cfg := validBase()
	cfg.applyDefaults()
	cfg.Directory.Mode = "ailleurs"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidDirectoryConfigs)
}

func TestValidate_UnknownDirectoryFormat(t *testing.T) {
	cfg := validBase()
	cfg.applyDefaults()
	cfg.Directory.Format = "xml"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidDirectoryConfigs)
}

func TestValidate_MissingWebhookURL(t *testing.T) {
	cfg := validBase()
	cfg.Webhook.URL = ""
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWebhookConfigs)
}

func TestValidate_FullDefaultsPass(t *testing.T) {
	cfg := validBase()
	cfg.applyDefaults()

	assert.NoError(t, cfg.validate())
}

// ── withJSON ─────────────────────────────────────────────────────────────────

func TestWithJSON_LoadsWhenPathSet(t *testing.T) {
	path := writeTempJSONConfig(t, `{"storage": {"dsn": "json.db"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DSN)
}

func TestWithJSON_SkippedWithoutPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/chemin/absent.json"})
	b.withJSON()

	assert.Error(t, b.err)
}
