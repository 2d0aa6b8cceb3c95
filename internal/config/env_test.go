package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":        "2.1.0",
		"APP_DEVICE_POLICY":  "multi",
		"APP_MAX_DEVICES":    "3",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_DURATION": "12h",
		"APP_EXPORT_DIR":     "/tmp/exports",
		"APP_SHARE_COMMAND":  "xdg-open",

		"DIRECTORY_MODE":            "remote",
		"DIRECTORY_SHEET_ID":        "sheet-abc",
		"DIRECTORY_SHEET_NAME":      "Feuille 1",
		"DIRECTORY_FORMAT":          "csv",
		"DIRECTORY_CACHE_TTL":       "60s",
		"DIRECTORY_REQUEST_TIMEOUT": "15s",

		"WEBHOOK_URL":             "https://hook.example.com/transcribe",
		"WEBHOOK_REQUEST_TIMEOUT": "2m",

		"STORAGE_DATABASE_URI": "rapports.db",
		"STORAGE_QUOTA_BYTES":  "5242880",
		"STORAGE_MAX_DRAFTS":   "10",
		"STORAGE_MAX_REPORTS":  "20",

		"INGESTION_MAX_FILE_SIZE":        "52428800",
		"INGESTION_SUPPORTED_MIME_TYPES": "audio/mp3,audio/wav",
		"INGESTION_PREFERRED_FORMATS":    "audio/ogg;codecs=opus,audio/wav",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, PolicyMultiDevice, cfg.App.DevicePolicy)
	assert.Equal(t, 3, cfg.App.MaxDevices)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/tmp/exports", cfg.App.ExportDir)
	assert.Equal(t, "xdg-open", cfg.App.ShareCommand)

	assert.Equal(t, ModeRemote, cfg.Directory.Mode)
	assert.Equal(t, "sheet-abc", cfg.Directory.SheetID)
	assert.Equal(t, "Feuille 1", cfg.Directory.SheetName)
	assert.Equal(t, FormatCSV, cfg.Directory.Format)
	assert.Equal(t, time.Minute, cfg.Directory.CacheTTL)
	assert.Equal(t, 15*time.Second, cfg.Directory.RequestTimeout)

	assert.Equal(t, "https://hook.example.com/transcribe", cfg.Webhook.URL)
	assert.Equal(t, 2*time.Minute, cfg.Webhook.RequestTimeout)

	assert.Equal(t, "rapports.db", cfg.Storage.DSN)
	assert.Equal(t, int64(5242880), cfg.Storage.QuotaBytes)
	assert.Equal(t, 10, cfg.Storage.MaxDrafts)
	assert.Equal(t, 20, cfg.Storage.MaxReports)

	assert.Equal(t, int64(52428800), cfg.Ingestion.MaxFileSize)
	assert.Equal(t, []string{"audio/mp3", "audio/wav"}, cfg.Ingestion.SupportedMIMETypes)
	assert.Equal(t, []string{"audio/ogg;codecs=opus", "audio/wav"}, cfg.Ingestion.PreferredFormats)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("WEBHOOK_URL", "https://hook.example.com")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://hook.example.com", cfg.Webhook.URL)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "pas-une-durée")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
