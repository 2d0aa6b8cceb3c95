package config

import "time"

// Built-in defaults matching the shipped product configuration. Any source
// (env, flag, JSON) overrides these.
const (
	defaultSheetID   = "1I2SdNqwVB3bU-h3GoYvKjPRm2WhjpPdPc77rJKML9KE"
	defaultSheetName = "Feuille 1"

	defaultCacheTTL       = 60 * time.Second
	defaultRequestTimeout = 15 * time.Second
	defaultWebhookTimeout = 2 * time.Minute
	defaultTokenDuration  = 12 * time.Hour

	defaultDSN        = "rapport-vocal.db"
	defaultQuotaBytes = 5 * 1024 * 1024
	defaultMaxDrafts  = 10
	defaultMaxReports = 20

	defaultMaxFileSize = 50 * 1024 * 1024
)

func defaultSupportedMIMETypes() []string {
	return []string{
		"audio/mp3",
		"audio/mp4",
		"audio/mpeg",
		"audio/wav",
		"audio/webm",
		"audio/ogg",
		"audio/m4a",
	}
}

func defaultPreferredFormats() []string {
	return []string{
		"audio/mp4",
		"audio/webm;codecs=opus",
		"audio/webm",
		"audio/ogg;codecs=opus",
		"audio/wav",
	}
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.App.DevicePolicy == "" {
		cfg.App.DevicePolicy = PolicySingleDevice
	}
	if cfg.App.MaxDevices <= 0 {
		cfg.App.MaxDevices = 2
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ExportDir == "" {
		cfg.App.ExportDir = "."
	}

	if cfg.Directory.Mode == "" {
		cfg.Directory.Mode = ModeRemote
	}
	if cfg.Directory.SheetID == "" {
		cfg.Directory.SheetID = defaultSheetID
	}
	if cfg.Directory.SheetName == "" {
		cfg.Directory.SheetName = defaultSheetName
	}
	if cfg.Directory.Format == "" {
		cfg.Directory.Format = FormatGviz
	}
	if cfg.Directory.CacheTTL <= 0 {
		cfg.Directory.CacheTTL = defaultCacheTTL
	}
	if cfg.Directory.RequestTimeout <= 0 {
		cfg.Directory.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Webhook.RequestTimeout <= 0 {
		cfg.Webhook.RequestTimeout = defaultWebhookTimeout
	}

	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = defaultDSN
	}
	if cfg.Storage.QuotaBytes <= 0 {
		cfg.Storage.QuotaBytes = defaultQuotaBytes
	}
	if cfg.Storage.MaxDrafts <= 0 {
		cfg.Storage.MaxDrafts = defaultMaxDrafts
	}
	if cfg.Storage.MaxReports <= 0 {
		cfg.Storage.MaxReports = defaultMaxReports
	}

	if cfg.Ingestion.MaxFileSize <= 0 {
		cfg.Ingestion.MaxFileSize = defaultMaxFileSize
	}
	if len(cfg.Ingestion.SupportedMIMETypes) == 0 {
		cfg.Ingestion.SupportedMIMETypes = defaultSupportedMIMETypes()
	}
	if len(cfg.Ingestion.PreferredFormats) == 0 {
		cfg.Ingestion.PreferredFormats = defaultPreferredFormats()
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.DevicePolicy {
	case PolicySingleDevice, PolicyMultiDevice:
	default:
		return ErrInvalidAppConfigs
	}
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Directory.Mode {
	case ModeRemote, ModeStatic:
	default:
		return ErrInvalidDirectoryConfigs
	}
	switch cfg.Directory.Format {
	case FormatGviz, FormatCSV:
	default:
		return ErrInvalidDirectoryConfigs
	}
	if cfg.Directory.Mode == ModeRemote && cfg.Directory.SheetID == "" {
		return ErrInvalidDirectoryConfigs
	}

	if cfg.Webhook.URL == "" {
		return ErrInvalidWebhookConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
