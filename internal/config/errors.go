package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidWebhookConfigs indicates invalid transcription webhook
	// settings (missing URL in remote operation).
	ErrInvalidWebhookConfigs = errors.New("invalid webhook configuration")
	// ErrInvalidDirectoryConfigs indicates invalid directory settings
	// (unknown mode/format or missing sheet ID in remote mode).
	ErrInvalidDirectoryConfigs = errors.New("invalid directory configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (empty DSN or non-positive retention limits).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (unknown device policy or missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
