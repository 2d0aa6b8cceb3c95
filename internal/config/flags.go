package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-webhook-url transcription webhook endpoint
//	-d sqlite database path
//	-sheet-id directory spreadsheet ID
//	-sheet-name directory spreadsheet tab name
//	-directory-mode roster source ("remote" or "static")
//	-directory-format export wire format ("gviz" or "csv")
//	-device-policy device binding policy ("single" or "multi")
//	-token-sign-key session token signing key
//	-token-duration session token lifetime (e.g. "12h")
//	-export-dir directory for text/PDF exports
//	-share-command system command for native share
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var webhookURL string
	var databaseDSN string
	var sheetID string
	var sheetName string
	var directoryMode string
	var directoryFormat string
	var devicePolicy string
	var tokenSignKey string
	var tokenDuration time.Duration
	var exportDir string
	var shareCommand string
	var jsonConfigPath string

	flag.StringVar(&webhookURL, "webhook-url", "", "Transcription webhook URL")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&sheetID, "sheet-id", "", "Directory spreadsheet ID")
	flag.StringVar(&sheetName, "sheet-name", "", "Directory spreadsheet tab name")
	flag.StringVar(&directoryMode, "directory-mode", "", "Roster source: remote or static")
	flag.StringVar(&directoryFormat, "directory-format", "", "Directory export format: gviz or csv")
	flag.StringVar(&devicePolicy, "device-policy", "", "Device binding policy: single or multi")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token lifetime (e.g. 12h)")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for text/PDF exports")
	flag.StringVar(&shareCommand, "share-command", "", "System command for native share")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DevicePolicy:  DevicePolicy(devicePolicy),
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			ExportDir:     exportDir,
			ShareCommand:  shareCommand,
		},
		Directory: Directory{
			Mode:      DirectoryMode(directoryMode),
			SheetID:   sheetID,
			SheetName: sheetName,
			Format:    DirectoryFormat(directoryFormat),
		},
		Webhook: Webhook{
			URL: webhookURL,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}
