package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		Version       string   `json:"version"`
		DevicePolicy  string   `json:"device_policy"`
		MaxDevices    int      `json:"max_devices"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenDuration Duration `json:"token_duration"`
		ExportDir     string   `json:"export_dir"`
		ShareCommand  string   `json:"share_command"`
	} `json:"app,omitempty"`

	Directory struct {
		Mode           string   `json:"mode"`
		SheetID        string   `json:"sheet_id"`
		SheetName      string   `json:"sheet_name"`
		Format         string   `json:"format"`
		CacheTTL       Duration `json:"cache_ttl"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"directory,omitempty"`

	Webhook struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"webhook,omitempty"`

	Storage struct {
		DSN        string `json:"dsn"`
		QuotaBytes int64  `json:"quota_bytes"`
		MaxDrafts  int    `json:"max_drafts"`
		MaxReports int    `json:"max_reports"`
	} `json:"storage,omitempty"`

	Ingestion struct {
		MaxFileSize        int64    `json:"max_file_size"`
		SupportedMIMETypes []string `json:"supported_mime_types"`
		PreferredFormats   []string `json:"preferred_formats"`
	} `json:"ingestion,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			DevicePolicy:  DevicePolicy(jsonCfg.App.DevicePolicy),
			MaxDevices:    jsonCfg.App.MaxDevices,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			ExportDir:     jsonCfg.App.ExportDir,
			ShareCommand:  jsonCfg.App.ShareCommand,
		},
		Directory: Directory{
			Mode:           DirectoryMode(jsonCfg.Directory.Mode),
			SheetID:        jsonCfg.Directory.SheetID,
			SheetName:      jsonCfg.Directory.SheetName,
			Format:         DirectoryFormat(jsonCfg.Directory.Format),
			CacheTTL:       time.Duration(jsonCfg.Directory.CacheTTL),
			RequestTimeout: time.Duration(jsonCfg.Directory.RequestTimeout),
		},
		Webhook: Webhook{
			URL:            jsonCfg.Webhook.URL,
			RequestTimeout: time.Duration(jsonCfg.Webhook.RequestTimeout),
		},
		Storage: Storage{
			DSN:        jsonCfg.Storage.DSN,
			QuotaBytes: jsonCfg.Storage.QuotaBytes,
			MaxDrafts:  jsonCfg.Storage.MaxDrafts,
			MaxReports: jsonCfg.Storage.MaxReports,
		},
		Ingestion: Ingestion{
			MaxFileSize:        jsonCfg.Ingestion.MaxFileSize,
			SupportedMIMETypes: jsonCfg.Ingestion.SupportedMIMETypes,
			PreferredFormats:   jsonCfg.Ingestion.PreferredFormats,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
