package store

import (
	"context"
	"fmt"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
)

// ClientStorages bundles every repository the client needs.
type ClientStorages struct {
	AppData AppDataRepository
	Devices DeviceRepository
}

// NewClientStorages opens the local SQLite database, applies migrations and
// constructs all repositories on the shared connection.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to local database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate local database: %w", err)
	}

	return &ClientStorages{
		AppData: NewAppDataRepository(db, cfg, log),
		Devices: NewDeviceRepository(db, log),
	}, nil
}
