package store

import (
	"context"

	"github.com/andreaprogra/rapport-vocal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AppDataRepository persists the whole {drafts, reports, folders} aggregate
// under a single storage key. There is no per-record access: every operation
// is a full load or a full save, matching the single-blob layout the data
// has always had.
type AppDataRepository interface {
	// Load reads the current aggregate. A missing row yields an empty
	// aggregate, not an error.
	Load(ctx context.Context) (models.AppData, error)

	// Save writes the full aggregate, stamping LastSaved. Returns
	// ErrQuotaExceeded without writing when the serialized form exceeds
	// the quota.
	Save(ctx context.Context, data models.AppData) error

	// Mutate runs fn on a freshly loaded aggregate and saves the result.
	// All mutations are serialized behind a single in-process lock so a
	// load-mutate-save cycle can never interleave with (and silently
	// discard) another one. When the save hits the quota, the aggregate
	// is trimmed to the configured retention limits (most recent first)
	// and saved again; trimmed reports it.
	Mutate(ctx context.Context, fn func(*models.AppData) error) (trimmed bool, err error)
}

// DeviceRepository keeps the per-account list of known device fingerprints
// used by the multi-device binding policy. It is keyed by username and is
// independent of the aggregate and of the remote directory record.
type DeviceRepository interface {
	// KnownDevices returns the bound fingerprints for username, oldest first.
	KnownDevices(ctx context.Context, username string) ([]string, error)

	// BindDevice records a fingerprint for username. Binding an already
	// known fingerprint is a no-op.
	BindDevice(ctx context.Context, username, fingerprint string) error
}
