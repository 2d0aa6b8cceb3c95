package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/andreaprogra/rapport-vocal/internal/logger"
)

type deviceRepository struct {
	*DB
	logger *logger.Logger
}

func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *deviceRepository) KnownDevices(ctx context.Context, username string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("fingerprint").
		From("known_devices").
		Where(sq.Eq{"username": username}).
		OrderBy("bound_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build known devices select: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.KnownDevices").
			Str("username", username).
			Msg("failed to query known devices")
		return nil, fmt.Errorf("failed to query known devices: %w", err)
	}
	defer rows.Close()

	var fingerprints []string
	for rows.Next() {
		var fp string
		if err = rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("failed to scan known device row: %w", err)
		}
		fingerprints = append(fingerprints, fp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate known devices: %w", err)
	}

	return fingerprints, nil
}

func (r *deviceRepository) BindDevice(ctx context.Context, username, fingerprint string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("known_devices").
		Columns("username", "fingerprint", "bound_at").
		Values(username, fingerprint, time.Now().UTC()).
		Suffix("ON CONFLICT(username, fingerprint) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build device bind insert: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "deviceRepository.BindDevice").
			Str("username", username).
			Msg("failed to bind device")
		return fmt.Errorf("failed to bind device: %w", err)
	}

	log.Debug().
		Str("func", "deviceRepository.BindDevice").
		Str("username", username).
		Msg("device fingerprint bound")
	return nil
}
