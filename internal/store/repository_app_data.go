package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/models"
)

// appStateKey is the single storage key the aggregate lives under, kept from
// the original product for data compatibility.
const appStateKey = "rapportsApp"

type appDataRepository struct {
	*DB
	logger *logger.Logger

	quotaBytes int64
	maxDrafts  int
	maxReports int

	// mu serializes every load-mutate-save cycle. Two in-flight mutations
	// would otherwise be last-write-wins over the whole aggregate.
	mu sync.Mutex
}

func NewAppDataRepository(db *DB, cfg config.Storage, logger *logger.Logger) AppDataRepository {
	return &appDataRepository{
		DB:         db,
		logger:     logger,
		quotaBytes: cfg.QuotaBytes,
		maxDrafts:  cfg.MaxDrafts,
		maxReports: cfg.MaxReports,
	}
}

func (r *appDataRepository) Load(ctx context.Context) (models.AppData, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("app_state").
		Where(sq.Eq{"key": appStateKey}).
		ToSql()
	if err != nil {
		return models.AppData{}, fmt.Errorf("build app state select: %w", err)
	}

	var raw string
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.AppData{}, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "appDataRepository.Load").
			Msg("failed to read app state row")
		return models.AppData{}, fmt.Errorf("failed to read app state: %w", scanErr)
	}

	var data models.AppData
	if err = json.Unmarshal([]byte(raw), &data); err != nil {
		log.Err(err).
			Str("func", "appDataRepository.Load").
			Msg("failed to decode app state payload")
		return models.AppData{}, fmt.Errorf("failed to decode app state: %w", err)
	}

	return data, nil
}

func (r *appDataRepository) Save(ctx context.Context, data models.AppData) error {
	log := logger.FromContext(ctx)

	data.LastSaved = time.Now().UTC()
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode app state: %w", err)
	}

	if r.quotaBytes > 0 && int64(len(payload)) > r.quotaBytes {
		return fmt.Errorf("%w: %d bytes over %d byte limit", ErrQuotaExceeded, len(payload), r.quotaBytes)
	}

	query, args, err := sq.Insert("app_state").
		Columns("key", "value", "saved_at").
		Values(appStateKey, string(payload), data.LastSaved).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build app state upsert: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "appDataRepository.Save").
			Int("payload_bytes", len(payload)).
			Msg("failed to write app state row")
		return fmt.Errorf("failed to write app state: %w", err)
	}

	return nil
}

func (r *appDataRepository) Mutate(ctx context.Context, fn func(*models.AppData) error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	if err = fn(&data); err != nil {
		return false, err
	}

	err = r.Save(ctx, data)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		return false, err
	}

	// Deliberate data-loss policy: drop the oldest entries and tell the
	// caller so the user can be notified that old data was discarded.
	r.logger.Warn().
		Str("func", "appDataRepository.Mutate").
		Int("drafts", len(data.Drafts)).
		Int("reports", len(data.Reports)).
		Msg("quota exceeded, trimming old data")

	trimRetention(&data, r.maxDrafts, r.maxReports)

	if err = r.Save(ctx, data); err != nil {
		return false, fmt.Errorf("save after retention trim: %w", err)
	}
	return true, nil
}

// trimRetention keeps only the N most recent drafts and reports. Both slices
// are stored most-recent-first, so a prefix cut preserves order and recency.
func trimRetention(data *models.AppData, maxDrafts, maxReports int) {
	if maxDrafts > 0 && len(data.Drafts) > maxDrafts {
		data.Drafts = data.Drafts[:maxDrafts]
	}
	if maxReports > 0 && len(data.Reports) > maxReports {
		data.Reports = data.Reports[:maxReports]
	}
}
