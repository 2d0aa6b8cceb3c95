package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/models"
)

func newTestAppDataRepo(t *testing.T, cfg config.Storage) (AppDataRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := NewAppDataRepository(&DB{DB: db, logger: l}, cfg, l)
	return repo, mock, db
}

func appStateJSON(t *testing.T, data models.AppData) string {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	return string(payload)
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestAppDataRepository_Load_Success(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	stored := models.AppData{
		Drafts:  []models.Draft{{ID: "d1", Title: "Brouillon"}},
		Reports: []models.Report{{ID: "r1", Title: "Rapport"}},
	}

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(appStateJSON(t, stored)))

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Drafts, 1)
	require.Len(t, data.Reports, 1)
	assert.Equal(t, "d1", data.Drafts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppDataRepository_Load_NoRowMeansEmptyState(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnError(sql.ErrNoRows)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Drafts)
	assert.Empty(t, data.Reports)
	assert.Empty(t, data.Folders)
}

func TestAppDataRepository_Load_CorruptPayload(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("pas du json"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode app state")
}

func TestAppDataRepository_Load_DBError(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnError(errors.New("db gone"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read app state")
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestAppDataRepository_Save_UpsertsAggregate(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	mock.ExpectExec("INSERT INTO app_state").
		WithArgs(appStateKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), models.AppData{
		Drafts: []models.Draft{{ID: "d1"}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppDataRepository_Save_QuotaExceeded(t *testing.T) {
	// A tiny quota rejects any real payload before the DB is touched.
	repo, _, db := newTestAppDataRepo(t, config.Storage{QuotaBytes: 10})
	defer db.Close()

	err := repo.Save(context.Background(), models.AppData{
		Drafts: []models.Draft{{ID: "d1", Body: "un corps de rapport assez long"}},
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

// ── Mutate ───────────────────────────────────────────────────────────────────

func TestAppDataRepository_Mutate_LoadApplySave(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO app_state").
		WithArgs(appStateKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	trimmed, err := repo.Mutate(context.Background(), func(data *models.AppData) error {
		data.Drafts = append(data.Drafts, models.Draft{ID: "d1"})
		return nil
	})
	require.NoError(t, err)
	assert.False(t, trimmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppDataRepository_Mutate_FnErrorSkipsSave(t *testing.T) {
	repo, mock, db := newTestAppDataRepo(t, config.Storage{})
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnError(sql.ErrNoRows)

	boom := errors.New("refus")
	_, err := repo.Mutate(context.Background(), func(*models.AppData) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppDataRepository_Mutate_QuotaTrimRetries(t *testing.T) {
	// Quota sized so three fat drafts overflow but one trimmed draft fits.
	repo, mock, db := newTestAppDataRepo(t, config.Storage{
		QuotaBytes: 2048,
		MaxDrafts:  1,
		MaxReports: 1,
	})
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs(appStateKey).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO app_state").
		WithArgs(appStateKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	fatBody := make([]byte, 700)
	for i := range fatBody {
		fatBody[i] = 'x'
	}

	trimmed, err := repo.Mutate(context.Background(), func(data *models.AppData) error {
		for _, id := range []string{"d1", "d2", "d3"} {
			data.Drafts = append(data.Drafts, models.Draft{ID: id, Body: string(fatBody)})
		}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, trimmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── trimRetention ────────────────────────────────────────────────────────────

func TestTrimRetention_PrefixCutKeepsNewest(t *testing.T) {
	// Lists are stored most-recent-first, so the prefix survives.
	data := models.AppData{
		Drafts:  []models.Draft{{ID: "d3"}, {ID: "d2"}, {ID: "d1"}},
		Reports: []models.Report{{ID: "r2"}, {ID: "r1"}},
	}

	trimRetention(&data, 2, 1)

	require.Len(t, data.Drafts, 2)
	assert.Equal(t, "d3", data.Drafts[0].ID)
	assert.Equal(t, "d2", data.Drafts[1].ID)

	require.Len(t, data.Reports, 1)
	assert.Equal(t, "r2", data.Reports[0].ID)
}

func TestTrimRetention_NoopUnderLimit(t *testing.T) {
	data := models.AppData{Drafts: []models.Draft{{ID: "d1"}}}

	trimRetention(&data, 10, 20)
	assert.Len(t, data.Drafts, 1)
}
