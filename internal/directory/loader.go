package directory

import (
	"context"
	"sync"
	"time"

	"github.com/andreaprogra/rapport-vocal/internal/adapter"
	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/models"
)

// Loader is the remote [UserSource]. It fetches the roster through the
// directory client, caches it for cfg.CacheTTL, and degrades through
// cache → defaults when the remote side is unreachable.
type Loader struct {
	client adapter.DirectoryClient
	format config.DirectoryFormat
	ttl    time.Duration

	logger *logger.Logger

	mu         sync.Mutex
	cache      []models.User
	lastUpdate time.Time
}

func NewLoader(client adapter.DirectoryClient, cfg config.Directory, logger *logger.Logger) *Loader {
	return &Loader{
		client: client,
		format: cfg.Format,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}
}

// GetUsers implements [UserSource].
func (l *Loader) GetUsers(ctx context.Context, forceRefresh bool) []models.User {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !forceRefresh && len(l.cache) > 0 && time.Since(l.lastUpdate) < l.ttl {
		return cloneUsers(l.cache)
	}

	return l.fetchLocked(ctx)
}

// fetchLocked refreshes the cache from the remote sheet. On any failure it
// falls back to the previous cache, then to the default roster. l.mu must be
// held.
func (l *Loader) fetchLocked(ctx context.Context) []models.User {
	log := logger.FromContext(ctx)

	users, err := l.fetchRemote(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "Loader.fetchLocked").
			Msg("roster fetch failed")

		if len(l.cache) > 0 {
			log.Debug().Str("func", "Loader.fetchLocked").Msg("serving stale cached roster")
			return cloneUsers(l.cache)
		}

		log.Debug().Str("func", "Loader.fetchLocked").Msg("serving default roster")
		return DefaultUsers()
	}

	l.cache = users
	l.lastUpdate = time.Now()

	log.Debug().
		Str("func", "Loader.fetchLocked").
		Int("users", len(users)).
		Msg("roster refreshed")

	return cloneUsers(users)
}

func (l *Loader) fetchRemote(ctx context.Context) ([]models.User, error) {
	raw, err := l.client.FetchTable(ctx)
	if err != nil {
		return nil, err
	}

	if l.format == config.FormatCSV {
		return ParseCSV(raw)
	}
	return ParseGviz(raw)
}

// FindUser implements [UserSource].
func (l *Loader) FindUser(ctx context.Context, username string) (models.User, bool) {
	for _, user := range l.GetUsers(ctx, false) {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// UpdateUserDeviceID implements [UserSource]. The sheet export is read-only,
// so the binding lives on the cached record only and is lost on the next
// refetch; the durable copy is in the local device store.
func (l *Loader) UpdateUserDeviceID(ctx context.Context, username, deviceID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.cache {
		if l.cache[i].Username == username {
			l.cache[i].DeviceID = deviceID
			return true
		}
	}
	return false
}

// UpdateLastConnection implements [UserSource]. Cache-local, like
// UpdateUserDeviceID.
func (l *Loader) UpdateLastConnection(ctx context.Context, username string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.cache {
		if l.cache[i].Username == username {
			now := time.Now().UTC()
			l.cache[i].LastSeenAt = &now
			return true
		}
	}
	return false
}

// RefreshCache implements [UserSource].
func (l *Loader) RefreshCache(ctx context.Context) []models.User {
	l.logger.Debug().Str("func", "Loader.RefreshCache").Msg("forced roster refresh")
	return l.GetUsers(ctx, true)
}

// Stats implements [UserSource].
func (l *Loader) Stats(ctx context.Context) models.UserStats {
	return statsOf(l.GetUsers(ctx, false))
}

func statsOf(users []models.User) models.UserStats {
	stats := models.UserStats{Total: len(users)}
	for _, user := range users {
		if user.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
		switch user.Role {
		case models.RoleSalesRep:
			stats.SalesReps++
		case models.RoleManager:
			stats.Managers++
		case models.RoleAdmin:
			stats.Admins++
		}
	}
	return stats
}

func cloneUsers(users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	return out
}
