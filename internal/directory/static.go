package directory

import (
	"context"
	"sync"
	"time"

	"github.com/andreaprogra/rapport-vocal/models"
)

// StaticRoster is the offline [UserSource] used in static directory mode.
// It serves a fixed user list and supports the same cache-local updates as
// the remote loader, so the rest of the app cannot tell the modes apart.
type StaticRoster struct {
	mu    sync.Mutex
	users []models.User
}

// NewStaticRoster copies users; an empty list falls back to [DefaultUsers].
func NewStaticRoster(users []models.User) *StaticRoster {
	if len(users) == 0 {
		users = DefaultUsers()
	}
	return &StaticRoster{users: cloneUsers(users)}
}

func (s *StaticRoster) GetUsers(_ context.Context, _ bool) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUsers(s.users)
}

func (s *StaticRoster) FindUser(_ context.Context, username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *StaticRoster) UpdateUserDeviceID(_ context.Context, username, deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			s.users[i].DeviceID = deviceID
			return true
		}
	}
	return false
}

func (s *StaticRoster) UpdateLastConnection(_ context.Context, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			now := time.Now().UTC()
			s.users[i].LastSeenAt = &now
			return true
		}
	}
	return false
}

func (s *StaticRoster) RefreshCache(ctx context.Context) []models.User {
	return s.GetUsers(ctx, true)
}

func (s *StaticRoster) Stats(ctx context.Context) models.UserStats {
	return statsOf(s.GetUsers(ctx, false))
}
