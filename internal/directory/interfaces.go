// Package directory maintains the user roster of the application.
//
// The roster lives in a shared spreadsheet published read-only; this package
// fetches it through [adapter.DirectoryClient], decodes the gviz or CSV
// export, and caches the result. Loading is deliberately infallible: when the
// remote fetch fails the last cached roster is served, and when no cache
// exists yet the built-in default roster is. Callers therefore always get a
// usable user list, possibly a stale or minimal one.
package directory

import (
	"context"

	"github.com/andreaprogra/rapport-vocal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_source_mock.go -package=mock

// UserSource is the roster view consumed by the authenticator and the
// diagnostics screen. Both the remote loader and the static roster satisfy it.
type UserSource interface {
	// GetUsers returns the current roster. With forceRefresh the cache TTL
	// is ignored and a refetch is attempted first. Never fails: on error the
	// cached or default roster is returned instead.
	GetUsers(ctx context.Context, forceRefresh bool) []models.User

	// FindUser looks up a user by exact username in the current roster.
	FindUser(ctx context.Context, username string) (models.User, bool)

	// UpdateUserDeviceID records a device binding on the cached user record.
	// The write is cache-local only; the spreadsheet is never modified.
	// Reports whether the user was found.
	UpdateUserDeviceID(ctx context.Context, username, deviceID string) bool

	// UpdateLastConnection stamps the cached user's last login time.
	// Cache-local only, like UpdateUserDeviceID.
	UpdateLastConnection(ctx context.Context, username string) bool

	// RefreshCache forces a refetch and returns the resulting roster.
	RefreshCache(ctx context.Context) []models.User

	// Stats summarizes the current roster for diagnostics.
	Stats(ctx context.Context) models.UserStats
}
