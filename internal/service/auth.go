package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/directory"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
	"github.com/andreaprogra/rapport-vocal/internal/store"
	"github.com/andreaprogra/rapport-vocal/models"
)

type authService struct {
	users   directory.UserSource
	devices store.DeviceRepository

	policy        config.DevicePolicy
	maxDevices    int
	tokenSignKey  string
	tokenDuration time.Duration

	logger *logger.Logger
}

type sessionClaims struct {
	jwt.RegisteredClaims
	DisplayName string      `json:"name"`
	Role        models.Role `json:"role"`
}

func NewAuthService(users directory.UserSource, devices store.DeviceRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		devices:       devices,
		policy:        cfg.DevicePolicy,
		maxDevices:    cfg.MaxDevices,
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login implements [AuthService]. The checks run in a fixed order so the
// user always gets the most specific failure: unknown user before wrong
// password, wrong password before inactive account, inactive account before
// device policy.
func (a *authService) Login(ctx context.Context, username, password string, signals models.DeviceSignals) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	user, found := a.users.FindUser(ctx, username)
	if !found {
		log.Debug().Str("func", "authService.Login").Str("username", username).Msg("user not in roster")
		return models.AuthResult{}, ErrUserNotFound
	}

	// The roster is a plain shared sheet: passwords are stored and compared
	// verbatim. This gate limits casual account sharing, nothing more.
	if user.Password != password {
		return models.AuthResult{}, ErrWrongPassword
	}

	if !user.Active {
		return models.AuthResult{}, ErrAccountInactive
	}

	fingerprint := signals.Fingerprint()
	if err := a.checkDevice(ctx, user, fingerprint); err != nil {
		return models.AuthResult{}, err
	}

	token, err := a.issueToken(user)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("issue session token: %w", err)
	}

	user.DeviceID = fingerprint

	// Cache-side stamps only; failures here never fail the login.
	a.users.UpdateUserDeviceID(ctx, username, fingerprint)
	a.users.UpdateLastConnection(ctx, username)

	log.Debug().
		Str("func", "authService.Login").
		Str("username", username).
		Str("role", string(user.Role)).
		Msg("login successful")

	return models.AuthResult{
		User:    user,
		Token:   token,
		LoginAt: time.Now().UTC(),
	}, nil
}

// checkDevice enforces the configured binding policy using the durable local
// device list. Single policy: the first login binds the machine, any other
// machine is rejected; a device id already set in the directory record counts
// as a binding too, so an administrator can pin an account from the sheet.
// Multi policy: up to maxDevices machines.
func (a *authService) checkDevice(ctx context.Context, user models.User, fingerprint string) error {
	if a.policy == config.PolicySingleDevice && user.DeviceID != "" && user.DeviceID != fingerprint {
		return ErrDeviceMismatch
	}

	known, err := a.devices.KnownDevices(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("load known devices: %w", err)
	}

	for _, fp := range known {
		if fp == fingerprint {
			return nil
		}
	}

	limit := 1
	if a.policy == config.PolicyMultiDevice {
		limit = a.maxDevices
	}

	if len(known) >= limit {
		if a.policy == config.PolicyMultiDevice {
			return ErrDeviceLimitReached
		}
		return ErrDeviceMismatch
	}

	if err = a.devices.BindDevice(ctx, user.Username, fingerprint); err != nil {
		return fmt.Errorf("bind device: %w", err)
	}
	return nil
}

func (a *authService) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenDuration)),
		},
		DisplayName: user.DisplayName,
		Role:        user.Role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.tokenSignKey))
}

// VerifySession implements [AuthService].
func (a *authService) VerifySession(token string) (string, error) {
	claims := &sessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.tokenSignKey), nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenIsExpired
	case err != nil, !parsed.Valid:
		return "", ErrInvalidSessionToken
	}

	return claims.Subject, nil
}

// DirectoryStats implements [AuthService].
func (a *authService) DirectoryStats(ctx context.Context) models.UserStats {
	return a.users.Stats(ctx)
}

// RefreshDirectory implements [AuthService].
func (a *authService) RefreshDirectory(ctx context.Context) int {
	return len(a.users.RefreshCache(ctx))
}
