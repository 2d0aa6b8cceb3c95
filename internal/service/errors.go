package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("username and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrAccountInactive    = errors.New("account is inactive")

	ErrDeviceMismatch      = errors.New("account is bound to another device")
	ErrDeviceLimitReached  = errors.New("device limit reached for account")
	ErrTokenIsExpired      = errors.New("session token is expired")
	ErrInvalidSessionToken = errors.New("invalid session token")

	ErrDraftNotFound  = errors.New("draft not found")
	ErrReportNotFound = errors.New("report not found")
	ErrFolderNotFound = errors.New("folder not found")

	ErrDraftNotReady  = errors.New("draft is not ready")
	ErrNoPendingAudio = errors.New("no audio captured or selected")
	ErrNoPDF          = errors.New("report has no pdf document")

	ErrValidationEmptyTitle      = errors.New("title must not be empty")
	ErrValidationEmptyContent    = errors.New("content must not be empty")
	ErrValidationEmptyFolderName = errors.New("folder name must not be empty")
	ErrFolderExists              = errors.New("folder with this name already exists")
)
