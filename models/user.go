package models

import "time"

// Role is the functional role of a directory user.
type Role string

const (
	RoleSalesRep Role = "commercial"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// User is a single account row from the external directory (or the static
// in-bundle roster). The password is stored and compared verbatim: the
// directory is a shared spreadsheet, not a credential vault, and the login
// gate exists to limit casual account sharing only.
type User struct {
	// ID is the 1-based position of the row among valid roster rows.
	ID int64 `json:"id"`

	Username string `json:"username"`
	Password string `json:"password"`

	// DisplayName is the human-readable name shown after login.
	DisplayName string `json:"name"`

	Role Role `json:"role"`

	// Status is the raw status cell as exported by the directory.
	// Active is derived from it during parsing and is the only field
	// consulted by the authenticator.
	Status string `json:"status"`
	Active bool   `json:"is_active"`

	// DeviceID is the fingerprint bound to the account under the
	// single-device policy. Empty until the first successful login.
	DeviceID string `json:"device_id,omitempty"`

	CreatedAt  string     `json:"created_at,omitempty"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// UserStats is a diagnostic summary of the currently cached roster.
// It is derived data only and never drives control flow.
type UserStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	SalesReps int `json:"sales_reps"`
	Managers  int `json:"managers"`
	Admins    int `json:"admins"`
}
