package directory

import (
	"time"

	"github.com/andreaprogra/rapport-vocal/models"
)

// DefaultUsers is the last-resort roster used when the remote sheet cannot be
// reached and no cached roster exists. It keeps the app usable offline on a
// fresh install; the accounts are flagged "(défaut)" so a logged-in user can
// tell they are on the fallback roster.
func DefaultUsers() []models.User {
	now := time.Now().UTC().Format(time.RFC3339)

	return []models.User{
		{
			ID:          1,
			Username:    "commercial1",
			Password:    "pass123",
			DisplayName: "Jean Dupont (défaut)",
			Role:        models.RoleSalesRep,
			Status:      "inactif",
			Active:      false,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Username:    "andreac",
			Password:    "pass123",
			DisplayName: "Andrea Ciechels (défaut)",
			Role:        models.RoleSalesRep,
			Status:      "actif",
			Active:      true,
			CreatedAt:   now,
		},
	}
}
