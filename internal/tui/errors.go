package tui

import (
	"errors"
	"strings"

	"github.com/andreaprogra/rapport-vocal/internal/service"
)

// humanizeError maps service errors to the messages shown to the user.
// Network-shaped errors collapse into a single connectivity message because
// the user cannot act on the difference.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Veuillez saisir votre identifiant et votre mot de passe"
	case errors.Is(err, service.ErrUserNotFound):
		return "Utilisateur introuvable"
	case errors.Is(err, service.ErrWrongPassword):
		return "Mot de passe incorrect"
	case errors.Is(err, service.ErrAccountInactive):
		return "Compte suspendu - Contactez l'administrateur pour réactiver votre abonnement"
	case errors.Is(err, service.ErrDeviceMismatch):
		return "Ce compte est déjà associé à un autre appareil"
	case errors.Is(err, service.ErrDeviceLimitReached):
		return "Nombre maximum d'appareils atteint pour ce compte"
	case errors.Is(err, service.ErrNoPendingAudio):
		return "Aucun enregistrement ou fichier audio en attente"
	case errors.Is(err, service.ErrDraftNotReady):
		return "Ce brouillon n'est pas encore prêt"
	case errors.Is(err, service.ErrNoPDF):
		return "Aucun PDF disponible pour ce rapport"
	case errors.Is(err, service.ErrFolderExists):
		return "Un dossier porte déjà ce nom"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Erreur de connexion - Vérifiez votre connexion internet"
	}

	return err.Error()
}
