package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle_ExplicitLabels(t *testing.T) {
	assert.Equal(t, "Visite client Durand",
		ExtractTitle("Titre: Visite client Durand\nLe rendez-vous s'est bien passé."))
	assert.Equal(t, "Visite client Durand",
		ExtractTitle("titre = Visite client Durand\nreste du texte"))
	assert.Equal(t, "Weekly report",
		ExtractTitle("Title: Weekly report\nbody"))
	assert.Equal(t, "Boulangerie Martin",
		ExtractTitle("Client: Boulangerie Martin\ncommande renouvelée"))
}

func TestExtractTitle_FirstLineWhenPlausible(t *testing.T) {
	assert.Equal(t, "Compte rendu de la tournée du lundi",
		ExtractTitle("Compte rendu de la tournée du lundi\nDétails plus bas."))
}

func TestExtractTitle_ShortFirstLineFallsBack(t *testing.T) {
	// Under 10 characters the first line is not a plausible title.
	assert.Equal(t, fallbackTitle, ExtractTitle("Bonjour\nSuite du texte."))
}

func TestExtractTitle_StripsDecorations(t *testing.T) {
	assert.Equal(t, "Visite client Durand",
		ExtractTitle("Titre: ## Visite client Durand ##\nbody"))
	assert.Equal(t, "Rapport de la semaine",
		ExtractTitle("# Rapport de la semaine =\nbody"))
}

func TestExtractTitle_EmptyContent(t *testing.T) {
	assert.Equal(t, fallbackTitle, ExtractTitle(""))
	assert.Equal(t, fallbackTitle, ExtractTitle("   \n  "))
}

func TestExtractTitle_LabelBeatsFirstLine(t *testing.T) {
	content := "Une première ligne assez longue pour servir de titre\nTitre: Le vrai titre\nbody"
	assert.Equal(t, "Le vrai titre", ExtractTitle(content))
}
