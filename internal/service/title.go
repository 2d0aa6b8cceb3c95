package service

import (
	"regexp"
	"strings"
)

// fallbackTitle is used when no usable title can be derived from the
// transcribed content.
const fallbackTitle = "Rapport généré - En attente de validation"

// errorDraftTitle replaces the placeholder when transcription fails.
const errorDraftTitle = "Erreur lors de la génération"

// generatingTitle is the placeholder shown while the webhook works.
const generatingTitle = "Génération du rapport en cours..."

// Title candidates, tried in order: an explicit label wins over the first
// line, and the first line only counts when it is plausibly a title
// (10 to 80 characters).
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)titre\s*[:=]\s*([^\n\r]+)`),
	regexp.MustCompile(`(?i)title\s*[:=]\s*([^\n\r]+)`),
	regexp.MustCompile(`(?i)client\s*[:=]\s*([^\n\r]+)`),
	regexp.MustCompile(`^([^\n\r]{10,80})`),
}

// ExtractTitle derives a report title from transcribed content.
func ExtractTitle(content string) string {
	if strings.TrimSpace(content) == "" {
		return fallbackTitle
	}

	for _, pattern := range titlePatterns {
		match := pattern.FindStringSubmatch(content)
		if len(match) < 2 {
			continue
		}
		if title := trimTitleDecorations(match[1]); title != "" {
			return title
		}
	}

	return fallbackTitle
}

// trimTitleDecorations strips the markdown-ish framing the transcription
// model tends to emit around headings.
func trimTitleDecorations(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), "#-*= \t")
}
