package insights

import (
	"strings"

	"github.com/stridehq/stride/internal/domain"
)

// themeOrder fixes the scan order so extraction is deterministic.
// Extend the vocabulary by adding buckets; the matching rule (substring
// match, two-message threshold) stays the same.
var themeOrder = []string{"motivation", "time", "progress", "difficulty", "consistency"}

var themeKeywords = map[string][]string{
	"motivation":  {"motivated", "motivation", "tired", "energy", "struggling"},
	"time":        {"time", "busy", "schedule", "morning", "evening"},
	"progress":    {"progress", "stuck", "plateau", "improving", "better"},
	"difficulty":  {"hard", "difficult", "challenging", "easy", "tough"},
	"consistency": {"consistent", "streak", "miss", "skip", "forget"},
}

// themeThreshold is the noise filter: a theme counts only when at least this
// many sampled user messages mention it.
const themeThreshold = 2

// ExtractThemes reduces a window of chat messages to recurring theme tags.
// Only user messages are considered; a message mentions a theme if it
// contains any of that theme's keyword substrings.
func ExtractThemes(messages []*domain.ChatMessage) []string {
	var userMessages []string
	for _, m := range messages {
		if m.Role == domain.RoleUser {
			userMessages = append(userMessages, strings.ToLower(m.Content))
		}
	}

	var themes []string
	for _, theme := range themeOrder {
		mentions := 0
		for _, msg := range userMessages {
			if mentionsAny(msg, themeKeywords[theme]) {
				mentions++
			}
		}
		if mentions >= themeThreshold {
			themes = append(themes, theme)
		}
	}
	return themes
}

func mentionsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
