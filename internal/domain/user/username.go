package user

import (
	"fmt"
	"net/url"
	"strings"
)

// SlugifyUsername derives a username from a display name by lowercasing and
// replacing spaces with hyphens. When the name yields nothing usable the
// provider user ID seeds a stable fallback.
func SlugifyUsername(name, providerUserID string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		return fmt.Sprintf("user_%s", providerUserID)
	}
	return slug
}

// DefaultAvatarURL returns a deterministic generated avatar for accounts
// whose provider supplied none.
func DefaultAvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(seed)
}
