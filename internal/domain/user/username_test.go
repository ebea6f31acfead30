package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyUsername(t *testing.T) {
	tests := []struct {
		name           string
		displayName    string
		providerUserID string
		expected       string
	}{
		{
			name:           "lowercases and hyphenates spaces",
			displayName:    "Ada Lovelace",
			providerUserID: "12345",
			expected:       "ada-lovelace",
		},
		{
			name:           "collapses repeated whitespace",
			displayName:    "  Grace   Hopper ",
			providerUserID: "12345",
			expected:       "grace-hopper",
		},
		{
			name:           "single word stays intact",
			displayName:    "torvalds",
			providerUserID: "12345",
			expected:       "torvalds",
		},
		{
			name:           "empty name falls back to provider id",
			displayName:    "",
			providerUserID: "9876",
			expected:       "user_9876",
		},
		{
			name:           "whitespace-only name falls back to provider id",
			displayName:    "   ",
			providerUserID: "9876",
			expected:       "user_9876",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugifyUsername(tt.displayName, tt.providerUserID))
		})
	}
}

func TestDefaultAvatarURL(t *testing.T) {
	url := DefaultAvatarURL("ada-lovelace")
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=ada-lovelace", url)

	escaped := DefaultAvatarURL("user name")
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=user+name", escaped)
}

func TestUserHasPassword(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasPassword())

	empty := ""
	u.PasswordHash = &empty
	assert.False(t, u.HasPassword())

	u.SetPassword("$2a$10$abcdefghijklmnopqrstuv")
	assert.True(t, u.HasPassword())
}

func TestBumpTokenVersion(t *testing.T) {
	u := &User{TokenVersion: 3}
	u.BumpTokenVersion()
	assert.Equal(t, 4, u.TokenVersion)
}
