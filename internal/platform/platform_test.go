package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("known platforms", func(t *testing.T) {
		for name, want := range map[string]Platform{
			"youtube":   YouTube,
			"instagram": Instagram,
			"twitter":   Twitter,
			"x":         Twitter,
			"YouTube":   YouTube,
			" X ":       Twitter,
		} {
			got, err := Normalize(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("unsupported platform", func(t *testing.T) {
		for _, name := range []string{"tiktok", "vimeo", ""} {
			_, err := Normalize(name)
			require.Error(t, err, name)
			assert.ErrorIs(t, err, ErrUnsupported)
			assert.Contains(t, err.Error(), name)
		}
	})
}

func TestMatchesURL(t *testing.T) {
	assert.True(t, YouTube.MatchesURL("https://youtube.com/watch?v=abc"))
	assert.True(t, YouTube.MatchesURL("https://youtu.be/abc"))
	assert.True(t, Twitter.MatchesURL("https://x.com/user/status/1"))
	assert.True(t, Twitter.MatchesURL("https://TWITTER.com/user/status/1"))
	assert.True(t, Instagram.MatchesURL("https://instagram.com/p/abc"))

	assert.False(t, YouTube.MatchesURL("https://vimeo.com/123"))
	assert.False(t, Instagram.MatchesURL("https://youtube.com/watch?v=abc"))
}
