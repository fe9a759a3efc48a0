package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore("ams3.digitaloceanspaces.com", "access", "secret", "demos", "https://demos.example.com/")
	require.NoError(t, err)
	assert.NotNil(t, s.client)
}

func TestPublicURL(t *testing.T) {
	t.Run("trailing slash on base url is normalized", func(t *testing.T) {
		s, err := NewStore("ams3.digitaloceanspaces.com", "access", "secret", "demos", "https://demos.example.com/")
		require.NoError(t, err)
		assert.Equal(t, "https://demos.example.com/abc.dem", s.PublicURL("abc.dem"))
	})

	t.Run("base url without trailing slash", func(t *testing.T) {
		s, err := NewStore("ams3.digitaloceanspaces.com", "access", "secret", "demos", "https://demos.example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://demos.example.com/abc.dem", s.PublicURL("abc.dem"))
	})
}
