package linkaudit_test

import (
	"testing"

	"github.com/fwojciec/linkaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigin(t *testing.T) {
	t.Parallel()

	t.Run("extracts scheme and host", func(t *testing.T) {
		t.Parallel()

		origin, err := linkaudit.ParseOrigin("https://Example.com:8443/blog/post?x=1")

		require.NoError(t, err)
		assert.Equal(t, linkaudit.Origin{Scheme: "https", Host: "example.com", Authority: "example.com:8443"}, origin)
		assert.Equal(t, "https://example.com:8443", origin.String())
	})

	t.Run("string without authority uses host", func(t *testing.T) {
		t.Parallel()

		origin := linkaudit.Origin{Scheme: "https", Host: "example.com"}

		assert.Equal(t, "https://example.com", origin.String())
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := linkaudit.ParseOrigin("/just/a/path")

		require.Error(t, err)
		assert.Equal(t, linkaudit.EINVALID, linkaudit.ErrorCode(err))
	})

	t.Run("rejects unparseable URL", func(t *testing.T) {
		t.Parallel()

		_, err := linkaudit.ParseOrigin("http://[::1")

		require.Error(t, err)
		assert.Equal(t, linkaudit.EINVALID, linkaudit.ErrorCode(err))
	})
}

func TestOrigin_Owns(t *testing.T) {
	t.Parallel()

	origin := linkaudit.Origin{Scheme: "https", Host: "example.com"}

	assert.True(t, origin.Owns(""))
	assert.True(t, origin.Owns("example.com"))
	assert.True(t, origin.Owns("WWW.Example.com"))
	assert.False(t, origin.Owns("blog.example.com"))
	assert.False(t, origin.Owns("other.com"))
	assert.False(t, origin.Owns("www.www.example.com"))

	t.Run("ignores the page port", func(t *testing.T) {
		t.Parallel()

		ported, err := linkaudit.ParseOrigin("http://localhost:8080/page")
		require.NoError(t, err)

		assert.True(t, ported.Owns("localhost"))
		assert.True(t, ported.Owns("LOCALHOST"))
	})
}
