package linkaudit_test

import (
	"testing"

	"github.com/fwojciec/linkaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigin = linkaudit.Origin{Scheme: "https", Host: "example.com"}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("prefixes root-relative href with scheme and host", func(t *testing.T) {
		t.Parallel()

		u, ok := linkaudit.Resolve("/about?team=1", testOrigin)

		require.True(t, ok)
		assert.Equal(t, "https://example.com/about?team=1", u.Href)
		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "example.com", u.Host)
		assert.Equal(t, "/about", u.Path)
		assert.Equal(t, "team=1", u.Query)
	})

	t.Run("keeps origin port on root-relative href", func(t *testing.T) {
		t.Parallel()

		origin, err := linkaudit.ParseOrigin("http://localhost:8080/page")
		require.NoError(t, err)

		u, ok := linkaudit.Resolve("/about", origin)

		require.True(t, ok)
		assert.Equal(t, "http://localhost:8080/about", u.Href)
		assert.Equal(t, "localhost", u.Host)
	})

	t.Run("ported origin still classifies its links as internal", func(t *testing.T) {
		t.Parallel()

		origin, err := linkaudit.ParseOrigin("http://localhost:8080/page")
		require.NoError(t, err)

		link, ok := linkaudit.Classify(linkaudit.RawAnchor{Href: "/about", Text: "About"}, origin)

		require.True(t, ok)
		assert.Equal(t, "http://localhost:8080/about", link.Href)
		assert.True(t, link.Internal)
	})

	t.Run("prefixes protocol-relative href with scheme", func(t *testing.T) {
		t.Parallel()

		u, ok := linkaudit.Resolve("//cdn.other.com/lib.js", testOrigin)

		require.True(t, ok)
		assert.Equal(t, "https://cdn.other.com/lib.js", u.Href)
		assert.Equal(t, "cdn.other.com", u.Host)
	})

	t.Run("keeps absolute href and lower-cases host", func(t *testing.T) {
		t.Parallel()

		u, ok := linkaudit.Resolve("HTTP://Other.COM:8080/x", testOrigin)

		require.True(t, ok)
		assert.Equal(t, "HTTP://Other.COM:8080/x", u.Href)
		assert.Equal(t, "http", u.Scheme)
		assert.Equal(t, "other.com", u.Host)
	})

	t.Run("leaves document-relative href without scheme or host", func(t *testing.T) {
		t.Parallel()

		u, ok := linkaudit.Resolve("page.html?utm_source=x", testOrigin)

		require.True(t, ok)
		assert.Equal(t, "page.html?utm_source=x", u.Href)
		assert.Empty(t, u.Scheme)
		assert.Empty(t, u.Host)
		assert.Equal(t, "utm_source=x", u.Query)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		u, ok := linkaudit.Resolve("  /contact \n", testOrigin)

		require.True(t, ok)
		assert.Equal(t, "https://example.com/contact", u.Href)
	})

	t.Run("rejects empty and fragment-only hrefs", func(t *testing.T) {
		t.Parallel()

		_, ok := linkaudit.Resolve("", testOrigin)
		assert.False(t, ok)

		_, ok = linkaudit.Resolve("#", testOrigin)
		assert.False(t, ok)
	})

	t.Run("rejects tel links in any case", func(t *testing.T) {
		t.Parallel()

		_, ok := linkaudit.Resolve("tel:+15551234", testOrigin)
		assert.False(t, ok)

		_, ok = linkaudit.Resolve("TEL:+15551234", testOrigin)
		assert.False(t, ok)
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		for _, href := range []string{"http://[::1", "http://exa mple.com/", "%zz"} {
			_, ok := linkaudit.Resolve(href, testOrigin)
			assert.False(t, ok, "expected %q to be rejected", href)
		}
	})

	t.Run("accepts non-http schemes", func(t *testing.T) {
		t.Parallel()

		u, ok := linkaudit.Resolve("mailto:hi@example.com", testOrigin)

		require.True(t, ok)
		assert.Equal(t, "mailto", u.Scheme)
		assert.Empty(t, u.Host)
	})
}
