package session

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempJar(t *testing.T) (*Jar, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	jar, err := Open(path)
	require.NoError(t, err)
	return jar, path
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestJar_RoundTripAcrossReopen(t *testing.T) {
	jar, path := tempJar(t)
	u := mustURL(t, "http://localhost:5000")

	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc"}})
	require.NoError(t, jar.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	cookies := reopened.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
}

func TestJar_ReplacesCookieByName(t *testing.T) {
	jar, _ := tempJar(t)
	defer jar.Close()
	u := mustURL(t, "http://localhost:5000")

	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "old"}})
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "new"}})

	cookies := jar.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, "new", cookies[0].Value)
}

func TestJar_NegativeMaxAgeDeletes(t *testing.T) {
	jar, _ := tempJar(t)
	defer jar.Close()
	u := mustURL(t, "http://localhost:5000")

	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc"}})
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "", MaxAge: -1}})

	assert.Empty(t, jar.Cookies(u))
}

func TestJar_ExpiredCookiesNotReturned(t *testing.T) {
	jar, _ := tempJar(t)
	defer jar.Close()
	u := mustURL(t, "http://localhost:5000")

	jar.SetCookies(u, []*http.Cookie{
		{Name: "stale", Value: "x", Expires: time.Now().Add(-time.Hour)},
		{Name: "fresh", Value: "y", Expires: time.Now().Add(time.Hour)},
	})

	cookies := jar.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, "fresh", cookies[0].Name)
}

func TestJar_HostsAreIsolated(t *testing.T) {
	jar, _ := tempJar(t)
	defer jar.Close()

	a := mustURL(t, "http://localhost:5000")
	b := mustURL(t, "http://api.example.org")
	jar.SetCookies(a, []*http.Cookie{{Name: "session", Value: "abc"}})

	assert.Empty(t, jar.Cookies(b))
	require.NoError(t, jar.Clear(a.Host))
	assert.Empty(t, jar.Cookies(a))
}
