// Package session persists the backend auth cookies across runs, the way a
// browser keeps its cookie store across page reloads. Nothing else is ever
// persisted; dashboard state is rebuilt from the API on every start.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var cookiesBucket = []byte("cookies")

// Jar is an http.CookieJar backed by a bbolt file. Cookies are keyed by
// host; session cookies (no expiry) are kept until the server replaces or
// expires them, matching browser behavior for a remembered session.
type Jar struct {
	db *bolt.DB

	mu      sync.Mutex
	cookies map[string][]*http.Cookie
}

// Open loads (or creates) the jar at path.
func Open(path string) (*Jar, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	j := &Jar{db: db, cookies: make(map[string][]*http.Cookie)}

	err = db.Update(func(tx *bolt.Tx) error {
		b, createErr := tx.CreateBucketIfNotExists(cookiesBucket)
		if createErr != nil {
			return createErr
		}
		return b.ForEach(func(k, v []byte) error {
			var stored []*http.Cookie
			if unmarshalErr := json.Unmarshal(v, &stored); unmarshalErr != nil {
				// A corrupt entry loses that host's session, nothing more.
				return nil
			}
			j.cookies[string(k)] = stored
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("loading session store: %w", err)
	}

	return j, nil
}

// Close flushes and closes the underlying store.
func (j *Jar) Close() error {
	return j.db.Close()
}

// SetCookies merges the server's cookies for u's host and persists the
// result. Expired or max-age<0 cookies are dropped.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if u == nil || len(cookies) == 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	merged := j.cookies[u.Host]
	for _, c := range cookies {
		merged = removeCookie(merged, c.Name)
		if c.MaxAge < 0 {
			continue
		}
		if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
			continue
		}
		stored := *c
		if c.MaxAge > 0 && stored.Expires.IsZero() {
			stored.Expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}
		merged = append(merged, &stored)
	}
	j.cookies[u.Host] = merged

	data, err := json.Marshal(merged)
	if err != nil {
		return
	}
	_ = j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cookiesBucket).Put([]byte(u.Host), data)
	})
}

// Cookies returns the unexpired cookies for u's host.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	if u == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	var valid []*http.Cookie
	for _, c := range j.cookies[u.Host] {
		if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// Clear drops every cookie for the given host, in memory and on disk.
func (j *Jar) Clear(host string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.cookies, host)
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cookiesBucket).Delete([]byte(host))
	})
}

func removeCookie(cookies []*http.Cookie, name string) []*http.Cookie {
	out := cookies[:0]
	for _, c := range cookies {
		if c.Name != name {
			out = append(out, c)
		}
	}
	return out
}
