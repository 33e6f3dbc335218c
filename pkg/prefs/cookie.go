package prefs

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Cookie is a request-scoped Store backed by plain HTTP cookies.
// A new instance is bound to each request/response pair; reads come from
// the request, writes become Set-Cookie headers on the response.
type Cookie struct {
	w        http.ResponseWriter
	r        *http.Request
	path     string
	domain   string
	maxAge   int
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// CookieOption configures the cookie backend.
type CookieOption func(*Cookie)

// WithCookiePath sets the cookie path. Default: "/".
func WithCookiePath(path string) CookieOption {
	return func(c *Cookie) {
		c.path = path
	}
}

// WithCookieDomain sets the cookie domain.
func WithCookieDomain(domain string) CookieOption {
	return func(c *Cookie) {
		c.domain = domain
	}
}

// WithCookieMaxAge sets the cookie lifetime. Default: one year, so the
// language choice survives browser restarts.
func WithCookieMaxAge(d time.Duration) CookieOption {
	return func(c *Cookie) {
		c.maxAge = int(d / time.Second)
	}
}

// WithCookieSecure sets the Secure flag.
func WithCookieSecure(secure bool) CookieOption {
	return func(c *Cookie) {
		c.secure = secure
	}
}

// WithCookieHTTPOnly sets the HttpOnly flag. Off by default so client
// scripts can read the current language choice.
func WithCookieHTTPOnly(httpOnly bool) CookieOption {
	return func(c *Cookie) {
		c.httpOnly = httpOnly
	}
}

// WithCookieSameSite sets the SameSite attribute. Default: Lax.
func WithCookieSameSite(ss http.SameSite) CookieOption {
	return func(c *Cookie) {
		c.sameSite = ss
	}
}

// NewCookie creates a cookie store bound to the given request and response.
// The language preference is not sensitive, so cookies are plain; HttpOnly
// is off by default to let client scripts read the current choice.
func NewCookie(w http.ResponseWriter, r *http.Request, opts ...CookieOption) *Cookie {
	c := &Cookie{
		w:        w,
		r:        r,
		path:     "/",
		maxAge:   int((365 * 24 * time.Hour) / time.Second),
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get reads the cookie named key from the bound request.
func (c *Cookie) Get(_ context.Context, key string) (string, error) {
	ck, err := c.r.Cookie(key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	if ck.Value == "" {
		return "", ErrNotFound
	}
	return ck.Value, nil
}

// Set writes a cookie named key on the bound response.
func (c *Cookie) Set(_ context.Context, key, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     c.path,
		Domain:   c.domain,
		MaxAge:   c.maxAge,
		Secure:   c.secure,
		HttpOnly: c.httpOnly,
		SameSite: c.sameSite,
	})
	return nil
}
