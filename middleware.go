package localize

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/localize/pkg/logger"
)

type languageCtxKey struct{}

// LanguageFromContext returns the language code the middleware resolved
// for the request, or an empty string when the middleware did not run.
func LanguageFromContext(ctx context.Context) string {
	code, _ := ctx.Value(languageCtxKey{}).(string)
	return code
}

// LanguageExtractor returns a logger extractor that attaches the
// middleware-resolved language to every log record as a "lang" attribute:
//
//	log := logger.New(localize.LanguageExtractor())
func LanguageExtractor() logger.ContextExtractor {
	return logger.FromContext(languageCtxKey{}, "lang")
}

// Middleware returns an HTTP middleware that resolves the request
// language and rewrites HTML responses through Localize. Resolution
// order: the preference cookie, then the Accept-Language header, then
// the fallback language. The resolved code is stored in the request
// context for handlers.
//
// Non-HTML responses pass through unmodified. The response is buffered,
// so handlers streaming large bodies should bypass this middleware.
func (c *Controller) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := c.resolveRequest(r)
			r = r.WithContext(context.WithValue(r.Context(), languageCtxKey{}, code))

			buf := &bufferedResponse{header: make(http.Header), status: http.StatusOK}
			next.ServeHTTP(buf, r)

			if !strings.Contains(buf.header.Get("Content-Type"), "text/html") {
				buf.flush(w)
				return
			}

			var out bytes.Buffer
			if err := c.Localize(r.Context(), &out, &buf.body, code); err != nil {
				c.log.ErrorContext(r.Context(), "failed to localize response",
					"error", err, "language", code, "path", r.URL.Path)
				buf.flush(w)
				return
			}

			copyHeader(w.Header(), buf.header)
			w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
			w.WriteHeader(buf.status)
			_, _ = w.Write(out.Bytes())
		})
	}
}

// resolveRequest picks the language for a single request without touching
// the controller's active state.
func (c *Controller) resolveRequest(r *http.Request) string {
	if cookie, err := r.Cookie(c.prefKey); err == nil && c.registry.IsSupported(cookie.Value) {
		return cookie.Value
	}
	if code, ok := c.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return code
	}
	return c.fallback
}

// bufferedResponse captures a downstream handler's response so the body
// can be rewritten before reaching the client.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) { b.status = status }

func (b *bufferedResponse) Write(p []byte) (int, error) { return b.body.Write(p) }

// flush replays the captured response unmodified.
func (b *bufferedResponse) flush(w http.ResponseWriter) {
	copyHeader(w.Header(), b.header)
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}

func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}
