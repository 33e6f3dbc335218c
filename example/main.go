// Command example serves a small localized page. It demonstrates the
// middleware flow: translations load from the embedded locales directory,
// the response language follows the preference cookie or Accept-Language
// header, and /?lang=xx persists an explicit choice.
package main

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/bundle"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/prefs"
)

//go:embed locales/*.json
var localesFS embed.FS

//go:embed index.html
var indexHTML []byte

func main() {
	// Every record logged with a request context carries the resolved
	// language.
	log := logger.New(localize.LanguageExtractor())

	locales, err := fs.Sub(localesFS, "locales")
	if err != nil {
		log.Error("failed to open locales", "error", err)
		os.Exit(1)
	}

	// The page carries its own ?lang= links; middleware-served responses
	// bypass the built-in picker, which only renders through Init and
	// SetLanguage.
	ctrl, err := localize.New(
		localize.WithLoader(bundle.NewFSLoader(locales)),
		localize.WithLogger(log),
		localize.WithMarkdown(),
	)
	if err != nil {
		log.Error("failed to create localization controller", "error", err)
		os.Exit(1)
	}

	// Optionally refresh cached bundles on a cron schedule, e.g.
	// REFRESH_CRON="@every 15m" when bundles live in remote storage.
	if spec := os.Getenv("REFRESH_CRON"); spec != "" {
		refresher := bundle.NewRefresher(ctrl.Store(), spec, log)
		if err := refresher.Start(); err != nil {
			log.Error("failed to start bundle refresher", "error", err)
			os.Exit(1)
		}
		defer refresher.Stop()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(ctrl.Middleware())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if code := req.URL.Query().Get("lang"); code != "" {
			cookies := prefs.NewCookie(w, req)
			if err := cookies.Set(req.Context(), "lang", code); err != nil {
				log.Warn("failed to persist language choice", "error", err, "lang", code)
			}
			http.Redirect(w, req, "/", http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})

	addr := getEnv("ADDR", ":8080")
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	_ = srv.Close()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
