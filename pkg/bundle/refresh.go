package bundle

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localize/pkg/logger"
)

// Refresher periodically re-fetches every cached bundle so long-running
// processes pick up translation updates without a restart. Cache entries
// are replaced wholesale on success; a failed fetch keeps the previous
// bundle in place.
type Refresher struct {
	store *Store
	cron  *cron.Cron
	log   *slog.Logger
	spec  string
}

// NewRefresher creates a Refresher that runs on the given cron schedule,
// e.g. "@every 15m" or "0 3 * * *". A nil logger disables logging.
func NewRefresher(store *Store, spec string, log *slog.Logger) *Refresher {
	if store == nil {
		panic("bundle: store is not provided")
	}
	if log == nil {
		log = logger.NewNope()
	}
	return &Refresher{
		store: store,
		cron:  cron.New(),
		log:   log,
		spec:  spec,
	}
}

// Start schedules the refresh job and starts the cron runner.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, func() {
		r.Refresh(context.Background())
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the cron runner and waits for an in-flight refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

// Refresh re-fetches every cached language concurrently. Exposed so hosts
// can trigger an out-of-schedule refresh (e.g. after publishing bundles).
func (r *Refresher) Refresh(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	for _, code := range r.store.Languages() {
		g.Go(func() error {
			b, err := r.store.loader.Load(ctx, code)
			if err != nil {
				// Keep serving the stale bundle rather than degrading.
				r.log.WarnContext(ctx, "bundle refresh failed",
					slog.String("lang", code),
					slog.String("error", err.Error()),
				)
				return nil
			}
			r.store.replace(code, b)
			return nil
		})
	}

	_ = g.Wait()
}
