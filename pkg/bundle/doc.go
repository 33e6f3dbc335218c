// Package bundle provides translation bundles: loading, caching, and
// dotted-key lookups.
//
// A [Bundle] is a tree of string and string-sequence leaves addressed by
// dotted keys ("nav.home", "features.list"). The [Store] loads bundles
// lazily through a [Loader] and caches them per language code for the life
// of the process.
//
// # Degradation, Not Errors
//
// Store.Load never fails. When a bundle cannot be fetched or parsed the
// store logs a warning and serves the fallback language's bundle instead;
// when the fallback itself cannot be loaded it serves an empty bundle, so
// every lookup echoes its key. The UI stays usable either way; worst case
// is visible raw keys instead of text.
//
// # Loaders
//
// Four loaders ship with the package, all following the same naming
// convention (resource named after the language code):
//
//   - [NewFSLoader]: {code}.json / {code}.yaml from an fs.FS (embed-friendly)
//   - [NewHTTPLoader]: GET {baseURL}/{code}.json
//   - [NewS3Loader]: {prefix}{code}.json from S3-compatible object storage
//   - [NewPostgresLoader]: jsonb documents, one row per code ([Migrate]
//     creates the table)
//
// Custom sources implement [Loader] or wrap a [LoaderFunc].
//
// # Refreshing
//
// Cache entries never expire. For deployments that publish new translations
// without restarting, [Refresher] re-fetches cached bundles on a cron
// schedule, replacing entries wholesale and keeping stale ones when a
// fetch fails:
//
//	ref := bundle.NewRefresher(store, "@every 15m", log)
//	if err := ref.Start(); err != nil {
//		// invalid schedule
//	}
//	defer ref.Stop()
package bundle
