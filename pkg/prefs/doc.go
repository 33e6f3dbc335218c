// Package prefs provides the key-value persistence service behind the
// localization controller's language preference.
//
// The controller reads and writes a single fixed key through the [Store]
// interface; everything else about where the value lives is a backend
// concern. Three backends ship with the package:
//
//   - [Memory]: in-process map, the default and the test double
//   - [Cookie]: plain HTTP cookie bound to one request/response pair
//   - [Redis]: shared store for multi-process deployments
//
// # Cookie Usage
//
// The cookie backend is request-scoped: construct it inside the handler:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		store := prefs.NewCookie(w, r)
//		_ = store.Set(r.Context(), "lang", "de")
//	}
//
// # Failure Semantics
//
// Persistence failures are never fatal to localization: the controller logs
// a warning and carries on. Backends return [ErrNotFound] for absent keys
// so callers can distinguish "no preference yet" from a real failure.
package prefs
