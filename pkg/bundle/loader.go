package bundle

import "context"

// Loader fetches the bundle for a language code from an external source.
// Implementations map the code to a resource by naming convention
// (a file, an object key, a table row) and return the parsed Bundle.
type Loader interface {
	Load(ctx context.Context, code string) (Bundle, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, code string) (Bundle, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, code string) (Bundle, error) {
	return f(ctx, code)
}
