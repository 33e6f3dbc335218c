package bundle

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrymomot/localize/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresLoader reads bundle documents from a jsonb column, one row per
// language code. Use Migrate to create the backing table.
type PostgresLoader struct {
	pool  *pgxpool.Pool
	table string
}

// PostgresOption configures the PostgresLoader.
type PostgresOption func(*PostgresLoader)

// WithTable sets the table name. Default: "translations".
func WithTable(name string) PostgresOption {
	return func(l *PostgresLoader) {
		if name != "" {
			l.table = name
		}
	}
}

// NewPostgresLoader creates a Loader backed by the given connection pool.
func NewPostgresLoader(pool *pgxpool.Pool, opts ...PostgresOption) *PostgresLoader {
	if pool == nil {
		panic("bundle: postgres pool is not provided")
	}
	l := &PostgresLoader{
		pool:  pool,
		table: "translations",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and parses the bundle row for code.
func (l *PostgresLoader) Load(ctx context.Context, code string) (Bundle, error) {
	query := fmt.Sprintf(`SELECT document FROM %s WHERE lang = $1`, l.table)

	var doc []byte
	if err := l.pool.QueryRow(ctx, query, code).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
		}
		return nil, fmt.Errorf("%w: querying %q: %s", ErrLoadFailed, code, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing row %q: %s", ErrInvalidBundle, code, err)
	}

	return Bundle(raw), nil
}

// Migrate applies the embedded migration that creates the translations table.
// A nil log discards migration output.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if log == nil {
		log = logger.NewNope()
	}

	// Bridge the pgx pool to the database/sql interface goose expects.
	// The returned db shares the pool's connections, so it is not closed here.
	db := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLoggerAdapter{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("bundle: setting migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("bundle: applying migrations: %w", err)
	}

	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// Error level only: goose returns the error up the stack, and os.Exit
	// here would skip cleanup.
	g.log.Error(fmt.Sprintf(format, args...))
}
