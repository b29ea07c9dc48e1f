package database

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rickgao/datautils/internal/config"
)

// SetupOption configures Setup.
type SetupOption func(*setupOptions)

type setupOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report probe results.
func WithLogger(logger *slog.Logger) SetupOption {
	return func(o *setupOptions) {
		o.logger = logger
	}
}

// Setup opens a connection pool for cfg and verifies it with one probe query
// on a single acquired connection. The connection is released before Setup
// returns. On success the pool is returned and the caller must Close it.
//
// Failures from parsing, pool creation, acquisition or the probe are
// returned unchanged, with no retry and no pool.
func Setup(ctx context.Context, cfg config.DBConfig, opts ...SetupOption) (*pgxpool.Pool, error) {
	o := setupOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	info, err := probe(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	attrs := make([]any, 0, 2*len(info)+4)
	attrs = append(attrs, "host", cfg.Host, "database", cfg.Name)
	for _, i := range info {
		attrs = append(attrs, i.Key, i.Value)
	}
	o.logger.Info("database connection verified", attrs...)

	return pool, nil
}

func probe(ctx context.Context, pool *pgxpool.Pool) ([]ImplementationInfo, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return Probe(ctx, conn)
}
