// Package database provisions a validated PostgreSQL connection pool.
//
// Setup builds a connection string from config.DBConfig, opens a pgx pool,
// and runs a liveness probe against information_schema before handing the
// pool to the caller. The caller owns the pool and must Close it.
package database
