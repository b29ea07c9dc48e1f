package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ProbeQuery confirms the connection works and that the server exposes the
// SQL-standard implementation info view.
const ProbeQuery = `select implementation_info_name as key, character_value as value
from information_schema.sql_implementation_info
where implementation_info_name like 'DBMS %'`

// ImplementationInfo is one row of the probe result, e.g. "DBMS NAME" / "PostgreSQL".
type ImplementationInfo struct {
	Key   string
	Value string
}

// Querier is satisfied by *pgxpool.Conn, *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Probe runs ProbeQuery on q and returns its rows. Errors are returned as-is.
func Probe(ctx context.Context, q Querier) ([]ImplementationInfo, error) {
	rows, err := q.Query(ctx, ProbeQuery)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ImplementationInfo, error) {
		var info ImplementationInfo
		var value *string
		if err := row.Scan(&info.Key, &value); err != nil {
			return info, err
		}
		if value != nil {
			info.Value = *value
		}
		return info, nil
	})
}
