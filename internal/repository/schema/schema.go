package schema

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var files embed.FS

// Migrate applies the idempotent schema.
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	sqlBytes, err := files.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = dbc.Exec(ctx, string(sqlBytes))
	return err
}
