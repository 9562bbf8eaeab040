package migrations

import (
	"context"
	"encoding/json"

	"github.com/uptrace/bun"

	"purrfect-cats/internal/catalog"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			c := catalog.Default()
			data, err := json.Marshal(c)
			if err != nil {
				return err
			}
			_, err = db.ExecContext(ctx,
				`INSERT INTO catalogs (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO NOTHING`,
				c.ID, string(data))
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DELETE FROM catalogs WHERE id = ?`, catalog.DefaultID)
			return err
		},
	)
}
