package postgres

import (
	"context"

	"sellerhub/internal/errors"
	"sellerhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and column the service uses.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
