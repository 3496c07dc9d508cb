package postgres

import (
	"context"

	"mealplanner/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reader returns a session for SELECTs, pinned to the primary when ctx asks for a strong read.
func reader(ctx context.Context, db *gorm.DB) *gorm.DB {
	tx := db.WithContext(ctx)
	if repository.IsStrongRead(ctx) {
		tx = tx.Clauses(dbresolver.Write)
	}

	return tx
}
