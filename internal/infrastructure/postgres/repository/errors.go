package repository

import (
	"errors"
	"fmt"

	"github.com/craveo/marketplace-service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate folds gorm errors into the domain error kinds. Requires the
// gorm session to be opened with TranslateError so driver duplicate-key
// errors surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate key", domain.ErrConflict)
	default:
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
}

// forUpdate adds a row lock on dialects that support it. SQLite, used in
// tests, serializes writers on its own.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
