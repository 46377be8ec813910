package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/uuid"
)

// ownedBy scopes a query to rows of T owned by userID. Every owner-scoped
// read and write goes through this scope.
func ownedBy[T models.Owned](userID string) func(*gorm.DB) *gorm.DB {
	var zero T
	column := zero.OwnerColumn()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: column},
			Value:  userID,
		})
	}
}

// findOwned loads the T with the given id if userID owns it. Records owned
// by someone else are reported with notFound, the same as missing ones.
func findOwned[T models.Owned](db *gorm.DB, userID, id string, notFound *apperrors.AppError) (*T, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.ErrInvalidID
	}

	var record T
	err := db.Scopes(ownedBy[T](userID)).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}).
		First(&record).Error
	if err != nil {
		return nil, apperrors.FromDB(err, notFound)
	}
	return &record, nil
}

// applyUpdates writes non-empty updates to record. Loaded associations are
// never written back.
func applyUpdates(db *gorm.DB, record any, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	if err := db.Model(record).Omit(clause.Associations).Updates(updates).Error; err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

// utcNow is the default service clock. Timestamps are written in UTC so
// range queries compare consistently on every driver.
func utcNow() time.Time {
	return time.Now().UTC()
}
