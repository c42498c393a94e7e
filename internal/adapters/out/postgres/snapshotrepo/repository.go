package snapshotrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotStore implements ports.SnapshotStore using GORM.
type GormSnapshotStore struct {
	db *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db: db}
}

// Load returns the document stored under name, or nil when there is none.
func (s *GormSnapshotStore) Load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto SnapshotDTO
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dto.Data, nil
}

// Save inserts or replaces the document stored under name.
func (s *GormSnapshotStore) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("data")
	}

	dto := SnapshotDTO{Name: name, Data: data, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&dto).Error
}
