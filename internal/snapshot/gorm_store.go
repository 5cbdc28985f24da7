package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRecord struct {
	Namespace string         `gorm:"primaryKey;column:namespace"`
	Data      datatypes.JSON `gorm:"column:data;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

func (snapshotRecord) TableName() string { return "inventory_snapshots" }

// GormStore persists the snapshot as a single keyed row.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context) (*State, bool, error) {
	var rec snapshotRecord
	err := s.db.WithContext(ctx).
		Where("namespace = ?", Namespace).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var state State
	if err := json.Unmarshal(rec.Data, &state); err != nil {
		return nil, false, err
	}
	return &state, true, nil
}

func (s *GormStore) Save(ctx context.Context, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	rec := snapshotRecord{
		Namespace: Namespace,
		Data:      datatypes.JSON(payload),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&rec).Error
}
