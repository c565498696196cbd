package sqliteadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gaadi/contexts/marketplace/listing-engine/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type partitionModel struct {
	Name      string `gorm:"column:name;primaryKey"`
	Payload   string `gorm:"column:payload"`
	UpdatedAt time.Time
}

func (partitionModel) TableName() string { return "partitions" }

// Store is the durable key-value medium: one row per partition, whole
// payload replaced on every write.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var row partitionModel
	err := s.db.WithContext(ctx).
		Where("name = ?", key).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Payload, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	row := partitionModel{
		Name:      key,
		Payload:   value,
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(&row).
		Error
}

var _ ports.KeyValueStore = (*Store)(nil)
