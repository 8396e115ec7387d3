package repo

import (
	"context"

	"github.com/KNICEX/price-watch/internal/entity"
	"gorm.io/gorm"
)

// SignalRepo is append-only, rows are never updated or deleted.
type SignalRepo interface {
	Create(ctx context.Context, signal entity.Signal) (int64, error)
	FindByAsset(ctx context.Context, asset string, limit int) ([]entity.Signal, error)
}

type signalRepo struct {
	db *gorm.DB
}

func NewSignalRepo(db *gorm.DB) SignalRepo {
	return &signalRepo{
		db: db,
	}
}

func (r *signalRepo) Create(ctx context.Context, signal entity.Signal) (int64, error) {
	err := r.db.WithContext(ctx).Create(&signal).Error
	if err != nil {
		return 0, err
	}
	return signal.Id, nil
}

// FindByAsset returns the newest signals for asset first.
func (r *signalRepo) FindByAsset(ctx context.Context, asset string, limit int) ([]entity.Signal, error) {
	var signals []entity.Signal
	query := r.db.WithContext(ctx).Where("asset = ?", asset).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&signals).Error; err != nil {
		return nil, err
	}
	return signals, nil
}
