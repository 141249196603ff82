package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

type TerminalConfigRepositoryInterface interface {
	Save(ctx context.Context, cfg *db_models.TerminalConfig) error
	FindByID(ctx context.Context, code, model string) (*db_models.TerminalConfig, error)
	FindAll(ctx context.Context) ([]db_models.TerminalConfig, error)
	CountByMACAddressExcluding(ctx context.Context, mac, code, model string) (int64, error)
}

func NewTerminalConfigRepository(db *gorm.DB) TerminalConfigRepositoryInterface {
	return &TerminalConfigRepository{db: db}
}

type TerminalConfigRepository struct {
	db *gorm.DB
}

func (r *TerminalConfigRepository) Save(ctx context.Context, cfg *db_models.TerminalConfig) error {
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *TerminalConfigRepository) FindByID(ctx context.Context, code, model string) (*db_models.TerminalConfig, error) {
	var cfg db_models.TerminalConfig
	err := r.db.WithContext(ctx).
		Where("code = ? AND model = ?", code, model).
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &cfg, nil
}

func (r *TerminalConfigRepository) FindAll(ctx context.Context) ([]db_models.TerminalConfig, error) {
	var configs []db_models.TerminalConfig
	if err := r.db.WithContext(ctx).Find(&configs).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return configs, nil
}

func (r *TerminalConfigRepository) CountByMACAddressExcluding(ctx context.Context, mac, code, model string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.TerminalConfig{}).
		Where("mac_address = ? AND NOT (code = ? AND model = ?)", mac, code, model).
		Count(&count).Error
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
