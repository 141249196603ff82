package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

// TransactionRepositoryInterface persists transactions keyed by their unique
// code. Callers are expected to be the only writer for a given code at a
// time; concurrent writes to the same code are last-write-wins.
type TransactionRepositoryInterface interface {
	Save(ctx context.Context, txn *db_models.Transaction) error
	FindByUniqueCode(ctx context.Context, code string) (*db_models.Transaction, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (r *TransactionRepository) Save(ctx context.Context, txn *db_models.Transaction) error {
	if err := r.db.WithContext(ctx).Save(txn).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *TransactionRepository) FindByUniqueCode(ctx context.Context, code string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).Where("unique_code = ?", code).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &txn, nil
}
