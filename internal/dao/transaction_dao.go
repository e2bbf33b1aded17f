package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

type TransactionDao interface {
	Create(ctx context.Context, t *model.StockTransaction) error
	Get(ctx context.Context, id int64) (*model.StockTransaction, error)
	List(ctx context.Context, f *model.TransactionListFilters) ([]*model.StockTransaction, error)
	ListAll(ctx context.Context) ([]*model.StockTransaction, error)
	Update(ctx context.Context, id int64, patch map[string]interface{}) (*model.StockTransaction, error)
	Delete(ctx context.Context, id int64) (*model.StockTransaction, error)
}

type transactionDaoImpl struct{ db *gorm.DB }

func NewTransactionDao(db *gorm.DB) TransactionDao { return &transactionDaoImpl{db: db} }

func (r *transactionDaoImpl) Create(ctx context.Context, t *model.StockTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionDaoImpl) Get(ctx context.Context, id int64) (*model.StockTransaction, error) {
	var t model.StockTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns transactions matching the filters, newest invested date first.
func (r *transactionDaoImpl) List(ctx context.Context, f *model.TransactionListFilters) ([]*model.StockTransaction, error) {
	q := r.db.WithContext(ctx).Model(&model.StockTransaction{})
	if f != nil {
		if f.StockSymbol != "" {
			q = q.Where("stock_symbol = ?", f.StockSymbol)
		}
		if f.Type != "" {
			q = q.Where("type = ?", f.Type)
		}
		if f.StartDate != nil {
			q = q.Where("invested_date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			q = q.Where("invested_date <= ?", *f.EndDate)
		}
	}
	var list []*model.StockTransaction
	if err := q.Order("invested_date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListAll returns the full transaction set in store iteration order for the
// portfolio fold.
func (r *transactionDaoImpl) ListAll(ctx context.Context) ([]*model.StockTransaction, error) {
	var list []*model.StockTransaction
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update applies a partial column patch and returns the updated record.
// A missing id surfaces as gorm.ErrRecordNotFound from the re-read.
func (r *transactionDaoImpl) Update(ctx context.Context, id int64, patch map[string]interface{}) (*model.StockTransaction, error) {
	if err := r.db.WithContext(ctx).Model(&model.StockTransaction{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes the record and returns the deleted document.
func (r *transactionDaoImpl) Delete(ctx context.Context, id int64) (*model.StockTransaction, error) {
	t, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.StockTransaction{}, id).Error; err != nil {
		return nil, err
	}
	return t, nil
}
