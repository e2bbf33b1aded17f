package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

type StockCapitalDao interface {
	Create(ctx context.Context, c *model.StockCapital) error
	Get(ctx context.Context, id int64) (*model.StockCapital, error)
	List(ctx context.Context, f *model.DateRangeFilters) ([]*model.StockCapital, error)
	ListAllAscending(ctx context.Context) ([]*model.StockCapital, error)
	Update(ctx context.Context, id int64, patch map[string]interface{}) (*model.StockCapital, error)
	Delete(ctx context.Context, id int64) (*model.StockCapital, error)
}

type stockCapitalDaoImpl struct{ db *gorm.DB }

func NewStockCapitalDao(db *gorm.DB) StockCapitalDao { return &stockCapitalDaoImpl{db: db} }

func (r *stockCapitalDaoImpl) Create(ctx context.Context, c *model.StockCapital) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *stockCapitalDaoImpl) Get(ctx context.Context, id int64) (*model.StockCapital, error) {
	var c model.StockCapital
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns capital records in the date window, newest first.
func (r *stockCapitalDaoImpl) List(ctx context.Context, f *model.DateRangeFilters) ([]*model.StockCapital, error) {
	q := r.db.WithContext(ctx).Model(&model.StockCapital{})
	if f != nil {
		if f.StartDate != nil {
			q = q.Where("date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			q = q.Where("date <= ?", *f.EndDate)
		}
	}
	var list []*model.StockCapital
	if err := q.Order("date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListAllAscending returns the full record set oldest first, the order the
// summary reduction expects for its first/last date bounds.
func (r *stockCapitalDaoImpl) ListAllAscending(ctx context.Context) ([]*model.StockCapital, error) {
	var list []*model.StockCapital
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *stockCapitalDaoImpl) Update(ctx context.Context, id int64, patch map[string]interface{}) (*model.StockCapital, error) {
	if err := r.db.WithContext(ctx).Model(&model.StockCapital{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *stockCapitalDaoImpl) Delete(ctx context.Context, id int64) (*model.StockCapital, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.StockCapital{}, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}
