package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

type CoinCapitalDao interface {
	Create(ctx context.Context, c *model.CoinCapital) error
	Get(ctx context.Context, id int64) (*model.CoinCapital, error)
	List(ctx context.Context, f *model.DateRangeFilters) ([]*model.CoinCapital, error)
	ListAllAscending(ctx context.Context) ([]*model.CoinCapital, error)
	Update(ctx context.Context, id int64, patch map[string]interface{}) (*model.CoinCapital, error)
	Delete(ctx context.Context, id int64) (*model.CoinCapital, error)
}

type coinCapitalDaoImpl struct{ db *gorm.DB }

func NewCoinCapitalDao(db *gorm.DB) CoinCapitalDao { return &coinCapitalDaoImpl{db: db} }

func (r *coinCapitalDaoImpl) Create(ctx context.Context, c *model.CoinCapital) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *coinCapitalDaoImpl) Get(ctx context.Context, id int64) (*model.CoinCapital, error) {
	var c model.CoinCapital
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *coinCapitalDaoImpl) List(ctx context.Context, f *model.DateRangeFilters) ([]*model.CoinCapital, error) {
	q := r.db.WithContext(ctx).Model(&model.CoinCapital{})
	if f != nil {
		if f.StartDate != nil {
			q = q.Where("date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			q = q.Where("date <= ?", *f.EndDate)
		}
	}
	var list []*model.CoinCapital
	if err := q.Order("date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *coinCapitalDaoImpl) ListAllAscending(ctx context.Context) ([]*model.CoinCapital, error) {
	var list []*model.CoinCapital
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *coinCapitalDaoImpl) Update(ctx context.Context, id int64, patch map[string]interface{}) (*model.CoinCapital, error) {
	if err := r.db.WithContext(ctx).Model(&model.CoinCapital{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *coinCapitalDaoImpl) Delete(ctx context.Context, id int64) (*model.CoinCapital, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.CoinCapital{}, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}
