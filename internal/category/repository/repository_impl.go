package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/catalog/internal/category/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).First(&c, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var items []domain.Category
	if err := db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
