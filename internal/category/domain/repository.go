package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, category *Category) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Category, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Category, error)
}
