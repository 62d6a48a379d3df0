package domain

import (
	"context"

	"github.com/smallbiznis/catalog/pkg/db/pagination"
	"gorm.io/gorm"
)

// ListFilter carries the optional listing predicates. A nil State means no
// state filtering at all, not inactive-only.
type ListFilter struct {
	Query    string
	Category string
	State    *bool
	Page     pagination.Page
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Product, int64, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, product *Product) error
}
