package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/catalog/internal/product/domain"
	"github.com/smallbiznis/catalog/pkg/textnorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var searchColumns = []string{"products.name", "products.description"}

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Preload("Category").First(&p, "products.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).First(&p, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List composes the optional search, category and state predicates over a
// base query joined to categories, then applies pagination. It returns the
// matching page together with the unpaginated count of matching rows.
func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Product, int64, error) {
	dialect := db.Dialector.Name()

	stmt := db.WithContext(ctx).
		Model(&domain.Product{}).
		Joins("INNER JOIN categories ON categories.id = products.category_id")

	if q := textnorm.Normalize(filter.Query); q != "" {
		pattern := "%" + q + "%"
		stmt = stmt.Where(textnorm.SearchCondition(searchColumns, dialect), pattern, pattern)
	}
	if category := textnorm.Normalize(filter.Category); category != "" {
		stmt = stmt.Where(textnorm.Column("categories.name", dialect)+" LIKE ?", "%"+category+"%")
	}
	if filter.State != nil {
		stmt = stmt.Where("products.state = ?", *filter.State)
	}

	var total int64
	if err := stmt.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Product
	err := stmt.
		Preload("Category").
		Order("products.id DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Limit()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", product.ID).Error
}
