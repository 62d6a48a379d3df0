package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
	"github.com/smallbiznis/catalog/internal/product/domain"
	"github.com/smallbiznis/catalog/pkg/db"
	"github.com/smallbiznis/catalog/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Categories categorydomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	categories categorydomain.Repository
	genID      *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("product.service"),
		repo:       p.Repo,
		categories: p.Categories,
		genID:      p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" || len(code) > 10 {
		return nil, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, s.db, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, categorydomain.ErrNotFound
	}

	existing, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCodeInUse
	}

	state := true
	if req.State != nil {
		state = *req.State
	}

	p := &domain.Product{
		ID:          s.genID.Generate().Int64(),
		Code:        code,
		Name:        name,
		Description: description,
		Price:       req.Price,
		RegDate:     time.Now().UTC(),
		State:       state,
		CategoryID:  category.ID,
		Category:    category,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		// Racing creates with the same code pass the pre-check; the unique
		// index on products.code is the actual safety net.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrCodeInUse
		}
		return nil, err
	}

	s.log.Info("product created",
		zap.Int64("product_id", p.ID),
		zap.String("code", p.Code),
	)
	resp := s.toResponse(p)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	page := pagination.Page{Page: req.Page, Size: req.Size}.Normalize()

	items, total, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Query:    strings.TrimSpace(req.Query),
		Category: strings.TrimSpace(req.Category),
		State:    req.State,
		Page:     page,
	})
	if err != nil {
		return nil, err
	}

	products := make([]domain.Response, 0, len(items))
	for i := range items {
		products = append(products, s.toResponse(&items[i]))
	}

	return &domain.ListResponse{
		Products: products,
		Total:    total,
		Page:     page.Page,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := s.toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" || len(code) > 10 {
			return nil, domain.ErrInvalidCode
		}
		if code != item.Code {
			existing, err := s.repo.FindByCode(ctx, s.db, code)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != item.ID {
				return nil, domain.ErrCodeInUse
			}
		}
		item.Code = code
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, domain.ErrInvalidDescription
		}
		item.Description = description
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		item.Price = *req.Price
	}
	if req.CategoryID != nil {
		category, err := s.categories.FindByID(ctx, s.db, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, categorydomain.ErrNotFound
		}
		item.CategoryID = category.ID
		item.Category = category
	}
	if req.State != nil {
		item.State = *req.State
	}

	now := time.Now().UTC()
	item.ModDate = &now
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrCodeInUse
		}
		return nil, err
	}

	resp := s.toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, item); err != nil {
		return nil, err
	}

	s.log.Info("product deleted", zap.Int64("product_id", item.ID))
	resp := s.toResponse(item)
	return &resp, nil
}

func (s *Service) toResponse(p *domain.Product) domain.Response {
	resp := domain.Response{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		RegDate:     p.RegDate,
		ModDate:     p.ModDate,
		State:       p.State,
	}
	if p.Category != nil {
		resp.Category = p.Category.Name
	}
	return resp
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.ErrInvalidPrice
	}
	if !price.Equal(price.Round(2)) {
		return domain.ErrInvalidPrice
	}
	return nil
}
