package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/catalog/internal/category/domain"
	"github.com/smallbiznis/catalog/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("category.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNameInUse
	}

	c := &domain.Category{
		ID:   s.genID.Generate().Int64(),
		Name: name,
	}
	if err := s.repo.Create(ctx, s.db, c); err != nil {
		// The unique index is the real guard; racing creates surface here.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrNameInUse
		}
		return nil, err
	}

	s.log.Info("category created", zap.Int64("category_id", c.ID))
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Response, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func toResponse(c *domain.Category) domain.Response {
	return domain.Response{
		ID:   c.ID,
		Name: c.Name,
	}
}
