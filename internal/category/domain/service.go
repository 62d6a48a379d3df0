package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id int64) (*Response, error)
}

type CreateRequest struct {
	Name string `json:"name"`
}

type Response struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrNotFound    = errors.New("category_not_found")
	ErrNameInUse   = errors.New("category_name_in_use")
)
