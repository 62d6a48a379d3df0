package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Get(ctx context.Context, id int64) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id int64) (*Response, error)
}

type CreateRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId"`
	State       *bool           `json:"state"`
}

type UpdateRequest struct {
	ID          int64
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"categoryId"`
	State       *bool            `json:"state"`
}

type ListRequest struct {
	Query    string
	Category string
	State    *bool
	Page     int
	Size     int
}

// Response flattens the category reference to its name.
type Response struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	RegDate     time.Time       `json:"reg_date"`
	ModDate     *time.Time      `json:"mod_date"`
	State       bool            `json:"state"`
	Category    string          `json:"category"`
}

type ListResponse struct {
	Products []Response `json:"products"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
}

var (
	ErrNotFound           = errors.New("product_not_found")
	ErrCodeInUse          = errors.New("code_in_use")
	ErrInvalidCode        = errors.New("invalid_code")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidPrice       = errors.New("invalid_price")
)
