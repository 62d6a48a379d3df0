package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
)

type createProductRequest struct {
	Code        string          `json:"code" binding:"required,max=10"`
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"required,max=200"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  int64           `json:"categoryId" binding:"required"`
	State       *bool           `json:"state"`
}

type updateProductRequest struct {
	Code        *string          `json:"code" binding:"omitempty,max=10"`
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=200"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"categoryId"`
	State       *bool            `json:"state"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateRequest{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		State:       req.State,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		Page     int    `form:"page"`
		Size     int    `form:"size"`
		Q        string `form:"q"`
		Category string `form:"category"`
		State    string `form:"state"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	state, err := parseOptionalBool(query.State)
	if err != nil {
		AbortWithError(c, newValidationError("state", "invalid_state", "state must be true or false"))
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Query:    strings.TrimSpace(query.Q),
		Category: strings.TrimSpace(query.Category),
		State:    state,
		Page:     query.Page,
		Size:     query.Size,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetProductByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid product id"))
		return
	}

	resp, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid product id"))
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateRequest{
		ID:          id,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		State:       req.State,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid product id"))
		return
	}

	resp, err := s.productSvc.Delete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
