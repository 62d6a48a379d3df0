package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
)

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	resp, err := s.categorySvc.Create(c.Request.Context(), categorydomain.CreateRequest{
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListCategories(c *gin.Context) {
	resp, err := s.categorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": resp})
}
