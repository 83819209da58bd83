package category

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/response"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// GET /categories
func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, categories, gin.H{"count": len(categories)})
}

// GET /categories/:id
func (h *Handler) Get(c *gin.Context) {
	category, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, category, nil)
}

// POST /categories
func (h *Handler) Create(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, h.log, apperr.InvalidWrap(err, "Invalid request body"))
		return
	}

	category, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusCreated, category, gin.H{"message": "Category created successfully"})
}

// PUT /categories/:id
func (h *Handler) Update(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, h.log, apperr.InvalidWrap(err, "Invalid request body"))
		return
	}

	category, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, category, gin.H{"message": "Category updated successfully"})
}

// DELETE /categories/:id removes the category with all of its menu items.
func (h *Handler) Delete(c *gin.Context) {
	summary, err := h.service.DeleteCategoryCascade(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, summary, gin.H{
		"message": "Category and all associated menu items deleted successfully",
	})
}
