package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/response"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// GET /menu?category=&search=&isAvailable=&page=&limit=
func (h *Handler) List(c *gin.Context) {
	filter, pagination := parseListQuery(c)

	page, err := h.service.ListItems(c.Request.Context(), filter, pagination)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, page.Items, gin.H{
		"count": len(page.Items),
		"total": page.Total,
		"page":  page.Page,
		"pages": page.Pages,
	})
}

// GET /menu/category/:categoryId
func (h *Handler) ListByCategory(c *gin.Context) {
	items, err := h.service.ListByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, items, gin.H{"count": len(items)})
}

// GET /menu/:id
func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, item, nil)
}

// --------------------------------------------------
// Admin: create / update accept multipart with an optional "image" file
// --------------------------------------------------

// POST /menu
func (h *Handler) Create(c *gin.Context) {
	in, image, err := readInput(c)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), in, image)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusCreated, item, gin.H{"message": "Menu item created successfully"})
}

// PUT /menu/:id
func (h *Handler) Update(c *gin.Context) {
	in, image, err := readInput(c)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), in, image)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, item, gin.H{"message": "Menu item updated successfully"})
}

// DELETE /menu/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, nil, gin.H{"message": "Menu item deleted successfully"})
}
