package restaurant

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

// --------------------------------------------------
// GET /restaurants
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurants, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, restaurants, gin.H{"count": len(restaurants)})
}

// --------------------------------------------------
// GET /restaurants/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	restaurant, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, restaurant, nil)
}

// --------------------------------------------------
// POST /restaurants
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, h.log, apperr.InvalidWrap(err, "Invalid request body"))
		return
	}

	userID := c.GetString("userID")
	if userID == "" {
		response.Abort(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	restaurant, err := h.service.Create(c.Request.Context(), in, userID)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusCreated, restaurant, gin.H{"message": "Restaurant created successfully"})
}

// --------------------------------------------------
// PUT /restaurants/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, h.log, apperr.InvalidWrap(err, "Invalid request body"))
		return
	}

	restaurant, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, restaurant, gin.H{"message": "Restaurant updated successfully"})
}

// --------------------------------------------------
// DELETE /restaurants/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, nil, gin.H{"message": "Restaurant deleted successfully"})
}
