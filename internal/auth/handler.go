package auth

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

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, h.log, apperr.Invalid("Invalid request body"))
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	}, gin.H{"message": "Login successful"})
}

// GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK, user, nil)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PUT /auth/change-password
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, h.log, apperr.Invalid("Invalid request body"))
		return
	}

	err := h.service.ChangePassword(
		c.Request.Context(),
		c.GetString("userID"),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		response.Fail(c, h.log, err)
		return
	}

	response.OK(c, http.StatusOK, nil, gin.H{"message": "Password changed successfully"})
}
