package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

func serve(t *testing.T, h gin.HandlerFunc) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestOK(t *testing.T) {
	code, body := serve(t, func(c *gin.Context) {
		OK(c, http.StatusOK, []string{"a"}, gin.H{"count": 1})
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.Len(t, body["data"], 1)
}

func TestFail_Classified(t *testing.T) {
	code, body := serve(t, func(c *gin.Context) {
		Fail(c, zap.NewNop(), apperr.NotFound("Menu item not found"))
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Menu item not found", body["message"])
}

func TestFail_ServerErrorIsGeneric(t *testing.T) {
	code, body := serve(t, func(c *gin.Context) {
		Fail(c, zap.NewNop(), errors.New("socket closed"))
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Server error", body["message"])
}
