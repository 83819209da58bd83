package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMenuTestRouter(fx *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(fx.service, zap.NewNop())
	r.GET("/menu", h.List)
	r.GET("/menu/category/:categoryId", h.ListByCategory)
	r.GET("/menu/:id", h.Get)
	r.POST("/menu", h.Create)
	r.PUT("/menu/:id", h.Update)
	r.DELETE("/menu/:id", h.Delete)
	return r
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, filename string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandler_CreateMultipartWithImage(t *testing.T) {
	fx := newFixture()
	r := setupMenuTestRouter(fx)

	req := multipartRequest(t, http.MethodPost, "/menu", map[string]string{
		"name":         "Chicken Mandhi",
		"category":     fx.categoryIDs[0],
		"price":        "320",
		"sizes":        `{"quarter": 180, "half": 320}`,
		"isVegetarian": "false",
		"isSpicy":      "true",
	}, "mandhi.png", fakeImage)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Menu item created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, 320.0, data["price"])
	assert.Equal(t, true, data["isSpicy"])
	assert.Equal(t, true, data["isAvailable"])
	assert.Equal(t, 180.0, data["sizes"].(map[string]any)["quarter"])

	image := data["image"].(map[string]any)
	assert.NotEmpty(t, image["url"])
	assert.NotEmpty(t, image["publicId"])

	category := data["category"].(map[string]any)
	assert.Equal(t, "Chicken", category["name"])
	assert.Len(t, category, 3)
}

func TestHandler_RejectsNonImageUpload(t *testing.T) {
	fx := newFixture()
	r := setupMenuTestRouter(fx)

	req := multipartRequest(t, http.MethodPost, "/menu", map[string]string{
		"name":     "Chicken Mandhi",
		"category": fx.categoryIDs[0],
		"price":    "320",
	}, "menu.pdf", []byte("%PDF"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
	assert.Zero(t, fx.media.uploads)
}

func TestHandler_RejectsBadNumber(t *testing.T) {
	fx := newFixture()
	r := setupMenuTestRouter(fx)

	req := multipartRequest(t, http.MethodPost, "/menu", map[string]string{
		"name":     "Chicken Mandhi",
		"category": fx.categoryIDs[0],
		"price":    "three hundred",
	}, "", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Price must be a number", decode(t, w)["message"])
}

func TestHandler_CreateJSONAndList(t *testing.T) {
	fx := newFixture()
	r := setupMenuTestRouter(fx)

	for _, name := range []string{"Chicken Curry", "Chicken Fry", "Chilli Chicken"} {
		payload, _ := json.Marshal(gin.H{
			"name":        name,
			"category":    fx.categoryIDs[0],
			"price":       150,
			"isAvailable": true,
			"tags":        []string{" spicy ", ""},
		})
		req := httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu?search=CHICK&page=2&limit=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, 1.0, body["count"])
	assert.Equal(t, 3.0, body["total"])
	assert.Equal(t, 2.0, body["page"])
	assert.Equal(t, 3.0, body["pages"])

	item := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"spicy"}, item["tags"])
}

func TestHandler_CreateJSONWithStringNumbers(t *testing.T) {
	fx := newFixture()
	r := setupMenuTestRouter(fx)

	post := func(payload gin.H) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(gin.H{
		"name":     "Beef Mandhi",
		"category": fx.categoryIDs[0],
		"price":    "180",
		"sizes":    gin.H{"half": "120", "full": "220"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, 180.0, data["price"])
	sizes := data["sizes"].(map[string]any)
	assert.Equal(t, 120.0, sizes["half"])
	assert.Equal(t, 220.0, sizes["full"])

	w = post(gin.H{"name": "Beef Fry", "category": fx.categoryIDs[0], "price": "cheap"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Price must be a number", decode(t, w)["message"])
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	fx := newFixture()
	r := setupMenuTestRouter(fx)

	item, err := fx.service.CreateItem(context.Background(), fx.input("Porotta", 15), nil)
	require.NoError(t, err)
	path := "/menu/" + item.ID.Hex()

	req := multipartRequest(t, http.MethodPut, path, map[string]string{"price": "18"}, "porotta.jpg", fakeImage)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Menu item updated successfully", decode(t, w)["message"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, fx.media.deletes, 1)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu item not found", decode(t, w)["message"])
}
