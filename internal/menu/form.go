package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

const imageField = "image"

// jsonInput is the JSON body accepted when no image is sent.
type jsonInput struct {
	Name            *string         `json:"name"`
	Description     *string         `json:"description"`
	Category        *string         `json:"category"`
	Price           json.RawMessage `json:"price"`
	Sizes           any             `json:"sizes"`
	IsAvailable     any             `json:"isAvailable"`
	IsVegetarian    any             `json:"isVegetarian"`
	IsSpicy         any             `json:"isSpicy"`
	PreparationTime *int            `json:"preparationTime"`
	SortOrder       *int            `json:"sortOrder"`
	Tags            []string        `json:"tags"`
}

// readInput decodes a multipart form (with an optional image) or a JSON
// body into an Input. The returned image is nil when none was sent.
func readInput(c *gin.Context) (Input, []byte, error) {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		return readMultipart(c)
	}

	var body jsonInput
	if err := c.ShouldBindJSON(&body); err != nil {
		return Input{}, nil, apperr.InvalidWrap(err, "Invalid request body")
	}
	price, err := jsonFloat(body.Price, "Price")
	if err != nil {
		return Input{}, nil, err
	}

	return Input{
		Name:            body.Name,
		Description:     body.Description,
		Category:        body.Category,
		Price:           price,
		Sizes:           body.Sizes,
		IsAvailable:     flagText(body.IsAvailable),
		IsVegetarian:    flagText(body.IsVegetarian),
		IsSpicy:         flagText(body.IsSpicy),
		PreparationTime: body.PreparationTime,
		SortOrder:       body.SortOrder,
		Tags:            body.Tags,
	}, nil, nil
}

// jsonFloat reads a number or numeric string. Absent, null and blank
// values are nil, matching an empty form field.
func jsonFloat(raw json.RawMessage, label string) (*float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	var text string
	if json.Unmarshal(raw, &text) == nil && strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var n number
	if err := n.UnmarshalJSON(raw); err != nil {
		return nil, apperr.Invalid(label + " must be a number")
	}
	f := float64(n)
	return &f, nil
}

func readMultipart(c *gin.Context) (Input, []byte, error) {
	var in Input
	var err error

	in.Name = formString(c, "name")
	in.Description = formString(c, "description")
	in.Category = formString(c, "category")
	in.IsAvailable = formString(c, "isAvailable")
	in.IsVegetarian = formString(c, "isVegetarian")
	in.IsSpicy = formString(c, "isSpicy")
	if v := formString(c, "sizes"); v != nil {
		in.Sizes = *v
	}
	if tags, ok := c.GetPostFormArray("tags"); ok {
		in.Tags = tags
	}

	if in.Price, err = formFloat(c, "price", "Price"); err != nil {
		return Input{}, nil, err
	}
	if in.PreparationTime, err = formInt(c, "preparationTime", "Preparation time"); err != nil {
		return Input{}, nil, err
	}
	if in.SortOrder, err = formInt(c, "sortOrder", "Sort order"); err != nil {
		return Input{}, nil, err
	}

	image, err := readImage(c)
	if err != nil {
		return Input{}, nil, err
	}
	return in, image, nil
}

func readImage(c *gin.Context) ([]byte, error) {
	file, header, err := c.Request.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.InvalidWrap(err, "Invalid image upload")
	}
	defer file.Close()

	if err := ValidateImageFile(header.Filename, header.Size); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, apperr.Server(err)
	}
	if len(data) > MaxImageSize {
		return nil, apperr.Invalid("Image cannot exceed 5MB")
	}
	return data, nil
}

func formString(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

func formFloat(c *gin.Context, key, label string) (*float64, error) {
	v := formString(c, key)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil {
		return nil, apperr.Invalid(label + " must be a number")
	}
	return &f, nil
}

func formInt(c *gin.Context, key, label string) (*int, error) {
	v := formString(c, key)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil {
		return nil, apperr.Invalid(label + " must be a whole number")
	}
	return &n, nil
}

// flagText renders a JSON flag (boolean or string) in the textual form the
// service coerces.
func flagText(v any) *string {
	if v == nil {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return &s
}

// parseListQuery reads the listing filter and pagination from the query
// string. Unparseable numbers fall back to the defaults.
func parseListQuery(c *gin.Context) (Filter, Pagination) {
	f := Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if v, ok := c.GetQuery("isAvailable"); ok {
		available := v == "true"
		f.IsAvailable = &available
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return f, Pagination{Page: page, Limit: limit}
}
