package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

// parseFlag reports whether a textual flag reads "true". Anything else,
// including a malformed value, is false.
func parseFlag(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// parseSizes accepts the size map as a decoded object or as its JSON
// text. Tiers missing from a parsed map are zero. When raw cannot be
// parsed, fallback is returned with the parse error.
func parseSizes(raw any, fallback Sizes) (Sizes, error) {
	var text []byte

	switch v := raw.(type) {
	case Sizes:
		return v, nil
	case *Sizes:
		if v == nil {
			return fallback, nil
		}
		return *v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return fallback, nil
		}
		text = []byte(v)
	case json.RawMessage:
		text = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fallback, err
		}
		text = encoded
	}

	var sizes Sizes
	if err := json.Unmarshal(text, &sizes); err != nil {
		return fallback, fmt.Errorf("parse sizes: %w", err)
	}
	return sizes, nil
}

// number is a price that decodes from a JSON number or a numeric string,
// the form browsers produce when a size map is built from form fields.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	text := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q is not a number", text)
	}
	*n = number(v)
	return nil
}

// UnmarshalJSON reads each tier as a number or numeric string. Unknown
// keys are ignored.
func (s *Sizes) UnmarshalJSON(b []byte) error {
	var raw struct {
		Quarter  number `json:"quarter"`
		Half     number `json:"half"`
		Full     number `json:"full"`
		Normal   number `json:"normal"`
		Schezwan number `json:"schezwan"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Sizes{
		Quarter:  float64(raw.Quarter),
		Half:     float64(raw.Half),
		Full:     float64(raw.Full),
		Normal:   float64(raw.Normal),
		Schezwan: float64(raw.Schezwan),
	}
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// applyInput merges the supplied fields of in into item. Only fields
// present in the request change; a size map that does not parse keeps
// the item's current sizes.
func (s *Service) applyInput(item *MenuItem, in Input) error {
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		if id := strings.TrimSpace(*in.Category); id == "" {
			item.Category = bson.NilObjectID
		} else {
			oid, err := parseCategoryID(id)
			if err != nil {
				return err
			}
			item.Category = oid
		}
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Sizes != nil {
		sizes, err := parseSizes(in.Sizes, item.Sizes)
		if err != nil {
			s.log.Warn("ignoring malformed sizes", zap.Any("sizes", in.Sizes), zap.Error(err))
		}
		item.Sizes = sizes
	}
	if in.IsAvailable != nil {
		item.IsAvailable = parseFlag(*in.IsAvailable)
	}
	if in.IsVegetarian != nil {
		item.IsVegetarian = parseFlag(*in.IsVegetarian)
	}
	if in.IsSpicy != nil {
		item.IsSpicy = parseFlag(*in.IsSpicy)
	}
	if in.PreparationTime != nil {
		item.PreparationTime = *in.PreparationTime
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.Tags != nil {
		item.Tags = cleanTags(in.Tags)
	}
	return nil
}

// requirePrice folds a missing price into the validation message so the
// caller still sees every violation at once.
func requirePrice(validationErr error) error {
	const missing = "Price is required"
	if validationErr == nil {
		return apperr.Invalid(missing)
	}
	return apperr.Invalid(apperr.Message(validationErr) + ", " + missing)
}
