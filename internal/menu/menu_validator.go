package menu

import (
	"path/filepath"
	"strings"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

const MaxImageSize = 5 << 20

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ValidateImageFile checks an uploaded image's name and size before it is
// read.
func ValidateImageFile(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return apperr.Invalid("Image file extension missing")
	}

	if !allowedExt[ext] {
		return apperr.Invalid("Only image files are allowed (jpg, jpeg, png, gif)")
	}

	if size > MaxImageSize {
		return apperr.Invalid("Image cannot exceed 5MB")
	}

	return nil
}
