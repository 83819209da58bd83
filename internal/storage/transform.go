package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Transform is the processing profile applied before an image is stored.
type Transform struct {
	Width   int
	Height  int
	Crop    string // "fill" crops to exactly Width x Height around the centre
	Quality int    // JPEG quality; 0 selects the automatic default
}

const autoQuality = 80

// MenuImageProfile resizes to an 800x600 fill crop at automatic quality.
var MenuImageProfile = Transform{Width: 800, Height: 600, Crop: "fill"}

// Apply decodes data, resizes it per the profile and re-encodes it as
// JPEG. Undecodable input is rejected.
func (t Transform) Apply(data []byte) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	if t.Width > 0 && t.Height > 0 {
		if t.Crop == "fill" {
			img = imaging.Fill(img, t.Width, t.Height, imaging.Center, imaging.Lanczos)
		} else {
			img = imaging.Fit(img, t.Width, t.Height, imaging.Lanczos)
		}
	}

	quality := t.Quality
	if quality <= 0 {
		quality = autoQuality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
