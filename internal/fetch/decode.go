package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// imaging registers jpeg, png, gif, bmp and tiff; webp comes from x/image
	_ "golang.org/x/image/webp"
)

var errEmptyBody = errors.New("empty response body")

// Decode interprets data as an image and returns it with the format name
// reported by the registered decoder
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", errEmptyBody
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unrecognized image data: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("failed to decode %s: %w", format, err)
	}
	return img, format, nil
}
