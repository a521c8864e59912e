package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/cityvent/events-api/internal/httperr"
)

const (
	// MaxCoverWidth caps stored cover images; anything wider is scaled
	// down preserving aspect ratio.
	MaxCoverWidth = 1280

	webpQuality = 82
)

// ProcessCover decodes an uploaded image (jpeg or png), scales it to
// the cover size and re-encodes it as webp.
func ProcessCover(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	if width > MaxCoverWidth {
		height = height * MaxCoverWidth / width
		width = MaxCoverWidth

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
