package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// ImageError reports an image that could not be fetched or decoded.
// Its message is the one shown to readers; Unwrap exposes the cause.
type ImageError struct {
	URL string
	Err error
}

func (e *ImageError) Error() string { return "cannot load image: " + e.URL }

func (e *ImageError) Unwrap() error { return e.Err }

// Is reports whether target is ErrImageLoad.
func (e *ImageError) Is(target error) bool { return target == ErrImageLoad }

type decodeFunc func(r *bytes.Reader) (image.Image, error)

var decoders = map[string]decodeFunc{
	"image/png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
	"image/jpeg": func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) },
	"image/gif":  func(r *bytes.Reader) (image.Image, error) { return gif.Decode(r) },
	"image/webp": func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
	"image/bmp":  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
}

// ImageLoader fetches and decodes images.
type ImageLoader struct {
	fetcher Fetcher
}

// NewImageLoader creates an ImageLoader reading through fetcher.
func NewImageLoader(fetcher Fetcher) *ImageLoader {
	return &ImageLoader{fetcher: fetcher}
}

// Load fetches url and decodes it. The format is sniffed from the bytes,
// never taken from the URL or a Content-Type header.
// Every failure is an *ImageError.
func (l *ImageLoader) Load(ctx context.Context, url string) (image.Image, error) {
	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, &ImageError{URL: url, Err: err}
	}

	img, err := Decode(data)
	if err != nil {
		return nil, &ImageError{URL: url, Err: err}
	}
	return img, nil
}

// Decode sniffs data and decodes it with the matching codec.
// Returns ErrUnsupportedImage for anything but PNG, JPEG, GIF, WebP and BMP.
func Decode(data []byte) (image.Image, error) {
	mt := mimetype.Detect(data)
	decode, ok := decoders[mt.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", mt.String(), err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty %s", ErrUnsupportedImage, mt.String())
	}
	return img, nil
}
