package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 0x80
	}

	encode := func(t *testing.T, enc func(*bytes.Buffer) error) []byte {
		t.Helper()
		var buf bytes.Buffer
		if err := enc(&buf); err != nil {
			t.Fatalf("encode error = %v", err)
		}
		return buf.Bytes()
	}

	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		wantErr error
	}{
		{name: "png", data: func(t *testing.T) []byte { return pngBytes(t, 8, 4) }},
		{name: "jpeg", data: func(t *testing.T) []byte {
			return encode(t, func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) })
		}},
		{name: "gif", data: func(t *testing.T) []byte {
			return encode(t, func(b *bytes.Buffer) error { return gif.Encode(b, src, nil) })
		}},
		{name: "bmp", data: func(t *testing.T) []byte {
			return encode(t, func(b *bytes.Buffer) error { return bmp.Encode(b, src) })
		}},
		{name: "text", data: func(*testing.T) []byte { return []byte("not an image") }, wantErr: ErrUnsupportedImage},
		{name: "empty", data: func(*testing.T) []byte { return nil }, wantErr: ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, err := Decode(tt.data(t))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := img.Bounds().Size(); got != (image.Point{X: 8, Y: 4}) {
				t.Errorf("Decode() size = %v, want 8x4", got)
			}
		})
	}
}

func TestDecode_TruncatedPNG(t *testing.T) {
	t.Parallel()

	data := pngBytes(t, 16, 16)
	_, err := Decode(data[:len(data)/2])
	if err == nil {
		t.Fatal("Decode() of truncated png succeeded")
	}
}

func TestImageLoader_Load(t *testing.T) {
	t.Parallel()

	files := map[string][]byte{
		"/cloud.png": pngBytes(t, 10, 6),
		"/bad.png":   []byte("garbage"),
	}
	fetch := FetchFunc(func(_ context.Context, url string) ([]byte, error) {
		data, ok := files[url]
		if !ok {
			return nil, ErrAssetNotFound
		}
		return data, nil
	})
	loader := NewImageLoader(fetch)

	t.Run("decodes", func(t *testing.T) {
		t.Parallel()

		img, err := loader.Load(context.Background(), "/cloud.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 6 {
			t.Errorf("Load() bounds = %v", img.Bounds())
		}
		if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got.B != 0x99 {
			t.Errorf("pixel = %v", got)
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Load(context.Background(), "/missing.png")
		var imgErr *ImageError
		if !errors.As(err, &imgErr) {
			t.Fatalf("Load() error = %T, want *ImageError", err)
		}
		if imgErr.Error() != "cannot load image: /missing.png" {
			t.Errorf("Error() = %q", imgErr.Error())
		}
		if !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("Load() error does not wrap ErrAssetNotFound: %v", err)
		}
		if !errors.Is(err, ErrImageLoad) {
			t.Errorf("Load() error does not match ErrImageLoad: %v", err)
		}
	})

	t.Run("decode failure", func(t *testing.T) {
		t.Parallel()

		_, err := loader.Load(context.Background(), "/bad.png")
		var imgErr *ImageError
		if !errors.As(err, &imgErr) || !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("Load() error = %v, want *ImageError wrapping ErrUnsupportedImage", err)
		}
	})
}
