package reportpdf

import (
	"context"

	"golang.org/x/image/font/sfnt"

	"github.com/alnah/go-reportpdf/internal/fonts"
)

// FontCache memoizes parsed fonts by URL across reports. Concurrent reports
// asking for the same URL share one download. A failed load is not kept, so
// the next report tries again.
type FontCache struct {
	cache *fonts.Cache
}

// NewFontCache creates a FontCache that downloads through f.
func NewFontCache(f Fetcher) *FontCache {
	var load fonts.Loader
	if f != nil {
		load = f.Fetch
	}
	return &FontCache{cache: fonts.NewCache(load)}
}

// Len returns the number of fonts held.
func (c *FontCache) Len() int {
	return c.cache.Len()
}

func (c *FontCache) get(ctx context.Context, url string) (*sfnt.Font, error) {
	return c.cache.Get(ctx, url)
}

// HasSystemCJKFont reports whether an installed CJK font backs reports that
// name no font URL. The font directories are searched on the first call.
func HasSystemCJKFont() bool {
	return fonts.SystemCJK() != nil
}
