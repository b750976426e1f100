package fonts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/singleflight"
)

// Sentinel errors for font loading.
var (
	ErrNoFontURL = errors.New("no font URL")
	ErrNoLoader  = errors.New("no font loader configured")
	ErrFontFetch = errors.New("failed to fetch font")
	ErrFontParse = errors.New("failed to parse font")
)

// LoadTimeout bounds a shared font load, which outlives the caller that
// started it.
const LoadTimeout = 2 * time.Minute

// Loader fetches raw font bytes for a URL.
type Loader func(ctx context.Context, url string) ([]byte, error)

// Cache memoizes parsed fonts by URL. Concurrent requests for the same URL
// share a single in-flight load. Only successful loads are kept, so a
// failed URL is attempted again on the next request.
type Cache struct {
	load  Loader
	group singleflight.Group

	mu    sync.RWMutex
	fonts map[string]*sfnt.Font
}

// NewCache creates a Cache that fetches with load.
func NewCache(load Loader) *Cache {
	return &Cache{
		load:  load,
		fonts: make(map[string]*sfnt.Font),
	}
}

// Get returns the font for url, loading and parsing it at most once.
func (c *Cache) Get(ctx context.Context, url string) (*sfnt.Font, error) {
	if url == "" {
		return nil, ErrNoFontURL
	}
	if c.load == nil {
		return nil, ErrNoLoader
	}

	c.mu.RLock()
	f, ok := c.fonts[url]
	c.mu.RUnlock()
	if ok {
		return f, nil
	}

	// The load is shared, so one caller giving up must not cancel it for
	// the others. Each caller still stops waiting on its own context.
	ch := c.group.DoChan(url, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()

		data, err := c.load(loadCtx, url)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFontFetch, url, err)
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFontParse, url, err)
		}

		c.mu.Lock()
		c.fonts[url] = parsed
		c.mu.Unlock()
		return parsed, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sfnt.Font), nil
	}
}

// Len returns the number of memoized fonts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts)
}
