package assets

import "context"

// DefaultMaxBytes caps a single fetched asset.
const DefaultMaxBytes = 32 << 20

// Fetcher retrieves the raw bytes behind an asset URL.
// Implementations may read from HTTP, the filesystem, an object store, etc.
type Fetcher interface {
	// Fetch returns the bytes at url.
	// Returns ErrAssetNotFound if nothing exists there.
	// Returns ErrInvalidAssetURL or ErrUnsupportedScheme before any I/O.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f.
func (f FetchFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}
