package assets

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxURLLength bounds asset URLs accepted by ValidateAssetURL.
const MaxURLLength = 4096

// ValidateAssetURL checks that raw is safe to hand to a Fetcher.
// It accepts http, https and file URLs and scheme-less site-relative paths.
// Returns ErrInvalidAssetURL if the URL is empty, too long, contains NUL or
// does not parse. Returns ErrUnsupportedScheme for any other scheme.
func ValidateAssetURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidAssetURL)
	}
	if len(raw) > MaxURLLength {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidAssetURL, len(raw), MaxURLLength)
	}
	if strings.ContainsRune(raw, 0) {
		return fmt.Errorf("%w: contains NUL", ErrInvalidAssetURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "file":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
