package assets

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemFetcher reads file:// URLs and site-relative paths from a
// directory on the filesystem.
// Implements Fetcher interface.
type FilesystemFetcher struct {
	basePath string
	maxBytes int64
}

// NewFilesystemFetcher creates a FilesystemFetcher for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemFetcher(basePath string, maxBytes int64) (*FilesystemFetcher, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &FilesystemFetcher{basePath: absPath, maxBytes: maxBytes}, nil
}

// BasePath returns the resolved base directory.
func (f *FilesystemFetcher) BasePath() string { return f.basePath }

// Fetch reads the file behind rawURL. A file:// URL and a site-relative path
// ("/img/cloud.png" or "img/cloud.png") are both taken relative to the base
// directory, and neither may escape it.
func (f *FilesystemFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateAssetURL(rawURL); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := localPath(rawURL)
	if err != nil {
		return nil, err
	}

	filePath := filepath.Join(f.basePath, filepath.FromSlash(rel))
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, rawURL)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer file.Close()

	return readCapped(file, f.maxBytes, rawURL)
}

// localPath extracts the path part of a file:// URL or site-relative path.
func localPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "", "file":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	p := strings.TrimLeft(u.Path, "/")
	if p == "" {
		return "", fmt.Errorf("%w: no path in %q", ErrInvalidAssetURL, rawURL)
	}
	return p, nil
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Resolves symlinks to prevent escape via symlink pointing outside basePath.
func (f *FilesystemFetcher) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// If EvalSymlinks fails the file does not exist; the open fails later
	// and the prefix check still applies to the cleaned path.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// Separator suffix rejects sibling prefixes (/base/path vs /base/pathevil)
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Fetcher = (*FilesystemFetcher)(nil)
