package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrInvalidAssetURL indicates an empty, oversized or malformed URL.
	ErrInvalidAssetURL = errors.New("invalid asset url")

	// ErrUnsupportedScheme indicates a URL scheme no fetcher handles.
	ErrUnsupportedScheme = errors.New("unsupported url scheme")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetNotFound indicates the asset does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetRead indicates an I/O error occurred while reading an asset.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrAssetTooLarge indicates the asset exceeds the configured byte cap.
	ErrAssetTooLarge = errors.New("asset too large")

	// ErrHTTPStatus indicates a non-2xx response.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrUnsupportedImage indicates bytes that are not a decodable image format.
	ErrUnsupportedImage = errors.New("unsupported image format")

	// ErrImageLoad matches every *ImageError.
	ErrImageLoad = errors.New("image load failed")
)
