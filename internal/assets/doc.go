// Package assets fetches the remote and local resources a report refers to:
// the custom font and the word-cloud image.
//
// # Fetcher Architecture
//
//	Fetcher (interface)
//	    │
//	    ├── HTTPFetcher        - http and https, with a byte cap
//	    ├── FilesystemFetcher  - file:// and site-relative paths under a base directory
//	    └── Resolver           - dispatches by scheme, resolving site-relative
//	                             paths against a base URL or the base directory
//
// ImageLoader sits on top of any Fetcher: it sniffs the fetched bytes and
// decodes them into an image.Image.
//
// # Security
//
// URLs are validated before any I/O. FilesystemFetcher resolves symlinks and
// verifies every path stays within its base directory.
package assets
