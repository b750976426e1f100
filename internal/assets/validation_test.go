package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid URLs
		{name: "https", input: "https://example.com/cloud.png"},
		{name: "http with port", input: "http://localhost:8080/font.ttf"},
		{name: "file", input: "file:///img/cloud.png"},
		{name: "site-relative absolute path", input: "/fonts/NotoSansTC.ttf"},
		{name: "site-relative path", input: "img/cloud.png"},
		{name: "uppercase scheme", input: "HTTPS://example.com/a.png"},

		// Invalid URLs
		{name: "empty", input: "", wantErr: ErrInvalidAssetURL},
		{name: "whitespace only", input: "   ", wantErr: ErrInvalidAssetURL},
		{name: "NUL byte", input: "/img/a\x00.png", wantErr: ErrInvalidAssetURL},
		{name: "too long", input: "/" + strings.Repeat("a", MaxURLLength), wantErr: ErrInvalidAssetURL},
		{name: "bad escape", input: "http://example.com/%zz", wantErr: ErrInvalidAssetURL},

		// Unsupported schemes
		{name: "data", input: "data:image/png;base64,AAAA", wantErr: ErrUnsupportedScheme},
		{name: "ftp", input: "ftp://example.com/a.png", wantErr: ErrUnsupportedScheme},
		{name: "javascript", input: "javascript:alert(1)", wantErr: ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetURL(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetURL(%q) error = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetURL(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
