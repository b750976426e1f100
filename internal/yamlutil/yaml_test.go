package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-reportpdf/internal/yamlutil"
)

type testDoc struct {
	Title    string   `yaml:"document_title"`
	Pages    int      `yaml:"total_pages"`
	Keywords []string `yaml:"aggregated_keywords"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    testDoc
	}{
		{
			name: "valid YAML",
			data: []byte("document_title: 年報\ntotal_pages: 3\naggregated_keywords: [營收, 毛利]"),
			dest: &testDoc{},
			want: testDoc{Title: "年報", Pages: 3, Keywords: []string{"營收", "毛利"}},
		},
		{
			name: "JSON is accepted",
			data: []byte(`{"document_title": "report", "total_pages": 2}`),
			dest: &testDoc{},
			want: testDoc{Title: "report", Pages: 2},
		},
		{
			name: "unknown fields ignored",
			data: []byte("document_title: x\nextra: 1"),
			dest: &testDoc{},
			want: testDoc{Title: "x"},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testDoc{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("document_title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := *tt.dest.(*testDoc)
			if got.Title != tt.want.Title || got.Pages != tt.want.Pages || strings.Join(got.Keywords, ",") != strings.Join(tt.want.Keywords, ",") {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshal_SyntaxErrorIsWrapped(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.Unmarshal([]byte("document_title: [unclosed"), &doc)
	if err == nil || !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %v, want yamlutil-prefixed error", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var doc testDoc
	if err := yamlutil.UnmarshalStrict([]byte("document_title: x\nextra: 1"), &doc); err == nil {
		t.Error("UnmarshalStrict() accepted an unknown field")
	}
	if err := yamlutil.UnmarshalStrict([]byte("document_title: x"), &doc); err != nil {
		t.Errorf("UnmarshalStrict() error = %v", err)
	}
}

func TestUnmarshalDocument(t *testing.T) {
	t.Parallel()

	t.Run("accepts documents over the config limit", func(t *testing.T) {
		t.Parallel()

		kw := strings.Repeat("k", 1<<20)
		data := []byte(`{"document_title": "big", "aggregated_keywords": ["` + kw + `"]}`)
		var doc testDoc
		if err := yamlutil.UnmarshalDocument(data, &doc); err != nil {
			t.Fatalf("UnmarshalDocument() error = %v", err)
		}
		if doc.Title != "big" || len(doc.Keywords) != 1 {
			t.Errorf("got %+v", doc.Title)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := yamlutil.UnmarshalDocument(nil, &doc); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})
}

// Note: modifies the global MaxInputSize, so it does not run in parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })
	yamlutil.MaxInputSize = 50

	data := make([]byte, 100)
	copy(data, "document_title: x")
	var doc testDoc

	err := yamlutil.Unmarshal(data, &doc)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "100 bytes") || !strings.Contains(msg, "max 50") {
		t.Errorf("error should report sizes, got: %s", msg)
	}
	if err := yamlutil.UnmarshalStrict(data, &doc); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict error = %v, want ErrInputTooLarge", err)
	}
}
