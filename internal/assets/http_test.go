package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("payload"))
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 128))
	})
	mux.HandleFunc("/boom", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher(5*time.Second, 64).WithClient(srv.Client())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "ok", path: "/ok", want: "payload"},
		{name: "not found", path: "/missing", wantErr: ErrAssetNotFound},
		{name: "server error", path: "/boom", wantErr: ErrHTTPStatus},
		{name: "over byte cap", path: "/big", wantErr: ErrAssetTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := f.Fetch(context.Background(), srv.URL+tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Fetch() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Fetch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPFetcher_Defaults(t *testing.T) {
	t.Parallel()

	f := NewHTTPFetcher(0, 0)
	if f.maxBytes != DefaultMaxBytes {
		t.Errorf("maxBytes = %d, want %d", f.maxBytes, DefaultMaxBytes)
	}
	if f.client.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", f.client.Timeout, DefaultTimeout)
	}
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPFetcher(0, 0).Fetch(context.Background(), "")
	if !errors.Is(err, ErrInvalidAssetURL) {
		t.Errorf("Fetch(\"\") error = %v, want ErrInvalidAssetURL", err)
	}
}

func TestHTTPFetcher_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher(0, 0).WithClient(srv.Client()).Fetch(ctx, srv.URL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}
