package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestDiscoverPayloads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.yaml"))
	touch(t, filepath.Join(dir, "a.json"))
	touch(t, filepath.Join(dir, "nested", "c.YML"))
	touch(t, filepath.Join(dir, "notes.txt"))
	single := filepath.Join(dir, "a.json")

	t.Run("directory is walked and sorted", func(t *testing.T) {
		t.Parallel()

		got, err := discoverPayloads([]string{dir})
		if err != nil {
			t.Fatalf("discoverPayloads() error = %v", err)
		}
		want := []string{
			filepath.Join(dir, "a.json"),
			filepath.Join(dir, "b.yaml"),
			filepath.Join(dir, "nested", "c.YML"),
		}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("duplicates removed", func(t *testing.T) {
		t.Parallel()

		got, err := discoverPayloads([]string{single, dir})
		if err != nil {
			t.Fatalf("discoverPayloads() error = %v", err)
		}
		if len(got) != 3 || got[0] != single {
			t.Errorf("got %v, want the single file first and no duplicates", got)
		}
	})

	t.Run("no args", func(t *testing.T) {
		t.Parallel()

		if _, err := discoverPayloads(nil); !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverPayloads([]string{filepath.Join(dir, "notes.txt")})
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverPayloads([]string{filepath.Join(dir, "missing.json")})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		_, err := discoverPayloads([]string{t.TempDir()})
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 8} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, 9} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	in := filepath.Join("data", "q1.json")

	tests := []struct {
		name      string
		output    string
		configDir string
		title     string
		want      string
	}{
		{
			name:   "explicit pdf file",
			output: filepath.Join("out", "report.PDF"),
			title:  "ignored",
			want:   filepath.Join("out", "report.PDF"),
		},
		{
			name:   "output directory",
			output: "out",
			title:  "季度報告.pdf",
			want:   filepath.Join("out", "季度報告-分析結果.pdf"),
		},
		{
			name:      "config directory",
			configDir: "reports",
			title:     "q1.pptx",
			want:      filepath.Join("reports", "q1-分析結果.pdf"),
		},
		{
			name:  "next to payload",
			title: "deck.pdf",
			want:  filepath.Join("data", "deck-分析結果.pdf"),
		},
		{
			name: "title falls back to payload name",
			want: filepath.Join("data", "q1-分析結果.pdf"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.output, tt.configDir, in, tt.title)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
