package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrNoCJKFont indicates that no installed font covers Traditional Chinese.
var ErrNoCJKFont = errors.New("no CJK font found")

// cjkFiles are the font files tried, by base name, in order of preference.
// Traditional Chinese faces come before Simplified and Japanese ones.
var cjkFiles = []string{
	"NotoSansTC-Regular.otf",
	"NotoSansTC-Regular.ttf",
	"NotoSansTC[wght].ttf",
	"NotoSansCJKtc-Regular.otf",
	"NotoSansCJK-Regular.ttc",
	"NotoSansCJK.ttc",
	"PingFang.ttc",
	"msjh.ttc",
	"msjh.ttf",
	"STHeiti Medium.ttc",
	"STHeiti Light.ttc",
	"NotoSansCJKsc-Regular.otf",
	"NotoSansSC-Regular.otf",
	"wqy-microhei.ttc",
	"wqy-zenhei.ttc",
	"msyh.ttc",
	"DroidSansFallbackFull.ttf",
}

// cjkFamilies are the preferred faces inside a font collection.
var cjkFamilies = []string{
	"Noto Sans TC",
	"Noto Sans CJK TC",
	"PingFang TC",
	"Microsoft JhengHei",
	"Heiti TC",
}

// cjkProbe holds runes every report draws in its fixed headings.
const cjkProbe = "第頁摘要"

// SystemCJK returns the first installed CJK font, or nil when there is none.
// The font directories are searched once per process.
var SystemCJK = sync.OnceValue(func() *sfnt.Font {
	f, _, err := FindCJK(FontDirs())
	if err != nil {
		return nil
	}
	return f
})

// FontDirs returns the system and per-user font directories for this OS.
func FontDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string
	switch runtime.GOOS {
	case "darwin":
		dirs = []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	case "windows":
		dirs = []string{
			filepath.Join(os.Getenv("WINDIR"), "Fonts"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts"),
		}
	default:
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		dirs = []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(dataHome, "fonts"),
			filepath.Join(home, ".fonts"),
		}
	}
	return dirs
}

// FindCJK walks dirs for the known CJK font files and returns the first one
// that parses and has glyphs for the report headings, with its path.
func FindCJK(dirs []string) (*sfnt.Font, string, error) {
	found := make(map[string]string)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		// Unreadable directories are skipped.
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			key := strings.ToLower(d.Name())
			if _, ok := found[key]; !ok {
				found[key] = path
			}
			return nil
		})
	}

	for _, name := range cjkFiles {
		path, ok := found[strings.ToLower(name)]
		if !ok {
			continue
		}
		if f, err := loadCJK(path); err == nil {
			return f, path, nil
		}
	}
	return nil, "", ErrNoCJKFont
}

// loadCJK parses a font file or collection and picks a face covering the
// probe runes, preferring the Traditional Chinese families.
func loadCJK(path string) (*sfnt.Font, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from a font directory walk
	if err != nil {
		return nil, err
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var buf sfnt.Buffer
	var first *sfnt.Font
	for i := range coll.NumFonts() {
		f, err := coll.Font(i)
		if err != nil || !covers(f, &buf, cjkProbe) {
			continue
		}
		family, _ := f.Name(&buf, sfnt.NameIDFamily)
		if slices.Contains(cjkFamilies, family) {
			return f, nil
		}
		if first == nil {
			first = f
		}
	}
	if first == nil {
		return nil, fmt.Errorf("%w: %s lacks the required glyphs", ErrNoCJKFont, path)
	}
	return first, nil
}

func covers(f *sfnt.Font, buf *sfnt.Buffer, s string) bool {
	for _, r := range s {
		idx, err := f.GlyphIndex(buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}
