package texture

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// rank orders formats sharing a stem. Formats with an alpha channel win.
var rank = map[string]int{
	".tga":  4,
	".png":  3,
	".webp": 2,
	".bmp":  1,
	".jpg":  0,
	".jpeg": 0,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans dir recursively for supported texture files. A missing
// dir yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		stem := stemOf(path)
		ext := strings.ToLower(filepath.Ext(path))

		existing, exists := idx.entries[stem]
		if !exists || rank[ext] > rank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// An existing file path is returned as-is; otherwise the name's stem is looked
// up, so "textures\\crate.jpg" finds crate.tga.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	if texName == "" {
		return "", false
	}
	if info, err := os.Stat(texName); err == nil && !info.IsDir() && Supported(texName) {
		return texName, true
	}
	path, ok := idx.entries[stemOf(strings.ReplaceAll(texName, "\\", "/"))]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
