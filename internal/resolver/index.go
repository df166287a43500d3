// # internal/resolver/index.go
package resolver

import (
	"path"
	"strings"

	"depgraph/internal/shared/util"
)

// FileIndex holds the per-run lookup structures derived from the file set.
// It is built once per analysis, read-only afterwards, and discarded at the
// end of the run. Build cost is O(total path length).
type FileIndex struct {
	// Case-folded, extension-stripped basename -> original paths.
	byBasename map[string][]string
	// Normalized (forward-slash, lowercase) path -> original path.
	byNormalized map[string]string
	// Case-folded "dir-suffix/basename" package-path key -> original paths.
	// One entry per suffix of each path's directory-segment sequence, so a
	// dotted import like a.b.c can match any directory suffix.
	byPackagePath map[string][]string
}

// BuildIndex derives a FileIndex from the full file set. Pure function of
// the path list; the same list always yields the same lookup results.
func BuildIndex(files []string) *FileIndex {
	idx := &FileIndex{
		byBasename:    make(map[string][]string),
		byNormalized:  make(map[string]string, len(files)),
		byPackagePath: make(map[string][]string),
	}

	for _, file := range files {
		norm := NormalizePath(file)
		idx.byNormalized[norm] = file

		base := stripExtension(path.Base(norm))
		idx.byBasename[base] = append(idx.byBasename[base], file)

		dir := path.Dir(norm)
		if dir == "." || dir == "/" {
			continue
		}
		segments := strings.Split(strings.Trim(dir, "/"), "/")
		for i := range segments {
			key := strings.Join(segments[i:], "/") + "/" + base
			idx.byPackagePath[key] = append(idx.byPackagePath[key], file)
		}
	}

	return idx
}

// LookupBasename returns every path whose extension-stripped basename
// matches name (case-folded).
func (x *FileIndex) LookupBasename(name string) []string {
	return x.byBasename[strings.ToLower(name)]
}

// LookupNormalized maps a normalized path back to its original form.
func (x *FileIndex) LookupNormalized(norm string) (string, bool) {
	orig, ok := x.byNormalized[norm]
	return orig, ok
}

// LookupPackagePath returns the bucket for a case-folded package-path key.
func (x *FileIndex) LookupPackagePath(key string) []string {
	return x.byPackagePath[strings.ToLower(key)]
}

// NormalizePath lower-cases a path and normalizes its separators so index
// hits are case- and separator-insensitive.
func NormalizePath(p string) string {
	return strings.ToLower(util.NormalizePatternPath(p))
}

func stripExtension(name string) string {
	if idx := strings.LastIndex(name, "."); idx > 0 {
		return name[:idx]
	}
	return name
}
