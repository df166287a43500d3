// # internal/resolver/resolver.go
package resolver

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"depgraph/internal/parser"
)

// Resolver maps textual module references and qualified callees to concrete
// files using a pre-built FileIndex. It never reports errors: a reference
// that cannot be mapped is simply unresolved.
type Resolver struct {
	index *FileIndex
}

func New(index *FileIndex) *Resolver {
	return &Resolver{index: index}
}

// ResolveModule maps an import's module text to a file. Precedence:
//  1. module variants (literal; for dotted text also the last segment and
//     the slash-joined form),
//  2. direct candidate paths relative to the source file's directory checked
//     against the normalized-path index,
//  3. basename index lookup with same-directory and first-dotted-segment
//     tie-breaks,
//  4. package-path index lookup with same-directory, same-extension, and
//     directory-distance tie-breaks.
//
// Self-resolution is not filtered here; the caller drops links whose target
// equals the source.
func (r *Resolver) ResolveModule(sourceFile, module string) (string, bool) {
	variants := moduleVariants(module)
	srcNorm := NormalizePath(sourceFile)
	srcDir := path.Dir(srcNorm)
	srcExt := path.Ext(srcNorm)

	for _, v := range variants {
		for _, cand := range directCandidates(srcDir, v, srcExt) {
			if orig, ok := r.index.LookupNormalized(cand); ok {
				return orig, true
			}
		}
	}

	dotted := isDotted(module)
	for _, v := range variants {
		matches := r.index.LookupBasename(v)
		if len(matches) == 0 {
			continue
		}
		if len(matches) == 1 {
			return matches[0], true
		}
		if p, ok := preferSameDir(matches, srcDir); ok {
			return p, true
		}
		if dotted {
			first := strings.ToLower(firstSegment(module, "."))
			for _, m := range matches {
				if pathHasSegment(NormalizePath(m), first) {
					return m, true
				}
			}
		}
		return matches[0], true
	}

	candidates := r.packagePathCandidates(module, variants)
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	}
	if p, ok := preferSameDir(candidates, srcDir); ok {
		return p, true
	}
	if narrowed := filterByExtension(candidates, srcExt); len(narrowed) == 1 {
		return narrowed[0], true
	}
	return closestByDirDistance(candidates, srcDir), true
}

// ResolveCall maps a qualified callee ("mod.fn", "a.b.fn") to the file that
// defines the called function. Only qualified callees are considered;
// candidates come from the basename bucket of the callee's first segment and
// are confirmed against their text content.
func (r *Resolver) ResolveCall(callee string, contents map[string]string) (string, bool) {
	if !strings.Contains(callee, ".") {
		return "", false
	}
	root := parser.CalleeRoot(callee)
	fn := parser.CalleeFunction(callee)

	for _, cand := range r.index.LookupBasename(root) {
		text, ok := contents[cand]
		if !ok {
			continue
		}
		if definesFunction(text, fn) {
			return cand, true
		}
	}
	return "", false
}

// ResolveBase maps a base-class reference to a file through the basename
// index only, preferring a file in the source's directory.
func (r *Resolver) ResolveBase(sourceFile, base string) (string, bool) {
	name := base
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		name = base[idx+1:]
	}
	matches := r.index.LookupBasename(name)
	if len(matches) == 0 {
		return "", false
	}
	if p, ok := preferSameDir(matches, path.Dir(NormalizePath(sourceFile))); ok {
		return p, true
	}
	return matches[0], true
}

func moduleVariants(module string) []string {
	variants := []string{module}
	if isDotted(module) {
		last := module[strings.LastIndex(module, ".")+1:]
		variants = appendUnique(variants, last)
		variants = appendUnique(variants, strings.ReplaceAll(module, ".", "/"))
	}
	return variants
}

// isDotted reports whether the module text is a package-style dotted
// reference. Relative paths ("./util") are not dotted.
func isDotted(module string) bool {
	return strings.Contains(module, ".") && !strings.HasPrefix(module, ".")
}

// directCandidates synthesizes candidate paths relative to the source
// directory: same-extension sibling, variant/index.<ext>, and explicit
// .py/.ts/.js siblings, in that order.
func directCandidates(srcDir, variant, srcExt string) []string {
	v := strings.ReplaceAll(variant, "\\", "/")
	cands := []string{
		path.Join(srcDir, v+srcExt),
		path.Join(srcDir, v, "index"+srcExt),
		path.Join(srcDir, v+".py"),
		path.Join(srcDir, v+".ts"),
		path.Join(srcDir, v+".js"),
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = appendUnique(out, strings.ToLower(c))
	}
	return out
}

// packagePathCandidates builds package-path keys from the dotted-to-slash
// form and from non-relative slash-bearing variants, with scoped-package
// normalization (@scope/pkg tried with and without the scope segment), and
// collects the union of their buckets in first-seen order.
func (r *Resolver) packagePathCandidates(module string, variants []string) []string {
	var keys []string
	if isDotted(module) {
		keys = appendUnique(keys, strings.ReplaceAll(module, ".", "/"))
	}
	for _, v := range variants {
		if !strings.Contains(v, "/") || strings.HasPrefix(v, ".") {
			continue
		}
		keys = appendUnique(keys, v)
		if strings.HasPrefix(v, "@") {
			if idx := strings.Index(v, "/"); idx >= 0 && idx+1 < len(v) {
				keys = appendUnique(keys, v[idx+1:])
			}
		}
	}

	var candidates []string
	seen := make(map[string]bool)
	for _, key := range keys {
		for _, m := range r.index.LookupPackagePath(stripKnownExtension(key)) {
			if !seen[m] {
				seen[m] = true
				candidates = append(candidates, m)
			}
		}
	}
	return candidates
}

func stripKnownExtension(key string) string {
	lower := strings.ToLower(key)
	for _, ext := range parser.KnownExtensions {
		if strings.HasSuffix(lower, ext) {
			return key[:len(key)-len(ext)]
		}
	}
	return key
}

func preferSameDir(candidates []string, srcDir string) (string, bool) {
	for _, c := range candidates {
		if path.Dir(NormalizePath(c)) == srcDir {
			return c, true
		}
	}
	return "", false
}

func filterByExtension(candidates []string, srcExt string) []string {
	var out []string
	for _, c := range candidates {
		if path.Ext(NormalizePath(c)) == srcExt {
			out = append(out, c)
		}
	}
	return out
}

// closestByDirDistance picks the candidate with the fewest directory levels
// of difference from the source directory; ties keep the earlier candidate.
func closestByDirDistance(candidates []string, srcDir string) string {
	best := candidates[0]
	bestDist := dirDistance(path.Dir(NormalizePath(best)), srcDir)
	for _, c := range candidates[1:] {
		if d := dirDistance(path.Dir(NormalizePath(c)), srcDir); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func dirDistance(a, b string) int {
	as := splitSegments(a)
	bs := splitSegments(b)
	common := 0
	for common < len(as) && common < len(bs) && as[common] == bs[common] {
		common++
	}
	return (len(as) - common) + (len(bs) - common)
}

// pathHasSegment reports whether any directory segment of the normalized
// path equals seg. Substring matching would let short segments collide with
// file extensions.
func pathHasSegment(norm, seg string) bool {
	for _, s := range splitSegments(path.Dir(norm)) {
		if s == seg {
			return true
		}
	}
	return false
}

func splitSegments(dir string) []string {
	trimmed := strings.Trim(dir, "/")
	if trimmed == "" || trimmed == "." {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func firstSegment(s, sep string) string {
	if idx := strings.Index(s, sep); idx >= 0 {
		return s[:idx]
	}
	return s
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// definesFunction reports whether the file text contains a definition of fn:
// a def/function declaration, a brace-bodied method, or an arrow-style
// assignment, matched case-insensitively.
func definesFunction(text, fn string) bool {
	q := regexp.QuoteMeta(fn)
	patterns := []string{
		fmt.Sprintf(`(?i)\b(?:def|function)\s+%s\s*\(`, q),
		fmt.Sprintf(`(?i)\b%s\s*\([^)]*\)\s*\{`, q),
		fmt.Sprintf(`(?i)\b%s\s*=\s*(?:async\s+)?(?:\([^)]*\)|[A-Za-z_$][\w$]*)\s*=>`, q),
	}
	for _, p := range patterns {
		if regexp.MustCompile(p).MatchString(text) {
			return true
		}
	}
	return false
}
