// Package utils holds the small file-path helpers the pipeline uses to
// turn a source path into the display name diagnostics need, and to
// resolve include/require paths relative to a source file's directory.
package utils

import (
	"path/filepath"

	"github.com/gophp-lang/corephp/internal/config"
)

// ResolveIncludePath resolves an include/require path relative to a base
// directory when it is written relative (starting with `.`); an absolute
// or namespaced path is returned unchanged. Used by callers that want to
// locate the file an IncludeExpr names — the core itself never reads it.
func ResolveIncludePath(baseDir, includePath string) string {
	if len(includePath) > 0 && includePath[0] == '.' {
		if baseDir != "." && baseDir != "" {
			return filepath.Join(baseDir, includePath)
		}
	}
	return includePath
}

// ExtractFileName derives the display name a pipeline.Context stamps onto
// its diagnostics: the base filename with any recognized source
// extension trimmed.
func ExtractFileName(path string) string {
	name := filepath.Base(path)
	return config.TrimSourceExt(name)
}

// ContainingDir returns the directory a path's includes should resolve
// against: the file's own directory if path names a source file, or path
// itself if it already names a directory.
func ContainingDir(path string) string {
	if config.HasSourceExt(path) {
		return filepath.Dir(path)
	}
	return path
}
