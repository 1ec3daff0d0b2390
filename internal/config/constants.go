// Package config holds recognized source-file extensions and the handful
// of global mode flags the rest of the module consults, grounded on
// the conventional layout for a package of build-time constants.
package config

// Version is the current corephp toolchain version.
var Version = "0.1.0"

const SourceFileExt = ".php"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".php", ".php5", ".phtml"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode is a global mode flag. No code in this module sets or reads
// it; diagnostic and AST-dump ordering is the same whatever its value.
var IsTestMode = false

// MaxRecursionDepth bounds Pratt-loop recursion so adversarial input
// (deeply nested parens/unary chains) fails soft with a diagnostic
// instead of overflowing the Go stack.
const MaxRecursionDepth = 2000
