// Package config carries version information, recognized file extensions,
// and the fixed vocabulary tables the lexer, parser, and suggester share.
package config

// Version is the current tonto-lint version.
var Version = "0.1.0"

const SourceFileExt = ".tonto"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".tonto"}

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
