// Package uriutil converts between file:// URIs and file system paths.
package uriutil

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathToURI converts a file system path to a file:// URI. Relative paths are
// made absolute; segments are percent-encoded; Windows drive paths gain a
// leading slash (file:///C:/proj) and UNC paths keep their host
// (file://server/share).
func PathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	u := url.URL{Scheme: "file"}
	if runtime.GOOS == "windows" && strings.HasPrefix(path, `\\`) {
		host, rest, _ := strings.Cut(strings.TrimPrefix(path, `\\`), `\`)
		u.Host = host
		u.Path = "/" + filepath.ToSlash(rest)
		return u.String()
	}

	u.Path = filepath.ToSlash(path)
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

// URIToPath converts a file:// URI to a file system path. Strings that are
// not file URIs are returned with any file:// prefix removed.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return fromSlash(strings.TrimPrefix(uri, "file://"))
	}

	if parsed.Host != "" && parsed.Host != "localhost" {
		if runtime.GOOS == "windows" {
			return `\\` + parsed.Host + filepath.FromSlash(parsed.Path)
		}
		return parsed.Host + parsed.Path
	}
	return fromSlash(parsed.Path)
}

// fromSlash drops the slash before a drive letter (/C:/proj) and converts
// to OS separators
func fromSlash(path string) string {
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}
