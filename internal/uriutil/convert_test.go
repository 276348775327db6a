package uriutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathToURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX paths")
	}
	tests := map[string]string{
		"/home/user/project":      "file:///home/user/project",
		"/":                       "file:///",
		"/home/user/my project":   "file:///home/user/my%20project",
		"/home/user/文件":           "file:///home/user/%E6%96%87%E4%BB%B6",
		"/work/src/page.html":     "file:///work/src/page.html",
		"/work/a/../b/style.scss": "file:///work/b/style.scss",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, PathToURI(path))
		})
	}
}

func TestURIToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX paths")
	}
	tests := map[string]string{
		"file:///home/user/project":            "/home/user/project",
		"file:///home/user/my%20project":       "/home/user/my project",
		"file:///home/user/%E6%96%87%E4%BB%B6": "/home/user/文件",
		"file://localhost/etc/app.css":         "/etc/app.css",
		"file:///C:/proj/index.html":           "C:/proj/index.html",
		"/already/a/path":                      "/already/a/path",
		"untitled:Untitled-1":                  "untitled:Untitled-1",
	}
	for uri, want := range tests {
		t.Run(uri, func(t *testing.T) {
			assert.Equal(t, want, URIToPath(uri))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX paths")
	}
	for _, path := range []string{"/a/b c/d.vue", "/x/ü.css", "/"} {
		assert.Equal(t, path, URIToPath(PathToURI(path)))
	}
}
