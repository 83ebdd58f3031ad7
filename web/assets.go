// Package web provides the embedded browser client for production builds.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFS embed.FS

// StaticFS returns the embedded client filesystem rooted at its index page,
// suitable for http.FileServerFS.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time; this cannot
		// fail at runtime.
		panic(err)
	}
	return sub
}
