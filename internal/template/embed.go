package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// Root prefixes inside the template filesystem.
const (
	StaticRoot = "web/static"
	RenderRoot = "web/render"
)

// Embedded returns the built-in template tree rooted so that paths start
// with "web/".
func Embedded() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
