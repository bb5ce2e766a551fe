package catalog

import (
	"embed"
	"io/fs"
)

//go:embed data/exercises.json
var bundledData embed.FS

// Bundled is the catalog compiled into the binary, used as the last source
// in the fallback chain.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundledData, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
