package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// exportTarget resolves the snapshot format and output path. An empty format
// is taken from the path's extension; an empty path is named after the
// format.
func exportTarget(format, path string) (string, string, error) {
	f := strings.ToLower(format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if path == "" {
			f = "svg"
		}
	}
	if f != "svg" && f != "png" {
		return "", "", fmt.Errorf("unknown format: %q (want svg or png)", f)
	}
	if path == "" {
		path = "scene." + f
	}
	return f, path, nil
}
