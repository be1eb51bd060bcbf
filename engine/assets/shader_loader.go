package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed shaders
var builtin embed.FS

// Shaders holds the GLSL sources shipped with the engine.
var Shaders fs.FS = mustSub(builtin, "shaders")

// LoadShader reads a GLSL file from fsys into a null-terminated string for OpenGL.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Strs
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
