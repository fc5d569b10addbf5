package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
// A missing file is an error here; an empty file still loads and is
// rejected later by the compiler, so it can never reach a bindable program.
func LoadShader(name string) (string, error) {
	path := filepath.Join("assets", "shaders", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadShaderPair reads the vertex and fragment sources for one program.
func LoadShaderPair(vertName, fragName string) (vs, fs string, err error) {
	vs, err = LoadShader(vertName)
	if err != nil {
		return "", "", err
	}
	fs, err = LoadShader(fragName)
	if err != nil {
		return "", "", err
	}
	return vs, fs, nil
}
