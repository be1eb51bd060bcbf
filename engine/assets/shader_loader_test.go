package assets

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader_Builtin(t *testing.T) {
	for _, name := range []string{"cube.vert", "cube.frag"} {
		src, err := LoadShader(Shaders, name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		assert.True(t, strings.HasSuffix(src, "\x00"), name)
	}

	vert, err := LoadShader(Shaders, "cube.vert")
	require.NoError(t, err)
	for _, u := range []string{"model_matrix", "view_matrix", "projection_matrix", "aspect_ratio"} {
		assert.Contains(t, vert, u)
	}
}

func TestLoadShader_TerminatesOnce(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.glsl":      {Data: []byte("void main() {}")},
		"terminated.glsl": {Data: []byte("void main() {}\x00")},
		"empty.glsl":      {Data: nil},
	}

	src, err := LoadShader(fsys, "plain.glsl")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\x00", src)

	src, err = LoadShader(fsys, "terminated.glsl")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\x00", src)

	src, err = LoadShader(fsys, "empty.glsl")
	require.NoError(t, err)
	assert.Equal(t, "\x00", src)
}

func TestLoadShader_Missing(t *testing.T) {
	_, err := LoadShader(fstest.MapFS{}, "nope.vert")
	assert.ErrorContains(t, err, "nope.vert")
}
