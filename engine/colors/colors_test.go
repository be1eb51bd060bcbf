package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = Parse("00ffff80")
	require.NoError(t, err)
	assert.Equal(t, Cyan.WithAlpha(128.0/255), c)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestRGB(t *testing.T) {
	rgb := Color{0.1, 0.2, 0.3, 0.4}.RGB()
	assert.Equal(t, float32(0.3), rgb.Z())
}
