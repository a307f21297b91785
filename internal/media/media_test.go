package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImage(t *testing.T) {
	img, err := LoadImage(TypeBackground, "emf")
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestLoadImageErrors(t *testing.T) {
	_, err := LoadImage(Type("eyes"), "default")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = LoadImage(TypeBackground, "missing")
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	c := NewCache()
	a, err := c.Load("background/grid")
	require.NoError(t, err)
	b, err := c.Load("background/grid")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = c.Load("grid")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"emf", "grid"}, Names(TypeBackground))
	assert.Empty(t, Names(Type("nope")))
}
