package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollClamps(t *testing.T) {
	v := New(75)
	v.SetViewport(400)
	v.SetContent(1000)

	assert.Equal(t, 600, v.Max())
	assert.False(t, v.ScrollBy(-10), "already at the top")
	assert.True(t, v.Step(2))
	assert.Equal(t, 150, v.Offset())

	assert.True(t, v.Page(1))
	assert.Equal(t, 550, v.Offset())
	assert.False(t, v.AtBottom())

	assert.True(t, v.Step(1))
	assert.Equal(t, 600, v.Offset())
	assert.True(t, v.AtBottom())
	assert.False(t, v.Step(1))

	assert.True(t, v.Page(-5))
	assert.Equal(t, 0, v.Offset())
}

func TestScrollContentShorterThanViewport(t *testing.T) {
	v := New(75)
	v.SetViewport(400)
	v.SetContent(300)

	assert.Equal(t, 0, v.Max())
	assert.False(t, v.Step(3))
	assert.False(t, v.AtBottom())
}

func TestScrollReclampsOnResize(t *testing.T) {
	v := New(50)
	v.SetViewport(100)
	v.SetContent(500)
	v.ScrollBy(400)
	assert.Equal(t, 400, v.Offset())

	v.SetViewport(300)
	assert.Equal(t, 200, v.Offset())

	v.SetContent(0)
	assert.Equal(t, 0, v.Offset())

	v.SetContent(500)
	v.ScrollBy(100)
	v.Reset()
	assert.Equal(t, 0, v.Offset())
}

func TestNewClampsStep(t *testing.T) {
	v := New(0)
	v.SetViewport(10)
	v.SetContent(20)
	assert.True(t, v.Step(1))
	assert.Equal(t, 1, v.Offset())
}
