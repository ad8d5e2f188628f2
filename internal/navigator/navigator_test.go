package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	n := New(3, false)
	req, ok, err := n.Apply(Start{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Request{Seq: 1, Index: 0}, req)
	assert.True(t, n.Loading())

	empty := New(0, false)
	_, ok, err = empty.Apply(Start{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, empty.Loading())
}

func TestNextAndPrevious(t *testing.T) {
	n := New(3, false)

	_, ok, err := n.Apply(Previous{})
	require.NoError(t, err)
	assert.False(t, ok, "previous at 0 is a no-op")
	assert.Equal(t, 0, n.Index())

	for want := 1; want <= 2; want++ {
		req, ok, err := n.Apply(Next{})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, req.Index)
	}

	seq := n.Seq()
	_, ok, err = n.Apply(Next{})
	require.NoError(t, err)
	assert.False(t, ok, "next at the last page is a no-op")
	assert.Equal(t, 2, n.Index())
	assert.Equal(t, seq, n.Seq())

	req, ok, err := n.Apply(Previous{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, req.Index)
}

func TestJumpTo(t *testing.T) {
	n := New(5, false)

	req, ok, err := n.Apply(JumpTo{Index: 4})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, req.Index)

	for _, k := range []int{-1, 5, 100} {
		seq := n.Seq()
		_, ok, err := n.Apply(JumpTo{Index: k})
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.False(t, ok)
		assert.Equal(t, 4, n.Index())
		assert.Equal(t, seq, n.Seq())
	}
}

func TestLoadedClearsLoading(t *testing.T) {
	n := New(3, false)
	first, _, _ := n.Apply(Start{})
	second, _, _ := n.Apply(Next{})

	_, _, err := n.Apply(Loaded{Seq: first.Seq})
	assert.ErrorIs(t, err, ErrStale)
	assert.True(t, n.Loading())

	_, ok, err := n.Apply(Loaded{Seq: second.Seq})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, n.Loading())
}

func TestReload(t *testing.T) {
	n := New(2, false)
	_, _, _ = n.Apply(Next{})

	req, ok, err := n.Apply(Reload{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Request{Seq: 2, Index: 1}, req)

	_, ok, _ = New(0, false).Apply(Reload{})
	assert.False(t, ok)
}

func TestAutoAdvanceFiresOncePerLoad(t *testing.T) {
	n := New(3, true)
	start, _, _ := n.Apply(Start{})
	_, _, err := n.Apply(Loaded{Seq: start.Seq})
	require.NoError(t, err)

	req, ok, err := n.Apply(Scrolled{Offset: 500, Max: 500})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, req.Index)

	for range 10 {
		_, ok, err := n.Apply(Scrolled{Offset: 500, Max: 500})
		require.NoError(t, err)
		assert.False(t, ok, "no further advance while loading")
	}
	assert.Equal(t, 1, n.Index())

	_, _, err = n.Apply(Loaded{Seq: req.Seq})
	require.NoError(t, err)

	req, ok, _ = n.Apply(Scrolled{Offset: 800, Max: 800})
	require.True(t, ok)
	assert.Equal(t, 2, req.Index)
	_, _, _ = n.Apply(Loaded{Seq: req.Seq})

	_, ok, err = n.Apply(Scrolled{Offset: 800, Max: 800})
	require.NoError(t, err)
	assert.False(t, ok, "no advance past the last page")
}

func TestScrolledIgnored(t *testing.T) {
	tests := []struct {
		name     string
		autoNext bool
		ev       Scrolled
	}{
		{"auto-advance off", false, Scrolled{Offset: 100, Max: 100}},
		{"not at bottom", true, Scrolled{Offset: 99, Max: 100}},
		{"content fits viewport", true, Scrolled{Offset: 0, Max: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(3, tt.autoNext)
			start, _, _ := n.Apply(Start{})
			_, _, _ = n.Apply(Loaded{Seq: start.Seq})

			_, ok, err := n.Apply(tt.ev)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, 0, n.Index())
		})
	}
}

func TestIndexStaysInRange(t *testing.T) {
	n := New(4, true)
	events := []Event{
		Start{}, Previous{}, Next{}, Next{}, Next{}, Next{}, Next{},
		JumpTo{Index: 9}, Previous{}, JumpTo{Index: 0}, Previous{},
		Scrolled{Offset: 1, Max: 1}, Reload{},
	}
	for _, ev := range events {
		_, _, _ = n.Apply(ev)
		assert.GreaterOrEqual(t, n.Index(), 0)
		assert.Less(t, n.Index(), n.Count())
	}
}
