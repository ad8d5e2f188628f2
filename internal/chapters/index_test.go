package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexFor(t *testing.T) {
	tests := []struct {
		name                string
		ordinal, eps, pages int
		want                int
	}{
		{"first episode", 0, 10, 100, 0},
		{"last episode", 9, 10, 100, 99},
		{"middle", 5, 11, 101, 50},
		{"fewer pages than episodes", 2, 5, 3, 1},
		{"single episode", 0, 1, 50, 0},
		{"no episodes", 0, 0, 50, 0},
		{"single page", 3, 4, 1, 0},
		{"no pages", 0, 3, 0, NoThumbnail},
		{"ordinal past end clamps", 12, 10, 100, 99},
		{"negative ordinal clamps", -1, 10, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexFor(tt.ordinal, tt.eps, tt.pages))
		})
	}
}

func TestIndexForRoundsHalfAwayFromZero(t *testing.T) {
	// 1 * (2-1) / (3-1) = 0.5
	assert.Equal(t, 1, IndexFor(1, 3, 2))
	// 1 * (3-1) / (5-1) = 0.5
	assert.Equal(t, 1, IndexFor(1, 5, 3))
	// 3 * (3-1) / (5-1) = 1.5
	assert.Equal(t, 2, IndexFor(3, 5, 3))
	// 1 * (4-1) / (7-1) = 0.5
	assert.Equal(t, 1, IndexFor(1, 7, 4))
	// just below a tie rounds down: 1 * 4 / 9 = 0.44
	assert.Equal(t, 0, IndexFor(1, 10, 5))
}

func TestIndexForProperties(t *testing.T) {
	for eps := 1; eps <= 30; eps++ {
		for pages := 1; pages <= 40; pages++ {
			prev := 0
			for o := 0; o < eps; o++ {
				got := IndexFor(o, eps, pages)
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, pages)
				assert.GreaterOrEqual(t, got, prev, "not monotonic at E=%d P=%d o=%d", eps, pages, o)
				prev = got
			}
			assert.Equal(t, 0, IndexFor(0, eps, pages))
			if eps > 1 {
				assert.Equal(t, pages-1, IndexFor(eps-1, eps, pages))
			}
		}
	}
}
