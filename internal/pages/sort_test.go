package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPages() []Page {
	return []Page{
		{Name: "01.png"},
		{Name: "04.jpg"},
		{Name: "08.png"},
		{Name: "09.png"},
		{Name: "2.png"},
		{Name: "10.png"},
	}
}

func TestSortStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy SortStrategy
		id       int
		label    string
		want     []string
	}{
		{
			name:     "natural",
			strategy: &NaturalSortStrategy{},
			id:       SortNatural,
			label:    "Natural",
			want:     []string{"01.png", "2.png", "04.jpg", "08.png", "09.png", "10.png"},
		},
		{
			name:     "simple",
			strategy: &SimpleSortStrategy{},
			id:       SortSimple,
			label:    "Simple",
			want:     []string{"01.png", "04.jpg", "08.png", "09.png", "10.png", "2.png"},
		},
		{
			name:     "entry order",
			strategy: &EntryOrderSortStrategy{},
			id:       SortEntryOrder,
			label:    "Entry Order",
			want:     []string{"01.png", "04.jpg", "08.png", "09.png", "2.png", "10.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.strategy.ID())
			assert.Equal(t, tt.label, tt.strategy.Name())

			input := testPages()
			original := testPages()
			result := tt.strategy.Sort(input)

			assert.Equal(t, tt.want, Names(result))
			assert.Equal(t, original, input, "input slice must not be modified")
		})
	}
}

func TestGetSortStrategy(t *testing.T) {
	assert.Equal(t, SortNatural, GetSortStrategy(SortNatural).ID())
	assert.Equal(t, SortSimple, GetSortStrategy(SortSimple).ID())
	assert.Equal(t, SortEntryOrder, GetSortStrategy(SortEntryOrder).ID())
	assert.Equal(t, SortSimple, GetSortStrategy(999).ID(), "unknown IDs fall back to simple")
	assert.Len(t, GetAllSortStrategies(), 3)
}

func TestSortStrategyEdgeCases(t *testing.T) {
	for _, strategy := range GetAllSortStrategies() {
		t.Run(strategy.Name(), func(t *testing.T) {
			assert.Empty(t, strategy.Sort(nil))

			single := strategy.Sort([]Page{{Name: "only.png"}})
			assert.Equal(t, []string{"only.png"}, Names(single))

			same := strategy.Sort([]Page{{Name: "a.png", Path: "x/a.png"}, {Name: "a.png", Path: "y/a.png"}})
			assert.Len(t, same, 2)
		})
	}
}
