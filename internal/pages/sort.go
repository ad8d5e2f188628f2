package pages

import (
	"sort"

	"github.com/maruel/natural"
)

// Sort method constants
const (
	SortNatural    = 0 // Natural sort order (e.g., p1, p2, p10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Maintain original order (no sort)
)

// SortStrategy defines the interface for different page orderings
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(list []Page) []Page
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// NaturalSortStrategy orders pages by name using maruel/natural
type NaturalSortStrategy struct{}

func (s *NaturalSortStrategy) Sort(list []Page) []Page {
	result := clonePages(list)
	sort.SliceStable(result, func(i, j int) bool {
		return natural.Less(result[i].Name, result[j].Name)
	})
	return result
}

func (s *NaturalSortStrategy) Name() string {
	return "Natural"
}

func (s *NaturalSortStrategy) ID() int {
	return SortNatural
}

// SimpleSortStrategy orders pages lexicographically by name
type SimpleSortStrategy struct{}

func (s *SimpleSortStrategy) Sort(list []Page) []Page {
	result := clonePages(list)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *SimpleSortStrategy) Name() string {
	return "Simple"
}

func (s *SimpleSortStrategy) ID() int {
	return SortSimple
}

// EntryOrderSortStrategy preserves directory or archive order
type EntryOrderSortStrategy struct{}

func (s *EntryOrderSortStrategy) Sort(list []Page) []Page {
	return clonePages(list)
}

func (s *EntryOrderSortStrategy) Name() string {
	return "Entry Order"
}

func (s *EntryOrderSortStrategy) ID() int {
	return SortEntryOrder
}

func clonePages(list []Page) []Page {
	result := make([]Page, len(list))
	copy(result, list)
	return result
}

// GetSortStrategy returns the strategy for a sort method ID. Unknown IDs fall
// back to simple ordering.
func GetSortStrategy(sortMethod int) SortStrategy {
	switch sortMethod {
	case SortNatural:
		return &NaturalSortStrategy{}
	case SortSimple:
		return &SimpleSortStrategy{}
	case SortEntryOrder:
		return &EntryOrderSortStrategy{}
	default:
		return &SimpleSortStrategy{}
	}
}

// GetAllSortStrategies returns all available sort strategies
func GetAllSortStrategies() []SortStrategy {
	return []SortStrategy{
		&NaturalSortStrategy{},
		&SimpleSortStrategy{},
		&EntryOrderSortStrategy{},
	}
}

// SortPages orders list with the given sort method.
func SortPages(list []Page, sortMethod int) []Page {
	return GetSortStrategy(sortMethod).Sort(list)
}
