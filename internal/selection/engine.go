package selection

import (
	"math/rand/v2"
	"slices"

	"github.com/queroir/api/internal/restaurant/domain"
)

// RandomSource draws an index uniformly from [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is the non-deterministic source used when callers pass nil.
var DefaultSource RandomSource = globalSource{}

// Filter returns the records matching c in their original order.
// The result is a new slice and is never nil.
func Filter(records []domain.Restaurant, c Criteria) []domain.Restaurant {
	result := make([]domain.Restaurant, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}

// PickRandom returns one record chosen uniformly at random.
// The boolean is false when records is empty.
func PickRandom(records []domain.Restaurant, rng RandomSource) (domain.Restaurant, bool) {
	if len(records) == 0 {
		return domain.Restaurant{}, false
	}
	if rng == nil {
		rng = DefaultSource
	}
	return records[rng.IntN(len(records))], true
}

// DistinctCuisines lists the cuisine types present, deduplicated and sorted ascending.
func DistinctCuisines(records []domain.Restaurant) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, r := range records {
		if r.CuisineType == "" {
			continue
		}
		if _, ok := seen[r.CuisineType]; ok {
			continue
		}
		seen[r.CuisineType] = struct{}{}
		result = append(result, r.CuisineType)
	}
	slices.Sort(result)
	return result
}

// DistinctTagNames lists every tag name present, deduplicated and sorted ascending.
func DistinctTagNames(records []domain.Restaurant) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, r := range records {
		for _, name := range r.Tags.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}
	slices.Sort(result)
	return result
}
