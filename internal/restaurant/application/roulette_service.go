package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/queroir/api/internal/restaurant/domain"
	"github.com/queroir/api/internal/selection"
)

var (
	// ErrNothingToPick means the chosen pool has no candidates.
	ErrNothingToPick = errors.New("no restaurants in pool")
	ErrUnknownPool   = errors.New("unknown roulette pool")
)

// Pool names a roulette candidate set.
type Pool string

const (
	PoolAll       Pool = "all"
	PoolWantToGo  Pool = "want_to_go"
	PoolFavorites Pool = "favorites"
)

// Pools lists every pool in display order.
var Pools = []Pool{PoolAll, PoolWantToGo, PoolFavorites}

// ParsePool accepts a pool name. Empty input selects PoolAll.
func ParsePool(raw string) (Pool, error) {
	switch p := Pool(strings.TrimSpace(raw)); p {
	case "":
		return PoolAll, nil
	case PoolAll, PoolWantToGo, PoolFavorites:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPool, raw)
	}
}

// Criteria returns the filter that defines the pool.
func (p Pool) Criteria() (selection.Criteria, error) {
	switch p {
	case PoolAll:
		return selection.Criteria{}, nil
	case PoolWantToGo:
		return selection.Criteria{}.WithStatus(domain.StatusWantToGo), nil
	case PoolFavorites:
		return selection.Criteria{}.WithTag(domain.FavoriteTagName), nil
	default:
		return selection.Criteria{}, fmt.Errorf("%w: %q", ErrUnknownPool, string(p))
	}
}

// PoolCount is the candidate count of one pool.
type PoolCount struct {
	Pool  Pool
	Count int
}

// SpinResult is one roulette draw. Restaurant is nil when the pool was empty.
type SpinResult struct {
	Pool       Pool
	Restaurant *domain.Restaurant
	Rotation   float64
	Candidates int
}

type rouletteService struct {
	repo RestaurantRepository
	settings
}

func NewRouletteService(repo RestaurantRepository, opts ...Option) RouletteService {
	return &rouletteService{repo: repo, settings: newSettings(opts)}
}

func (s *rouletteService) Pools(ctx context.Context) ([]PoolCount, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	counts := make([]PoolCount, 0, len(Pools))
	for _, pool := range Pools {
		criteria, _ := pool.Criteria()
		counts = append(counts, PoolCount{Pool: pool, Count: len(selection.Filter(snapshot, criteria))})
	}
	return counts, nil
}

// Spin draws one restaurant from the pool. On an empty pool it returns ErrNothingToPick
// together with a result whose Rotation equals previousRotation.
func (s *rouletteService) Spin(ctx context.Context, pool Pool, previousRotation float64) (SpinResult, error) {
	criteria, err := pool.Criteria()
	if err != nil {
		return SpinResult{}, err
	}
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return SpinResult{}, fmt.Errorf("list restaurants: %w", err)
	}

	candidates := selection.Filter(snapshot, criteria)
	result := SpinResult{Pool: pool, Rotation: previousRotation, Candidates: len(candidates)}

	picked, ok := selection.PickRandom(candidates, s.picker)
	if !ok {
		return result, ErrNothingToPick
	}
	result.Restaurant = &picked
	result.Rotation = selection.SpinRotation(previousRotation, s.angles)
	return result, nil
}
