package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/queroir/api/internal/restaurant/domain"
	"github.com/queroir/api/internal/selection"
)

// RestaurantRepository is the store port for restaurants.
// Implementations return domain.ErrNotFound for unknown ids.
type RestaurantRepository interface {
	// List returns every restaurant ordered by CreatedAt descending.
	List(ctx context.Context) ([]domain.Restaurant, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
}

// DishRepository is the store port for dishes.
type DishRepository interface {
	// List returns every dish ordered by CreatedAt descending.
	List(ctx context.Context) ([]domain.Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	Create(ctx context.Context, dish *domain.Dish) error
	DeleteByRestaurant(ctx context.Context, restaurantID string) error
}

// RestaurantService describes restaurant use-cases.
type RestaurantService interface {
	List(ctx context.Context, criteria selection.Criteria) ([]domain.Restaurant, int, error)
	Options(ctx context.Context, status *domain.Status) (Options, error)
	Detail(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, cmd CreateRestaurantCommand) (*domain.Restaurant, error)
	Update(ctx context.Context, id string, patch RestaurantPatch) (*domain.Restaurant, error)
	ToggleStatus(ctx context.Context, id string) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

// DishService describes dish use-cases.
type DishService interface {
	List(ctx context.Context) ([]domain.Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	Add(ctx context.Context, cmd AddDishCommand) (*domain.Dish, error)
}

// RouletteService describes the "decide for me" use-cases.
type RouletteService interface {
	Pools(ctx context.Context) ([]PoolCount, error)
	Spin(ctx context.Context, pool Pool, previousRotation float64) (SpinResult, error)
}

// Options are the filter menus derived from the current snapshot.
type Options struct {
	Cuisines []string
	Tags     []string
}

// CreateRestaurantCommand carries input for a new restaurant.
// A zero Status means WantToGo.
type CreateRestaurantCommand struct {
	Name         string
	Address      string
	CuisineType  string
	Status       domain.Status
	AveragePrice string
	Notes        string
	PhotoURL     string
	Tags         []domain.Tag
}

// RestaurantPatch is a partial update; nil fields stay unchanged.
type RestaurantPatch struct {
	Name         *string
	Address      *string
	CuisineType  *string
	Status       *domain.Status
	AveragePrice *string
	Notes        *string
	PhotoURL     *string
	Tags         *[]domain.Tag
}

// AddDishCommand carries input for a new dish.
type AddDishCommand struct {
	RestaurantID string
	Name         string
	Rating       *int
	Notes        string
	PhotoURL     string
}

// Option tweaks service collaborators. Tests use it to pin time, ids and randomness.
type Option func(*settings)

type settings struct {
	now    func() time.Time
	newID  func() string
	picker selection.RandomSource
	angles selection.AngleSource
}

func newSettings(opts []Option) settings {
	s := settings{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithIDGenerator replaces UUID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *settings) { s.newID = newID }
}

// WithRandomSource fixes the source that decides the roulette outcome.
func WithRandomSource(src selection.RandomSource) Option {
	return func(s *settings) { s.picker = src }
}

// WithAngleSource fixes the source of the cosmetic wheel angle.
func WithAngleSource(src selection.AngleSource) Option {
	return func(s *settings) { s.angles = src }
}
