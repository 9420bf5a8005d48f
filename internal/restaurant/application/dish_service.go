package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/queroir/api/internal/restaurant/domain"
)

type dishService struct {
	restaurants RestaurantRepository
	repo        DishRepository
	settings
}

func NewDishService(restaurants RestaurantRepository, repo DishRepository, opts ...Option) DishService {
	return &dishService{restaurants: restaurants, repo: repo, settings: newSettings(opts)}
}

func (s *dishService) List(ctx context.Context) ([]domain.Dish, error) {
	dishes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (s *dishService) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	dishes, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list dishes of %s: %w", restaurantID, err)
	}
	return dishes, nil
}

// Add records a dish. Only restaurants already visited accept dishes.
func (s *dishService) Add(ctx context.Context, cmd AddDishCommand) (*domain.Dish, error) {
	restaurant, err := s.restaurants.FindByID(ctx, cmd.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.Visited() {
		return nil, domain.ErrDishRequiresVisit
	}

	dish := &domain.Dish{
		ID:           s.newID(),
		RestaurantID: restaurant.ID,
		Name:         strings.TrimSpace(cmd.Name),
		Notes:        cmd.Notes,
		PhotoURL:     cmd.PhotoURL,
		CreatedAt:    s.now(),
	}
	if cmd.Rating != nil {
		rating, err := domain.NewRating(*cmd.Rating)
		if err != nil {
			return nil, err
		}
		dish.Rating = &rating
	}
	if err := dish.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, dish); err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}
	return dish, nil
}
