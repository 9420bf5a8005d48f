package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/queroir/api/internal/restaurant/domain"
	"github.com/queroir/api/internal/selection"
)

type restaurantService struct {
	repo   RestaurantRepository
	dishes DishRepository
	settings
}

func NewRestaurantService(repo RestaurantRepository, dishes DishRepository, opts ...Option) RestaurantService {
	return &restaurantService{repo: repo, dishes: dishes, settings: newSettings(opts)}
}

func (s *restaurantService) List(ctx context.Context, criteria selection.Criteria) ([]domain.Restaurant, int, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list restaurants: %w", err)
	}
	return selection.Filter(snapshot, criteria), len(snapshot), nil
}

func (s *restaurantService) Options(ctx context.Context, status *domain.Status) (Options, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return Options{}, fmt.Errorf("list restaurants: %w", err)
	}
	if status != nil {
		snapshot = selection.Filter(snapshot, selection.Criteria{}.WithStatus(*status))
	}
	return Options{
		Cuisines: selection.DistinctCuisines(snapshot),
		Tags:     selection.DistinctTagNames(snapshot),
	}, nil
}

func (s *restaurantService) Detail(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *restaurantService) Create(ctx context.Context, cmd CreateRestaurantCommand) (*domain.Restaurant, error) {
	status := cmd.Status
	if status == 0 {
		status = domain.StatusWantToGo
	}
	now := s.now()
	restaurant := &domain.Restaurant{
		ID:           s.newID(),
		Name:         strings.TrimSpace(cmd.Name),
		Address:      strings.TrimSpace(cmd.Address),
		CuisineType:  strings.TrimSpace(cmd.CuisineType),
		Status:       status,
		AveragePrice: strings.TrimSpace(cmd.AveragePrice),
		Notes:        cmd.Notes,
		PhotoURL:     cmd.PhotoURL,
		Tags:         s.tagSet(cmd.Tags),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := restaurant.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) Update(ctx context.Context, id string, patch RestaurantPatch) (*domain.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		restaurant.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Address != nil {
		restaurant.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.CuisineType != nil {
		restaurant.CuisineType = strings.TrimSpace(*patch.CuisineType)
	}
	if patch.Status != nil {
		restaurant.Status = *patch.Status
	}
	if patch.AveragePrice != nil {
		restaurant.AveragePrice = strings.TrimSpace(*patch.AveragePrice)
	}
	if patch.Notes != nil {
		restaurant.Notes = *patch.Notes
	}
	if patch.PhotoURL != nil {
		restaurant.PhotoURL = *patch.PhotoURL
	}
	if patch.Tags != nil {
		restaurant.Tags = s.tagSet(*patch.Tags)
	}
	if err := restaurant.Validate(); err != nil {
		return nil, err
	}

	restaurant.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("update restaurant %s: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) ToggleStatus(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	restaurant.Status = restaurant.Status.Toggle()
	restaurant.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("toggle restaurant %s: %w", id, err)
	}
	return restaurant, nil
}

// Delete removes the restaurant together with its dishes.
func (s *restaurantService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.dishes.DeleteByRestaurant(ctx, id); err != nil {
		return fmt.Errorf("delete dishes of %s: %w", id, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete restaurant %s: %w", id, err)
	}
	return nil
}

// tagSet normalizes incoming tags and gives new ones an id.
func (s *restaurantService) tagSet(tags []domain.Tag) domain.TagSet {
	set := domain.NewTagSet(tags)
	for i := range set {
		if set[i].ID == "" {
			set[i].ID = s.newID()
		}
	}
	return set
}
