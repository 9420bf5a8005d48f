package main

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/queroir/api/internal/restaurant/application"
	"github.com/queroir/api/internal/restaurant/domain"
	"github.com/queroir/api/internal/selection"
)

type fixtureFile struct {
	Restaurants []restaurantFixture `yaml:"restaurants"`
}

type restaurantFixture struct {
	Name         string        `yaml:"name"`
	Address      string        `yaml:"address"`
	CuisineType  string        `yaml:"cuisine_type"`
	Status       string        `yaml:"status"`
	AveragePrice string        `yaml:"average_price"`
	Notes        string        `yaml:"notes"`
	PhotoURL     string        `yaml:"photo_url"`
	Tags         []tagFixture  `yaml:"tags"`
	Dishes       []dishFixture `yaml:"dishes"`
	status       domain.Status
}

type tagFixture struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type dishFixture struct {
	Name   string `yaml:"name"`
	Rating *int   `yaml:"rating"`
	Notes  string `yaml:"notes"`
}

// parseFixtures decodes and checks fixtures before anything is written.
func parseFixtures(data []byte) (fixtureFile, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fixtureFile{}, fmt.Errorf("parse fixtures: %w", err)
	}
	if len(file.Restaurants) == 0 {
		return fixtureFile{}, errors.New("fixtures contain no restaurants")
	}

	var errs []error
	for i := range file.Restaurants {
		r := &file.Restaurants[i]
		r.status = domain.StatusWantToGo
		if r.Status != "" {
			status, err := domain.ParseStatus(r.Status)
			if err != nil {
				errs = append(errs, fmt.Errorf("restaurant %d (%s): %w", i, r.Name, err))
				continue
			}
			r.status = status
		}
		if len(r.Dishes) > 0 && r.status != domain.StatusBeenThere {
			errs = append(errs, fmt.Errorf("restaurant %d (%s): %w", i, r.Name, domain.ErrDishRequiresVisit))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fixtureFile{}, err
	}
	return file, nil
}

type seeder struct {
	restaurants application.RestaurantService
	dishes      application.DishService
}

type seedSummary struct {
	restaurants int
	dishes      int
}

func newSeeder(restaurants application.RestaurantService, dishes application.DishService) *seeder {
	return &seeder{restaurants: restaurants, dishes: dishes}
}

// dropAll deletes every restaurant; dishes go with them.
func (s *seeder) dropAll(ctx context.Context) (int, error) {
	existing, _, err := s.restaurants.List(ctx, selection.Criteria{})
	if err != nil {
		return 0, err
	}
	for _, r := range existing {
		if err := s.restaurants.Delete(ctx, r.ID); err != nil {
			return 0, fmt.Errorf("drop %s: %w", r.Name, err)
		}
	}
	return len(existing), nil
}

func (s *seeder) load(ctx context.Context, file fixtureFile) (seedSummary, error) {
	var summary seedSummary
	for _, fixture := range file.Restaurants {
		tags := make([]domain.Tag, 0, len(fixture.Tags))
		for _, tag := range fixture.Tags {
			tags = append(tags, domain.Tag{Name: tag.Name, Color: tag.Color})
		}
		restaurant, err := s.restaurants.Create(ctx, application.CreateRestaurantCommand{
			Name:         fixture.Name,
			Address:      fixture.Address,
			CuisineType:  fixture.CuisineType,
			Status:       fixture.status,
			AveragePrice: fixture.AveragePrice,
			Notes:        fixture.Notes,
			PhotoURL:     fixture.PhotoURL,
			Tags:         tags,
		})
		if err != nil {
			return summary, fmt.Errorf("create %s: %w", fixture.Name, err)
		}
		summary.restaurants++

		for _, dish := range fixture.Dishes {
			if _, err := s.dishes.Add(ctx, application.AddDishCommand{
				RestaurantID: restaurant.ID,
				Name:         dish.Name,
				Rating:       dish.Rating,
				Notes:        dish.Notes,
			}); err != nil {
				return summary, fmt.Errorf("add dish %s to %s: %w", dish.Name, fixture.Name, err)
			}
			summary.dishes++
		}
	}
	return summary, nil
}
