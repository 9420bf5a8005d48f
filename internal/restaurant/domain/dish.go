package domain

import (
	"fmt"
	"strings"
	"time"
)

// Rating is a 1-5 star score.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// NewRating validates the range.
func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if r < MinRating || r > MaxRating {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRating, value)
	}
	return r, nil
}

// Int returns the plain value.
func (r Rating) Int() int {
	return int(r)
}

// Dish is something eaten at a visited restaurant.
type Dish struct {
	ID           string
	RestaurantID string
	Name         string
	Rating       *Rating
	Notes        string
	PhotoURL     string
	CreatedAt    time.Time
}

// Validate checks required fields and the rating range.
func (d *Dish) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if d.Rating != nil {
		if _, err := NewRating(d.Rating.Int()); err != nil {
			return err
		}
	}
	return nil
}
