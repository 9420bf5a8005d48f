package domain

import (
	"strings"
	"time"
)

// Restaurant is a place on the shared list.
type Restaurant struct {
	ID           string
	Name         string
	Address      string
	CuisineType  string
	Status       Status
	AveragePrice string
	Notes        string
	PhotoURL     string
	Tags         TagSet
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields every stored restaurant must carry.
func (r *Restaurant) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(r.Address) == "" {
		return ErrAddressRequired
	}
	if !r.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Visited reports whether the restaurant is in the BeenThere state.
func (r *Restaurant) Visited() bool {
	return r.Status == StatusBeenThere
}
