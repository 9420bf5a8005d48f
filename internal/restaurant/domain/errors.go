package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrNameRequired      = errors.New("name is required")
	ErrAddressRequired   = errors.New("address is required")
	ErrDishRequiresVisit = errors.New("dishes can only be added to visited restaurants")
)
