package restaurants

import (
	"time"

	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/restaurant/application"
	"github.com/queroir/api/internal/restaurant/domain"
)

type tagPayload struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name" validate:"required,max=40"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

type createRestaurantRequest struct {
	Name         string       `json:"name" validate:"required,max=120"`
	Address      string       `json:"address" validate:"required,max=300"`
	CuisineType  string       `json:"cuisine_type" validate:"max=60"`
	Status       string       `json:"status" validate:"omitempty,oneof=want_to_go been_there"`
	AveragePrice string       `json:"average_price" validate:"max=40"`
	Notes        string       `json:"notes" validate:"max=2000"`
	PhotoURL     string       `json:"photo_url"`
	Tags         []tagPayload `json:"tags" validate:"max=20,dive"`
}

// updateRestaurantRequest is a partial update; absent fields stay unchanged.
type updateRestaurantRequest struct {
	Name         *string       `json:"name" validate:"omitempty,max=120"`
	Address      *string       `json:"address" validate:"omitempty,max=300"`
	CuisineType  *string       `json:"cuisine_type" validate:"omitempty,max=60"`
	Status       *string       `json:"status" validate:"omitempty,oneof=want_to_go been_there"`
	AveragePrice *string       `json:"average_price" validate:"omitempty,max=40"`
	Notes        *string       `json:"notes" validate:"omitempty,max=2000"`
	PhotoURL     *string       `json:"photo_url"`
	Tags         *[]tagPayload `json:"tags"`
}

type dishFields struct {
	Name     string `json:"name" validate:"required,max=120"`
	Rating   *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes    string `json:"notes" validate:"max=2000"`
	PhotoURL string `json:"photo_url"`
}

// createDishRequest is the body of POST /dishes, which names the restaurant in the body.
type createDishRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	dishFields
}

type spinRequest struct {
	Pool             string  `json:"pool"`
	PreviousRotation float64 `json:"previousRotation"`
}

type tagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type restaurantResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	CuisineType  string        `json:"cuisine_type"`
	CuisineColor string        `json:"cuisine_color"`
	Status       string        `json:"status"`
	AveragePrice string        `json:"average_price,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	PhotoURL     string        `json:"photo_url,omitempty"`
	Tags         []tagResponse `json:"tags"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at,omitempty"`
}

type restaurantListResponse struct {
	Items   []restaurantResponse `json:"items"`
	Total   int                  `json:"total"`
	Matched int                  `json:"matched"`
}

type optionsResponse struct {
	Cuisines []string `json:"cuisines"`
	Tags     []string `json:"tags"`
}

type dishResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Rating       *int   `json:"rating"`
	Notes        string `json:"notes,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type dishListResponse struct {
	Items []dishResponse `json:"items"`
}

type poolResponse struct {
	Pool  string `json:"pool"`
	Count int    `json:"count"`
}

type poolListResponse struct {
	Pools []poolResponse `json:"pools"`
}

type spinResponse struct {
	Pool       string              `json:"pool"`
	Restaurant *restaurantResponse `json:"restaurant"`
	Rotation   float64             `json:"rotation"`
	Candidates int                 `json:"candidates"`
	Empty      bool                `json:"empty"`
}

type taxonomyResponse struct {
	CuisineTypes  []common.CuisineType  `json:"cuisine_types"`
	SuggestedTags []common.SuggestedTag `json:"suggested_tags"`
}

func toDomainTags(tags []tagPayload) []domain.Tag {
	result := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		result = append(result, domain.Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	return result
}

func (req createRestaurantRequest) command() (application.CreateRestaurantCommand, error) {
	cmd := application.CreateRestaurantCommand{
		Name:         req.Name,
		Address:      req.Address,
		CuisineType:  req.CuisineType,
		AveragePrice: req.AveragePrice,
		Notes:        req.Notes,
		PhotoURL:     req.PhotoURL,
		Tags:         toDomainTags(req.Tags),
	}
	if req.Status != "" {
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			return application.CreateRestaurantCommand{}, err
		}
		cmd.Status = status
	}
	return cmd, nil
}

func (req updateRestaurantRequest) patch() (application.RestaurantPatch, error) {
	patch := application.RestaurantPatch{
		Name:         req.Name,
		Address:      req.Address,
		CuisineType:  req.CuisineType,
		AveragePrice: req.AveragePrice,
		Notes:        req.Notes,
		PhotoURL:     req.PhotoURL,
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return application.RestaurantPatch{}, err
		}
		patch.Status = &status
	}
	if req.Tags != nil {
		tags := toDomainTags(*req.Tags)
		patch.Tags = &tags
	}
	return patch, nil
}

func (f dishFields) command(restaurantID string) application.AddDishCommand {
	return application.AddDishCommand{
		RestaurantID: restaurantID,
		Name:         f.Name,
		Rating:       f.Rating,
		Notes:        f.Notes,
		PhotoURL:     f.PhotoURL,
	}
}

func (h *Handler) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(h.location).Format(time.RFC3339)
}

func (h *Handler) restaurantResponse(r domain.Restaurant) restaurantResponse {
	tags := make([]tagResponse, 0, len(r.Tags))
	for _, tag := range r.Tags {
		tags = append(tags, tagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	return restaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		CuisineType:  r.CuisineType,
		CuisineColor: common.CuisineColor(r.CuisineType),
		Status:       r.Status.String(),
		AveragePrice: r.AveragePrice,
		Notes:        r.Notes,
		PhotoURL:     r.PhotoURL,
		Tags:         tags,
		CreatedAt:    h.formatTime(r.CreatedAt),
		UpdatedAt:    h.formatTime(r.UpdatedAt),
	}
}

func (h *Handler) restaurantResponses(records []domain.Restaurant) []restaurantResponse {
	items := make([]restaurantResponse, 0, len(records))
	for _, r := range records {
		items = append(items, h.restaurantResponse(r))
	}
	return items
}

func (h *Handler) dishResponse(d domain.Dish) dishResponse {
	resp := dishResponse{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Notes:        d.Notes,
		PhotoURL:     d.PhotoURL,
		CreatedAt:    h.formatTime(d.CreatedAt),
	}
	if d.Rating != nil {
		resp.Rating = common.IntPtr(d.Rating.Int())
	}
	return resp
}

func (h *Handler) dishResponses(dishes []domain.Dish) []dishResponse {
	items := make([]dishResponse, 0, len(dishes))
	for _, d := range dishes {
		items = append(items, h.dishResponse(d))
	}
	return items
}
