package restaurants

import (
	"context"
	"net/http"

	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/metrics"
)

func (h *Handler) dishListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		dishes, err := h.dishes.List(ctx)
		if err != nil {
			writeServiceError(ctx, w, err, "list dishes")
			return
		}
		common.WriteJSON(w, http.StatusOK, dishListResponse{Items: h.dishResponses(dishes)})
	}
}

func (h *Handler) restaurantDishesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		dishes, err := h.dishes.ListByRestaurant(ctx, id)
		if err != nil {
			writeServiceError(ctx, w, err, "list restaurant dishes")
			return
		}
		common.WriteJSON(w, http.StatusOK, dishListResponse{Items: h.dishResponses(dishes)})
	}
}

func (h *Handler) restaurantDishCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req dishFields
		if !decode(w, r, &req) {
			return
		}
		h.addDish(w, r, req, id)
	}
}

func (h *Handler) dishCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDishRequest
		if !decode(w, r, &req) {
			return
		}
		h.addDish(w, r, req.dishFields, req.RestaurantID)
	}
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request, fields dishFields, restaurantID string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	dish, err := h.dishes.Add(ctx, fields.command(restaurantID))
	if err != nil {
		writeServiceError(ctx, w, err, "add dish")
		return
	}
	metrics.RecordMutation("dish_create")
	common.WriteJSON(w, http.StatusCreated, h.dishResponse(*dish))
}
