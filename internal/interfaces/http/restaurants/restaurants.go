package restaurants

import (
	"context"
	"net/http"

	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/metrics"
	"github.com/queroir/api/internal/restaurant/domain"
	"github.com/queroir/api/internal/selection"
	"github.com/queroir/api/internal/validation"
)

func (h *Handler) restaurantListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		query := r.URL.Query()
		criteria, err := selection.ParseCriteria(selection.RawCriteria{
			SearchText:  query.Get("q"),
			CuisineType: query.Get("cuisine"),
			TagName:     query.Get("tag"),
			Status:      query.Get("status"),
		})
		if err != nil {
			writeServiceError(ctx, w, err, "list restaurants")
			return
		}

		items, total, err := h.restaurants.List(ctx, criteria)
		if err != nil {
			writeServiceError(ctx, w, err, "list restaurants")
			return
		}

		common.WriteJSON(w, http.StatusOK, restaurantListResponse{
			Items:   h.restaurantResponses(items),
			Total:   total,
			Matched: len(items),
		})
	}
}

func (h *Handler) restaurantOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		var status *domain.Status
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed, err := domain.ParseStatus(raw)
			if err != nil {
				writeServiceError(ctx, w, err, "restaurant options")
				return
			}
			status = &parsed
		}

		options, err := h.restaurants.Options(ctx, status)
		if err != nil {
			writeServiceError(ctx, w, err, "restaurant options")
			return
		}
		common.WriteJSON(w, http.StatusOK, optionsResponse{Cuisines: options.Cuisines, Tags: options.Tags})
	}
}

func (h *Handler) restaurantDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		restaurant, err := h.restaurants.Detail(ctx, id)
		if err != nil {
			writeServiceError(ctx, w, err, "restaurant detail")
			return
		}
		common.WriteJSON(w, http.StatusOK, h.restaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRestaurantRequest
		if !decode(w, r, &req) {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		cmd, err := req.command()
		if err != nil {
			writeServiceError(ctx, w, err, "create restaurant")
			return
		}
		restaurant, err := h.restaurants.Create(ctx, cmd)
		if err != nil {
			writeServiceError(ctx, w, err, "create restaurant")
			return
		}
		metrics.RecordMutation("restaurant_create")
		common.WriteJSON(w, http.StatusCreated, h.restaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req updateRestaurantRequest
		if !decode(w, r, &req) {
			return
		}
		if req.Tags != nil {
			for _, tag := range *req.Tags {
				if verr := validation.ValidateStruct(tag); verr != nil {
					common.WriteValidationError(w, verr)
					return
				}
			}
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		patch, err := req.patch()
		if err != nil {
			writeServiceError(ctx, w, err, "update restaurant")
			return
		}
		restaurant, err := h.restaurants.Update(ctx, id, patch)
		if err != nil {
			writeServiceError(ctx, w, err, "update restaurant")
			return
		}
		metrics.RecordMutation("restaurant_update")
		common.WriteJSON(w, http.StatusOK, h.restaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		restaurant, err := h.restaurants.ToggleStatus(ctx, id)
		if err != nil {
			writeServiceError(ctx, w, err, "toggle restaurant status")
			return
		}
		metrics.RecordMutation("restaurant_toggle")
		common.WriteJSON(w, http.StatusOK, h.restaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		if err := h.restaurants.Delete(ctx, id); err != nil {
			writeServiceError(ctx, w, err, "delete restaurant")
			return
		}
		metrics.RecordMutation("restaurant_delete")
		w.WriteHeader(http.StatusNoContent)
	}
}
