package restaurants

import (
	"context"
	"errors"
	"net/http"

	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/metrics"
	"github.com/queroir/api/internal/restaurant/application"
)

func (h *Handler) roulettePoolsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		counts, err := h.roulette.Pools(ctx)
		if err != nil {
			writeServiceError(ctx, w, err, "roulette pools")
			return
		}
		pools := make([]poolResponse, 0, len(counts))
		for _, c := range counts {
			pools = append(pools, poolResponse{Pool: string(c.Pool), Count: c.Count})
		}
		common.WriteJSON(w, http.StatusOK, poolListResponse{Pools: pools})
	}
}

// rouletteSpinHandler accepts an empty body as a spin of the "all" pool from rotation 0.
// An empty pool is answered with 200 and empty=true.
func (h *Handler) rouletteSpinHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req spinRequest
		if !decodeOptional(w, r, &req) {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		pool, err := application.ParsePool(req.Pool)
		if err != nil {
			writeServiceError(ctx, w, err, "roulette spin")
			return
		}

		result, err := h.roulette.Spin(ctx, pool, req.PreviousRotation)
		switch {
		case errors.Is(err, application.ErrNothingToPick):
			metrics.RecordSpin(string(pool), false)
			common.WriteJSON(w, http.StatusOK, spinResponse{
				Pool:       string(pool),
				Rotation:   result.Rotation,
				Candidates: 0,
				Empty:      true,
			})
			return
		case err != nil:
			writeServiceError(ctx, w, err, "roulette spin")
			return
		}

		metrics.RecordSpin(string(pool), true)
		picked := h.restaurantResponse(*result.Restaurant)
		common.WriteJSON(w, http.StatusOK, spinResponse{
			Pool:       string(result.Pool),
			Restaurant: &picked,
			Rotation:   result.Rotation,
			Candidates: result.Candidates,
		})
	}
}
