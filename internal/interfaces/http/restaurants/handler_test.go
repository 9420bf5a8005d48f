package restaurants

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/queroir/api/internal/infrastructure/sqlite"
	"github.com/queroir/api/internal/interfaces/http/common"
	"github.com/queroir/api/internal/restaurant/application"
)

type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

type zeroAngles struct{}

func (zeroAngles) Float64() float64 { return 0 }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()
	client, err := sqlite.New(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close(context.Background()) })
	if err := client.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}

	restaurants, dishes := client.Restaurants(), client.Dishes()
	handler := NewHandler(Config{
		Restaurants: application.NewRestaurantService(restaurants, dishes),
		Dishes:      application.NewDishService(restaurants, dishes),
		Roulette: application.NewRouletteService(restaurants,
			application.WithRandomSource(firstPick{}),
			application.WithAngleSource(zeroAngles{}),
		),
	})
	router := chi.NewRouter()
	handler.Register(router, nil)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	var req *http.Request
	if reader != nil {
		req = httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func createRestaurant(t *testing.T, router http.Handler, body map[string]any) restaurantResponse {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/restaurants", body)
	expectStatus(t, rec, http.StatusCreated)
	return decodeBody[restaurantResponse](t, rec)
}

func TestRestaurantCreateAndList(t *testing.T) {
	router := newTestRouter(t)

	created := createRestaurant(t, router, map[string]any{
		"name":         "Aroma",
		"address":      "Rua Augusta, 100",
		"cuisine_type": "Italiano",
		"tags":         []map[string]string{{"name": "Favorito", "color": "#ef4444"}},
	})
	if created.ID == "" || created.Status != "want_to_go" {
		t.Errorf("unexpected created restaurant %+v", created)
	}
	if created.CuisineColor != "#ef4444" {
		t.Errorf("cuisine color = %q", created.CuisineColor)
	}
	if len(created.Tags) != 1 || created.Tags[0].ID == "" {
		t.Errorf("tag should get an id: %+v", created.Tags)
	}

	createRestaurant(t, router, map[string]any{
		"name":         "Bamboo",
		"address":      "Av. Paulista, 200",
		"cuisine_type": "Japonês",
		"status":       "been_there",
	})

	tests := []struct {
		name        string
		query       string
		wantMatched int
		wantFirst   string
	}{
		{name: "no filter", query: "", wantMatched: 2, wantFirst: "Bamboo"},
		{name: "search by address", query: "?q=augusta", wantMatched: 1, wantFirst: "Aroma"},
		{name: "cuisine", query: "?cuisine=Japon%C3%AAs", wantMatched: 1, wantFirst: "Bamboo"},
		{name: "tag", query: "?tag=Favorito", wantMatched: 1, wantFirst: "Aroma"},
		{name: "status", query: "?status=been_there", wantMatched: 1, wantFirst: "Bamboo"},
		{name: "combined without match", query: "?tag=Favorito&status=been_there", wantMatched: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/restaurants"+tt.query, nil)
			expectStatus(t, rec, http.StatusOK)
			list := decodeBody[restaurantListResponse](t, rec)
			if list.Total != 2 || list.Matched != tt.wantMatched || len(list.Items) != tt.wantMatched {
				t.Fatalf("list = total %d matched %d items %d", list.Total, list.Matched, len(list.Items))
			}
			if tt.wantFirst != "" && list.Items[0].Name != tt.wantFirst {
				t.Errorf("first = %q, want %q", list.Items[0].Name, tt.wantFirst)
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/restaurants?status=all", nil)
		expectStatus(t, rec, http.StatusBadRequest)
	})
}

func TestRestaurantCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/restaurants", map[string]any{"address": "Rua A"})
	expectStatus(t, rec, http.StatusBadRequest)
	body := decodeBody[common.ErrorResponse](t, rec)
	if len(body.Details) != 1 || body.Details[0].Field != "name" {
		t.Errorf("details = %+v", body.Details)
	}

	rec = do(t, router, http.MethodPost, "/restaurants", map[string]any{"name": "   ", "address": "Rua A"})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, router, http.MethodPost, "/restaurants", map[string]any{"name": "X", "address": "Rua A", "status": "maybe"})
	expectStatus(t, rec, http.StatusBadRequest)

	req := httptest.NewRequest(http.MethodPost, "/restaurants", bytes.NewBufferString("{not json"))
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	expectStatus(t, raw, http.StatusBadRequest)
}

func TestRestaurantDetailErrors(t *testing.T) {
	router := newTestRouter(t)

	expectStatus(t, do(t, router, http.MethodGet, "/restaurants/not-a-uuid", nil), http.StatusBadRequest)
	expectStatus(t, do(t, router, http.MethodGet, "/restaurants/8f14e45f-ceea-467f-a0e6-5b1f6d1f2c3a", nil), http.StatusNotFound)
	expectStatus(t, do(t, router, http.MethodPost, "/restaurants/8f14e45f-ceea-467f-a0e6-5b1f6d1f2c3a/toggle-status", nil), http.StatusNotFound)
	expectStatus(t, do(t, router, http.MethodDelete, "/restaurants/8f14e45f-ceea-467f-a0e6-5b1f6d1f2c3a", nil), http.StatusNotFound)
}

func TestRestaurantPatchAndToggle(t *testing.T) {
	router := newTestRouter(t)
	created := createRestaurant(t, router, map[string]any{
		"name": "Cantina", "address": "Rua B, 3", "cuisine_type": "Italiano", "notes": "old",
	})

	rec := do(t, router, http.MethodPatch, "/restaurants/"+created.ID, map[string]any{"notes": "fresh pasta"})
	expectStatus(t, rec, http.StatusOK)
	updated := decodeBody[restaurantResponse](t, rec)
	if updated.Notes != "fresh pasta" || updated.Name != "Cantina" || updated.CuisineType != "Italiano" {
		t.Errorf("partial update changed too much: %+v", updated)
	}

	rec = do(t, router, http.MethodPatch, "/restaurants/"+created.ID, map[string]any{"tags": []map[string]string{{"name": "Caro", "color": "purple"}}})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, router, http.MethodPatch, "/restaurants/"+created.ID, map[string]any{"address": ""})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, router, http.MethodPost, "/restaurants/"+created.ID+"/toggle-status", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[restaurantResponse](t, rec).Status; got != "been_there" {
		t.Errorf("status after toggle = %q", got)
	}
	rec = do(t, router, http.MethodPost, "/restaurants/"+created.ID+"/toggle-status", nil)
	if got := decodeBody[restaurantResponse](t, rec).Status; got != "want_to_go" {
		t.Errorf("status after second toggle = %q", got)
	}
}

func TestDishes(t *testing.T) {
	router := newTestRouter(t)
	created := createRestaurant(t, router, map[string]any{"name": "Bamboo", "address": "Av. B, 2"})
	dishesPath := "/restaurants/" + created.ID + "/dishes"

	rec := do(t, router, http.MethodPost, dishesPath, map[string]any{"name": "Temaki", "rating": 5})
	expectStatus(t, rec, http.StatusConflict)

	expectStatus(t, do(t, router, http.MethodPost, "/restaurants/"+created.ID+"/toggle-status", nil), http.StatusOK)

	rec = do(t, router, http.MethodPost, dishesPath, map[string]any{"name": "Temaki", "rating": 6})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, router, http.MethodPost, dishesPath, map[string]any{"name": "Temaki", "rating": 5})
	expectStatus(t, rec, http.StatusCreated)
	dish := decodeBody[dishResponse](t, rec)
	if dish.RestaurantID != created.ID || dish.Rating == nil || *dish.Rating != 5 {
		t.Errorf("unexpected dish %+v", dish)
	}

	rec = do(t, router, http.MethodPost, "/dishes", map[string]any{"restaurant_id": created.ID, "name": "Guioza"})
	expectStatus(t, rec, http.StatusCreated)
	if got := decodeBody[dishResponse](t, rec); got.Rating != nil {
		t.Errorf("unrated dish has rating %v", *got.Rating)
	}

	rec = do(t, router, http.MethodPost, "/dishes", map[string]any{"restaurant_id": "nope", "name": "Guioza"})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, router, http.MethodGet, dishesPath, nil)
	expectStatus(t, rec, http.StatusOK)
	if items := decodeBody[dishListResponse](t, rec).Items; len(items) != 2 {
		t.Fatalf("dishes = %+v", items)
	}

	expectStatus(t, do(t, router, http.MethodGet, "/restaurants/8f14e45f-ceea-467f-a0e6-5b1f6d1f2c3a/dishes", nil), http.StatusNotFound)

	expectStatus(t, do(t, router, http.MethodDelete, "/restaurants/"+created.ID, nil), http.StatusNoContent)
	expectStatus(t, do(t, router, http.MethodGet, "/restaurants/"+created.ID, nil), http.StatusNotFound)

	rec = do(t, router, http.MethodGet, "/dishes", nil)
	expectStatus(t, rec, http.StatusOK)
	if items := decodeBody[dishListResponse](t, rec).Items; len(items) != 0 {
		t.Errorf("dishes survived restaurant delete: %+v", items)
	}
}

func TestOptionsAndTaxonomy(t *testing.T) {
	router := newTestRouter(t)
	createRestaurant(t, router, map[string]any{"name": "A", "address": "a", "cuisine_type": "Italiano", "tags": []map[string]string{{"name": "Barato"}}})
	createRestaurant(t, router, map[string]any{"name": "B", "address": "b", "cuisine_type": "Árabe", "status": "been_there"})
	createRestaurant(t, router, map[string]any{"name": "C", "address": "c"})

	rec := do(t, router, http.MethodGet, "/restaurants/options", nil)
	expectStatus(t, rec, http.StatusOK)
	opts := decodeBody[optionsResponse](t, rec)
	if len(opts.Cuisines) != 2 || opts.Cuisines[0] != "Italiano" || opts.Cuisines[1] != "Árabe" {
		t.Errorf("cuisines = %v", opts.Cuisines)
	}
	if len(opts.Tags) != 1 || opts.Tags[0] != "Barato" {
		t.Errorf("tags = %v", opts.Tags)
	}

	rec = do(t, router, http.MethodGet, "/restaurants/options?status=been_there", nil)
	opts = decodeBody[optionsResponse](t, rec)
	if len(opts.Cuisines) != 1 || opts.Cuisines[0] != "Árabe" || len(opts.Tags) != 0 {
		t.Errorf("been_there options = %+v", opts)
	}

	expectStatus(t, do(t, router, http.MethodGet, "/restaurants/options?status=x", nil), http.StatusBadRequest)

	rec = do(t, router, http.MethodGet, "/taxonomy", nil)
	expectStatus(t, rec, http.StatusOK)
	tax := decodeBody[taxonomyResponse](t, rec)
	if len(tax.CuisineTypes) != len(common.CuisineTypes) || tax.SuggestedTags[0].Name != "Favorito" {
		t.Errorf("unexpected taxonomy %+v", tax)
	}
}

func TestRoulette(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/roulette/spin", map[string]any{"pool": "favorites", "previousRotation": 90})
	expectStatus(t, rec, http.StatusOK)
	empty := decodeBody[spinResponse](t, rec)
	if !empty.Empty || empty.Restaurant != nil || empty.Rotation != 90 {
		t.Errorf("empty spin = %+v", empty)
	}

	createRestaurant(t, router, map[string]any{"name": "Aroma", "address": "a"})
	createRestaurant(t, router, map[string]any{"name": "Bamboo", "address": "b", "tags": []map[string]string{{"name": "Favorito"}}})

	rec = do(t, router, http.MethodPost, "/roulette/spin", map[string]any{"pool": "favorites", "previousRotation": 90})
	expectStatus(t, rec, http.StatusOK)
	spin := decodeBody[spinResponse](t, rec)
	if spin.Empty || spin.Restaurant == nil || spin.Restaurant.Name != "Bamboo" {
		t.Fatalf("favorites spin = %+v", spin)
	}
	if spin.Candidates != 1 || spin.Rotation != 90+5*360 {
		t.Errorf("candidates %d rotation %v", spin.Candidates, spin.Rotation)
	}

	rec = do(t, router, http.MethodPost, "/roulette/spin", nil)
	expectStatus(t, rec, http.StatusOK)
	if all := decodeBody[spinResponse](t, rec); all.Pool != "all" || all.Candidates != 2 || all.Restaurant.Name != "Bamboo" {
		t.Errorf("default spin = %+v", all)
	}

	expectStatus(t, do(t, router, http.MethodPost, "/roulette/spin", map[string]any{"pool": "cheap"}), http.StatusBadRequest)

	rec = do(t, router, http.MethodGet, "/roulette/pools", nil)
	expectStatus(t, rec, http.StatusOK)
	pools := decodeBody[poolListResponse](t, rec).Pools
	want := map[string]int{"all": 2, "want_to_go": 2, "favorites": 1}
	if len(pools) != len(want) {
		t.Fatalf("pools = %+v", pools)
	}
	for _, p := range pools {
		if want[p.Pool] != p.Count {
			t.Errorf("pool %s count = %d, want %d", p.Pool, p.Count, want[p.Pool])
		}
	}
}

func TestRouletteSpinWithoutContentLength(t *testing.T) {
	router := newTestRouter(t)
	createRestaurant(t, router, map[string]any{"name": "Aroma", "address": "a"})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "chunked empty body", body: "", wantStatus: http.StatusOK},
		{name: "chunked object", body: `{"pool":"want_to_go"}`, wantStatus: http.StatusOK},
		{name: "chunked garbage", body: `{"pool":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/roulette/spin", strings.NewReader(tt.body))
			req.ContentLength = -1
			req.TransferEncoding = []string{"chunked"}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			expectStatus(t, rec, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				return
			}
			spin := decodeBody[spinResponse](t, rec)
			if spin.Empty || spin.Restaurant == nil || spin.Restaurant.Name != "Aroma" {
				t.Errorf("spin = %+v", spin)
			}
		})
	}
}
