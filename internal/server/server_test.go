package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/queroir/api/internal/config"
	"github.com/queroir/api/internal/infrastructure/backend"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			AllowedOrigins:  []string{"http://localhost:3000"},
			Timezone:        "UTC",
			RequestTimeout:  time.Second,
			ShutdownTimeout: time.Second,
		},
		Store: config.StoreConfig{Driver: config.DriverSQLite, SQLiteDSN: "sqlite://:memory:"},
	}
	if mutate != nil {
		mutate(cfg)
	}
	store, err := backend.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return New(cfg, store)
}

func TestHealthz(t *testing.T) {
	router := newTestServer(t, nil).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["store"] != config.DriverSQLite {
		t.Errorf("body = %v", body)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("content type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestHealthzDegradedAfterClose(t *testing.T) {
	srv := newTestServer(t, nil)
	if err := srv.store.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]string{"status": "degraded", "store": config.DriverSQLite}
	if !reflect.DeepEqual(body, want) {
		t.Errorf("body = %v, want %v", body, want)
	}
	if strings.Contains(rec.Body.String(), "closed") {
		t.Errorf("store error leaked into body %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t, nil).Router()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "queroir_api_requests_total") {
		t.Error("request counter missing from exposition")
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestServer(t, nil).Router()

	req := httptest.NewRequest(http.MethodOptions, "/restaurants", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/restaurants", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow origin %q for foreign origin", got)
	}
}

func TestWriteRateLimit(t *testing.T) {
	router := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit = config.RateLimitConfig{Requests: 2, Window: time.Minute}
	}).Router()

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/restaurants", strings.NewReader(`{"name":"A","address":"B"}`))
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := post(); code != http.StatusCreated {
			t.Fatalf("request %d status = %d", i, code)
		}
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Errorf("third write status = %d, want 429", code)
	}

	get := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	get.RemoteAddr = "203.0.113.7:5000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, get)
	if rec.Code != http.StatusOK {
		t.Errorf("reads must not be limited, got %d", rec.Code)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
