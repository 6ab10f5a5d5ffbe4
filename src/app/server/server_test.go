package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
	"gamestore/src/infra/config"
	"gamestore/src/infra/logger"
	"gamestore/src/infra/metrics"
	"gamestore/src/infra/repo"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:     config.LogConfig{Level: "info", Format: "json"},
		Store:   config.StoreConfig{Driver: config.StoreDriverMemory},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T, catalog ports.CatalogRepository) *gin.Engine {
	t.Helper()
	if catalog == nil {
		catalog = repo.NewSeededMemoryCatalog()
	}
	srv := New(testConfig(), logger.Discard(), Dependencies{
		Catalog: catalog,
		Coupons: repo.NewMemoryCoupons(repo.SeedCoupons()),
		Metrics: metrics.NewRecorder(),
	})
	gin.SetMode(gin.TestMode)
	return srv.Router()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const hadesJSON = `{"name":"Hades","categoryId":1,"price":24.99,"releaseDate":"2020-09-17"}`

func TestCreateThenReadScenario(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/games", hadesJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/games/5", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":5,"name":"Hades","categoryId":1,"price":24.99,"releaseDate":"2020-09-17"}`, w.Body.String())

	w = do(r, http.MethodGet, "/games/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5,"name":"Hades","categoryId":1,"price":24.99,"releaseDate":"2020-09-17"}`, w.Body.String())

	w = do(r, http.MethodGet, "/games", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 5)
	assert.Equal(t, map[string]any{
		"id":           5.0,
		"name":         "Hades",
		"categoryName": "Fighting",
		"price":        24.99,
		"releaseDate":  "2020-09-17",
	}, list[4])
}

func TestGetUnknownGame(t *testing.T) {
	r := newTestRouter(t, nil)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/games/999999", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/games/abc", "").Code)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPut, "/games/1", `{"name":"Tekken 8","categoryId":1,"price":100,"releaseDate":"2024-01-26"}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, "/games/1", "")
	assert.JSONEq(t, `{"id":1,"name":"Tekken 8","categoryId":1,"price":100,"releaseDate":"2024-01-26"}`, w.Body.String())
}

func TestUpdateFailures(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPut, "/games/999999", hadesJSON)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPut, "/games/1", `{"name":"","categoryId":1,"price":10,"releaseDate":"2020-09-17"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"name"`)

	w = do(r, http.MethodPut, "/games/1", `{"name":"X","categoryId":77,"price":10,"releaseDate":"2020-09-17"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"categoryId"`)
}

func TestCreateValidationBoundaries(t *testing.T) {
	r := newTestRouter(t, nil)

	cases := []struct {
		body   string
		status int
		field  string
	}{
		{`{"name":"A","categoryId":1,"price":0,"releaseDate":"2020-09-17"}`, http.StatusBadRequest, "price"},
		{`{"name":"A","categoryId":1,"price":100.01,"releaseDate":"2020-09-17"}`, http.StatusBadRequest, "price"},
		{`{"name":"A","categoryId":1,"price":100,"releaseDate":"2020-09-17"}`, http.StatusCreated, ""},
		{`{"name":"A","categoryId":1,"price":24.999,"releaseDate":"2020-09-17"}`, http.StatusBadRequest, "price"},
		{fmt.Sprintf(`{"name":%q,"categoryId":1,"price":5,"releaseDate":"2020-09-17"}`, strings.Repeat("n", 50)), http.StatusCreated, ""},
		{fmt.Sprintf(`{"name":%q,"categoryId":1,"price":5,"releaseDate":"2020-09-17"}`, strings.Repeat("n", 51)), http.StatusBadRequest, "name"},
		{`{"name":"A","categoryId":1,"price":5,"releaseDate":"yesterday"}`, http.StatusBadRequest, "releaseDate"},
		{`{"name":"A","categoryId":99,"price":5,"releaseDate":"2020-09-17"}`, http.StatusBadRequest, "categoryId"},
		{`not json`, http.StatusBadRequest, "body"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodPost, "/games", tc.body)
		assert.Equal(t, tc.status, w.Code, tc.body)
		if tc.field != "" {
			assert.Contains(t, w.Body.String(), fmt.Sprintf(`"field":%q`, tc.field), tc.body)
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := newTestRouter(t, nil)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/games/2", "").Code)
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/games/424242", "").Code)
	}
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/games/2", "").Code)
}

func TestNonPositiveIDsBehaveLikeUnknownIDs(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, id := range []string{"0", "-7"} {
		path := "/games/" + id
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, "").Code, path)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, path, hadesJSON).Code, path)
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, path, "").Code, path)
		assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, path, "").Code, path)
	}
}

func TestConcurrentUpdateAndDeleteSettle(t *testing.T) {
	for i := 0; i < 50; i++ {
		r := newTestRouter(t, nil)

		var (
			wg        sync.WaitGroup
			putStatus int
			delStatus int
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			putStatus = do(r, http.MethodPut, "/games/1", hadesJSON).Code
		}()
		go func() {
			defer wg.Done()
			delStatus = do(r, http.MethodDelete, "/games/1", "").Code
		}()
		wg.Wait()

		assert.Contains(t, []int{http.StatusNoContent, http.StatusNotFound}, putStatus)
		assert.Equal(t, http.StatusNoContent, delStatus)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/games/1", "").Code)
	}
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	r := newTestRouter(t, nil)

	const n = 32
	locations := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := do(r, http.MethodPost, "/games", hadesJSON)
			if assert.Equal(t, http.StatusCreated, w.Code) {
				locations <- w.Header().Get("Location")
			}
		}()
	}
	wg.Wait()
	close(locations)

	seen := map[string]bool{}
	for loc := range locations {
		assert.False(t, seen[loc], loc)
		seen[loc] = true
	}
	assert.Len(t, seen, n)
}

func TestDanglingCategoryIsInternalError(t *testing.T) {
	catalog := repo.NewMemoryCatalog(repo.SeedCategories(), []domain.Game{{ID: 1, Name: "Ghost", CategoryID: 404, Price: decimal.NewFromInt(10)}})
	r := newTestRouter(t, catalog)

	w := do(r, http.MethodGet, "/games", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "missing category")
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/games/1", "").Code)
}

func TestCategories(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Fighting"},
		{"id":2,"name":"Roleplaying"},
		{"id":3,"name":"Sports"},
		{"id":4,"name":"Racing"},
		{"id":5,"name":"Kids and Family"}
	]`, w.Body.String())
}

func TestCouponRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/coupons/code/welcome10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"couponId":1,"couponCode":"WELCOME10","discountAmount":10,"minAmount":100}}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/coupons", `{"couponCode":"AUTUMN15","discountAmount":15,"minAmount":150}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/coupons/3", w.Header().Get("Location"))

	w = do(r, http.MethodPost, "/api/coupons", `{"couponCode":"autumn15","discountAmount":5}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/api/coupons", `{"couponCode":"ODD","discountAmount":5.555}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"discountAmount"`)

	w = do(r, http.MethodPost, "/api/coupons", `{"couponCode":"FREE","discountAmount":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"discountAmount"`)

	w = do(r, http.MethodPut, "/api/coupons/3", `{"couponCode":"AUTUMN20","discountAmount":20,"minAmount":150}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"couponCode":"AUTUMN20"`)

	w = do(r, http.MethodGet, "/api/coupons", "")
	var list struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 3)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/coupons/3", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/coupons/3", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/coupons/3", "").Code)
}

type downRepo struct{ ports.CouponRepository }

func (downRepo) Health(context.Context) error { return errors.New("connection refused") }

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t, nil)
	assert.JSONEq(t, `{"status":"ok"}`, do(r, http.MethodGet, "/health", "").Body.String())

	w := do(r, http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"catalog":{"status":"healthy"}`)

	srv := New(testConfig(), logger.Discard(), Dependencies{
		Catalog: repo.NewSeededMemoryCatalog(),
		Coupons: downRepo{},
	})
	w = do(srv.Router(), http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"coupons":{"status":"unhealthy","message":"unavailable"}`)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestMetricsAndUnknownRoutes(t *testing.T) {
	r := newTestRouter(t, nil)
	do(r, http.MethodGet, "/games/1", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gamestore_http_requests_total{method="GET",route="/games/:id",status="200"} 1`)

	w = do(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
