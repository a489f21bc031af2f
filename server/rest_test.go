package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chow/pkg/domain"
	"github.com/umputun/chow/pkg/recommender"
	"github.com/umputun/chow/server/mocks"
)

func testServer(rec Recommender, catalog Catalog, sched Scheduler) *Server {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
	return New(cfg, rec, catalog, sched, "1.2.3", false)
}

func TestServer_recommendationHandler(t *testing.T) {
	rec := &mocks.RecommenderMock{
		RecommendFunc: func(ctx context.Context, pref domain.Preference) ([]recommender.ScoredItem, error) {
			assert.Equal(t, "Labrador", pref.Breed)
			assert.Equal(t, domain.SizeLarge, pref.Size)
			assert.Equal(t, domain.StageSenior, pref.LifeStage)
			assert.Equal(t, []string{domain.ConditionJointCare}, pref.Conditions)
			return []recommender.ScoredItem{
				{Item: domain.Item{ID: "f2", Name: "Lab Joint Support", Breed: "Labrador",
					Size: domain.SizeLarge, LifeStage: domain.StageAdult, Condition: domain.ConditionJointCare}, Score: 6},
				{Item: domain.Item{ID: "f1", Name: "Everyday Adult", Breed: "All",
					Size: domain.SizeLarge, LifeStage: domain.StageAdult}, Score: 2.5},
			}, nil
		},
		StrategyFunc: func() string { return "rules" },
	}

	srv := testServer(rec, &mocks.CatalogMock{}, &mocks.SchedulerMock{})

	body := `{"breed": "Labrador", "animalWeight": 75, "age": 8, "conditions": ["joint care"]}`
	req := httptest.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.recommendationHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp recommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "rules", resp.Strategy)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "f2", resp.Recommendations[0].ID)
	assert.InDelta(t, 6.0, resp.Recommendations[0].Score, 0.001)
	assert.Equal(t, domain.ConditionJointCare, resp.Recommendations[0].Condition)
	assert.Equal(t, "f1", resp.Recommendations[1].ID)
}

func TestServer_recommendationHandlerValidation(t *testing.T) {
	rec := &mocks.RecommenderMock{
		RecommendFunc: func(ctx context.Context, pref domain.Preference) ([]recommender.ScoredItem, error) {
			return []recommender.ScoredItem{}, nil
		},
		StrategyFunc: func() string { return "rules" },
	}
	srv := testServer(rec, &mocks.CatalogMock{}, &mocks.SchedulerMock{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid json", `{"breed": `, "invalid request body"},
		{"missing weight", `{"breed": "Labrador", "age": 3}`, "animalWeight must be a positive number"},
		{"zero weight", `{"animalWeight": 0, "age": 3}`, "animalWeight must be a positive number"},
		{"missing age", `{"animalWeight": 20}`, "age must be a non-negative number"},
		{"negative age", `{"animalWeight": 20, "age": -1}`, "age must be a non-negative number"},
		{"unknown condition", `{"animalWeight": 20, "age": 3, "conditions": ["telepathy"]}`, "unknown condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			srv.recommendationHandler(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}

	assert.Empty(t, rec.RecommendCalls(), "invalid requests never reach the engine")
}

func TestServer_recommendationHandlerEngineFailure(t *testing.T) {
	rec := &mocks.RecommenderMock{
		RecommendFunc: func(ctx context.Context, pref domain.Preference) ([]recommender.ScoredItem, error) {
			return nil, errors.New("catalog unavailable")
		},
	}
	srv := testServer(rec, &mocks.CatalogMock{}, &mocks.SchedulerMock{})

	body := `{"animalWeight": 20, "age": 3}`
	req := httptest.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.recommendationHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "recommendation failed")
	// internal details stay out of the response
	assert.NotContains(t, w.Body.String(), "catalog unavailable")
}

func TestServer_recommendationHandlerEmptyResult(t *testing.T) {
	rec := &mocks.RecommenderMock{
		RecommendFunc: func(ctx context.Context, pref domain.Preference) ([]recommender.ScoredItem, error) {
			return []recommender.ScoredItem{}, nil
		},
		StrategyFunc: func() string { return "cosine" },
	}
	srv := testServer(rec, &mocks.CatalogMock{}, &mocks.SchedulerMock{})

	body := `{"animalWeight": 20, "age": 3}`
	req := httptest.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.recommendationHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp recommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Recommendations)
}

func TestServer_catalogHandler(t *testing.T) {
	catalog := &mocks.CatalogMock{
		SnapshotFunc: func(ctx context.Context) (*domain.Snapshot, error) {
			return &domain.Snapshot{
				Version: 7,
				Items: []domain.Item{
					{ID: "f1", Name: "Everyday Adult", Breed: "All", Size: domain.SizeLarge, LifeStage: domain.StageAdult},
				},
			}, nil
		},
	}
	srv := testServer(&mocks.RecommenderMock{}, catalog, &mocks.SchedulerMock{})

	req := httptest.NewRequest("GET", "/api/v1/catalog", http.NoBody)
	w := httptest.NewRecorder()

	srv.catalogHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1, resp["count"], 0.001)
	assert.InDelta(t, 7, resp["version"], 0.001)
}

func TestServer_catalogHandlerFailure(t *testing.T) {
	catalog := &mocks.CatalogMock{
		SnapshotFunc: func(ctx context.Context) (*domain.Snapshot, error) {
			return nil, errors.New("db gone")
		},
	}
	srv := testServer(&mocks.RecommenderMock{}, catalog, &mocks.SchedulerMock{})

	req := httptest.NewRequest("GET", "/api/v1/catalog", http.NoBody)
	w := httptest.NewRecorder()

	srv.catalogHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "catalog unavailable")
}

func TestServer_reloadHandler(t *testing.T) {
	sched := &mocks.SchedulerMock{ReloadNowFunc: func() {}}
	srv := testServer(&mocks.RecommenderMock{}, &mocks.CatalogMock{}, sched)

	req := httptest.NewRequest("POST", "/api/v1/catalog/reload", http.NoBody)
	w := httptest.NewRecorder()

	srv.reloadHandler(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Len(t, sched.ReloadNowCalls(), 1)
}

func TestServer_statusHandler(t *testing.T) {
	rec := &mocks.RecommenderMock{
		StrategyFunc: func() string { return "rules" },
		TopNFunc:     func() int { return 3 },
	}
	catalog := &mocks.CatalogMock{
		VersionFunc: func() int64 { return 4 },
		SnapshotFunc: func(ctx context.Context) (*domain.Snapshot, error) {
			return &domain.Snapshot{Version: 4, Items: make([]domain.Item, 5)}, nil
		},
	}
	srv := testServer(rec, catalog, &mocks.SchedulerMock{})

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()

	srv.statusHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.Equal(t, "rules", status["strategy"])
	assert.InDelta(t, 4, status["catalog_version"], 0.001)
	assert.InDelta(t, 5, status["catalog_items"], 0.001)
	assert.InDelta(t, 3, status["top_n"], 0.001)
	assert.NotEmpty(t, status["time"])
}
