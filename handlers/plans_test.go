// File: handlers/plans_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ttravels/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanRepo struct {
	plans   map[string]models.SavedTripPlan
	updated *models.SavedTripPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]models.SavedTripPlan{}}
}

func (f *fakePlanRepo) Create(ctx context.Context, plan models.SavedTripPlan) (string, error) {
	plan.ID = "plan-1"
	f.plans[plan.ID] = plan
	return plan.ID, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id string) (*models.SavedTripPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, errors.New("plan not found")
	}
	return &plan, nil
}

func (f *fakePlanRepo) GetByUserID(ctx context.Context, userID string) ([]models.SavedTripPlan, error) {
	var out []models.SavedTripPlan
	for _, p := range f.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan models.SavedTripPlan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return errors.New("plan not found")
	}
	f.plans[plan.ID] = plan
	f.updated = &plan
	return nil
}

func (f *fakePlanRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := f.plans[id]; !ok {
		return errors.New("plan not found")
	}
	delete(f.plans, id)
	return nil
}

func setupPlanRouter(t *testing.T, repo *fakePlanRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitHandlers(nil, nil, nil, nil, nil, repo, nil)
	r := gin.New()
	r.POST("/api/plans", SavePlanHandler)
	r.GET("/api/plans/:id", GetPlanHandler)
	r.PUT("/api/plans/:id", UpdatePlanHandler)
	r.DELETE("/api/plans/:id", DeletePlanHandler)
	return r
}

func TestUpdatePlanHandler(t *testing.T) {
	t.Run("replaces an existing plan", func(t *testing.T) {
		repo := newFakePlanRepo()
		repo.plans["plan-1"] = models.SavedTripPlan{
			ID:     "plan-1",
			UserID: "user-1",
			Plan:   models.TripPlan{Details: models.TripContext{Destination: "Goa"}},
		}
		r := setupPlanRouter(t, repo)

		body, _ := json.Marshal(map[string]interface{}{
			"user_id": "user-1",
			"name":    "Goa redux",
			"plan":    models.TripPlan{Details: models.TripContext{Destination: "Goa", Days: 5}},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/plans/plan-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, repo.updated)
		assert.Equal(t, "plan-1", repo.updated.ID)
		assert.Equal(t, 5, repo.updated.Plan.Details.Days)
	})

	t.Run("unknown plan is a 404", func(t *testing.T) {
		r := setupPlanRouter(t, newFakePlanRepo())

		body, _ := json.Marshal(map[string]interface{}{
			"user_id": "user-1",
			"plan":    models.TripPlan{Details: models.TripContext{Destination: "Goa"}},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/plans/nope", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing body is a 400", func(t *testing.T) {
		r := setupPlanRouter(t, newFakePlanRepo())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/plans/plan-1", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "user_id and plan are required", resp["message"])
	})
}
