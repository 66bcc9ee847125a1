package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pbrudny/financial-decisions-retro/database"
	"github.com/pbrudny/financial-decisions-retro/models"
	"github.com/pbrudny/financial-decisions-retro/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	services.ResetPresence()

	r := gin.New()
	AuthRoutes(r)
	DecisionRoutes(r)
	MetaConclusionRoutes(r)
	StatusRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, user models.UserID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-Id", string(user))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	decode(t, w, &body)
	return body.Error
}

func validDecision() map[string]interface{} {
	return map[string]interface{}{
		"name":             "Apartment purchase",
		"period":           "2023 Q2",
		"context":          "We wanted to stop renting",
		"financial_scale":  "450k",
		"emotional_impact": "high",
	}
}

func fullAssessment(rating int) map[string]interface{} {
	return map[string]interface{}{
		"rating":               rating,
		"would_do_again":       true,
		"biggest_ignored_risk": "market drop",
		"items": []map[string]interface{}{
			{"type": "pro", "text": "good return", "sort_order": 0},
			{"type": "con", "text": "high risk", "sort_order": 0},
		},
	}
}

func fullResponsibility() map[string]interface{} {
	return map[string]interface{}{
		"brought_topic":    "me",
		"pushed_execution": "both",
		"main_burden":      "partner",
	}
}

// createApprovedDecision creates a decision as A and approves it as B.
func createApprovedDecision(t *testing.T, r *gin.Engine) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/decisions", models.UserA, validDecision())
	require.Equal(t, http.StatusCreated, w.Code)
	var decision models.Decision
	decode(t, w, &decision)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/decisions/%d/approve", decision.ID), models.UserB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	return decision.ID
}

// lockAssessment fills in and locks a complete assessment for one party.
func lockAssessment(t *testing.T, r *gin.Engine, user models.UserID, decisionID uint, rating int) {
	t.Helper()

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/decisions/%d/assessments/mine", decisionID), user, fullAssessment(rating))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/decisions/%d/responsibilities/mine", decisionID), user, fullResponsibility())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/decisions/%d/assessments/mine/lock", decisionID), user, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
