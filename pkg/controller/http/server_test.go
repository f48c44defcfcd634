package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/storesafe-app/storesafe/pkg/controller/http"
	"github.com/storesafe-app/storesafe/pkg/repository/memory"
	"github.com/storesafe-app/storesafe/pkg/usecase"
)

func newTestServer(t *testing.T) (*http.Server, *usecase.UseCases) {
	t.Helper()
	uc := usecase.New(memory.New(), nil)
	return http.New(uc), uc
}

func doJSON(t *testing.T, srv *http.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		gt.NoError(t, json.NewEncoder(&buf).Encode(body)).Required()
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst)).Required()
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, nethttp.MethodGet, "/health", nil)
	gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

	var body map[string]string
	decodeBody(t, rec, &body)
	gt.Value(t, body["status"]).Equal("ok")
}

func TestCategories(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, nethttp.MethodGet, "/api/categories", nil)
	gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

	var body struct {
		Categories []struct {
			ID     string  `json:"id"`
			Name   string  `json:"name"`
			Weight float64 `json:"weight"`
		} `json:"categories"`
	}
	decodeBody(t, rec, &body)
	gt.Array(t, body.Categories).Length(8)

	sum := 0.0
	for _, c := range body.Categories {
		sum += c.Weight
	}
	gt.Bool(t, sum > 1.0-1e-6 && sum < 1.0+1e-6).True()
}

func TestAssessScoresEndpoint(t *testing.T) {
	srv, uc := newTestServer(t)

	fullScores := func(value float64) map[string]float64 {
		scores := make(map[string]float64)
		for _, c := range uc.Registry().Categories() {
			scores[c.ID.String()] = value
		}
		return scores
	}

	t.Run("returns the aggregated assessment", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPost, "/api/assessments", map[string]any{
			"category_scores": fullScores(20),
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			OverallRiskScore   int    `json:"overall_risk_score"`
			OverallSafetyScore int    `json:"overall_safety_score"`
			Tier               string `json:"tier"`
		}
		decodeBody(t, rec, &body)
		gt.Value(t, body.OverallRiskScore).Equal(20)
		gt.Value(t, body.OverallSafetyScore).Equal(80)
		gt.Value(t, body.Tier).Equal("LOW")
	})

	t.Run("missing category is a bad request", func(t *testing.T) {
		scores := fullScores(50)
		delete(scores, "market_external")

		rec := doJSON(t, srv, nethttp.MethodPost, "/api/assessments", map[string]any{
			"category_scores": scores,
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/assessments", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})
}

func TestPropertyEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	var propertyID int64

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPost, "/api/properties/", map[string]string{
			"name":     "High Street Store",
			"address":  "12 High Street",
			"postcode": "SW1A 1AA",
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusCreated)

		var body struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		decodeBody(t, rec, &body)
		gt.Value(t, body.Name).Equal("High Street Store")
		gt.Value(t, body.ID).NotEqual(int64(0))
		propertyID = body.ID
	})

	t.Run("create without name is a bad request", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPost, "/api/properties/", map[string]string{
			"address": "12 High Street",
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})

	t.Run("get", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodGet, fmt.Sprintf("/api/properties/%d", propertyID), nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)
	})

	t.Run("get unknown ID is not found", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodGet, "/api/properties/99999", nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusNotFound)
	})

	t.Run("update", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPut, fmt.Sprintf("/api/properties/%d", propertyID), map[string]string{
			"name": "Renamed Store",
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			Name string `json:"name"`
		}
		decodeBody(t, rec, &body)
		gt.Value(t, body.Name).Equal("Renamed Store")
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodGet, "/api/properties/", nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			Properties []json.RawMessage `json:"properties"`
		}
		decodeBody(t, rec, &body)
		gt.Array(t, body.Properties).Length(1)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodDelete, fmt.Sprintf("/api/properties/%d", propertyID), nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusNoContent)

		rec = doJSON(t, srv, nethttp.MethodGet, fmt.Sprintf("/api/properties/%d", propertyID), nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusNotFound)
	})
}

func TestReportEndpoints(t *testing.T) {
	srv, uc := newTestServer(t)
	ctx := context.Background()

	property, err := uc.Property.CreateProperty(ctx, "Corner Shop", "", "")
	gt.NoError(t, err).Required()
	reportsPath := fmt.Sprintf("/api/properties/%d/reports", property.ID)

	t.Run("file a report", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPost, reportsPath, map[string]any{
			"kind":         "electrical",
			"outcome":      "satisfactory",
			"safety_score": 80,
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusCreated)
	})

	t.Run("mismatched outcome is a bad request", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPost, reportsPath, map[string]any{
			"kind":         "electrical",
			"outcome":      "good",
			"safety_score": 80,
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})

	t.Run("unknown kind is a bad request", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodPost, reportsPath, map[string]any{
			"kind":         "gas",
			"outcome":      "satisfactory",
			"safety_score": 80,
		})
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})

	t.Run("list with kind filter", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodGet, reportsPath+"?kind=electrical", nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			Reports []struct {
				Kind string `json:"kind"`
			} `json:"reports"`
		}
		decodeBody(t, rec, &body)
		gt.Array(t, body.Reports).Length(1)
		gt.Value(t, body.Reports[0].Kind).Equal("electrical")
	})

	t.Run("inspection score", func(t *testing.T) {
		// electrical safety 80 -> risk 20, drainage defaults to 50:
		// combined safety 65 -> risk 35
		rec := doJSON(t, srv, nethttp.MethodGet, fmt.Sprintf("/api/properties/%d/score", property.ID), nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			RiskScore   int `json:"risk_score"`
			SafetyScore int `json:"safety_score"`
		}
		decodeBody(t, rec, &body)
		gt.Value(t, body.RiskScore).Equal(35)
		gt.Value(t, body.SafetyScore).Equal(65)
	})

	t.Run("assessment derives from reports", func(t *testing.T) {
		// electrical risk 20 at 0.25, drainage neutral 50 at 0.20:
		// 5 + 10 = 15
		rec := doJSON(t, srv, nethttp.MethodGet, fmt.Sprintf("/api/properties/%d/assessment", property.ID), nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			OverallRiskScore int    `json:"overall_risk_score"`
			Tier             string `json:"tier"`
		}
		decodeBody(t, rec, &body)
		gt.Value(t, body.OverallRiskScore).Equal(15)
		gt.Value(t, body.Tier).Equal("LOW")
	})

	t.Run("manual scores via query", func(t *testing.T) {
		path := fmt.Sprintf("/api/properties/%d/assessment?score=operational_risk:100", property.ID)
		rec := doJSON(t, srv, nethttp.MethodGet, path, nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body struct {
			OverallRiskScore int `json:"overall_risk_score"`
		}
		decodeBody(t, rec, &body)
		// 5 + 10 + 0.15*100 = 30
		gt.Value(t, body.OverallRiskScore).Equal(30)
	})

	t.Run("malformed manual score is a bad request", func(t *testing.T) {
		path := fmt.Sprintf("/api/properties/%d/assessment?score=operational_risk", property.ID)
		rec := doJSON(t, srv, nethttp.MethodGet, path, nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})
}

func TestSummaryEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, nethttp.MethodGet, "/api/summary", nil)
	gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

	var body struct {
		ManagementScore int    `json:"management_score"`
		Grade           string `json:"grade"`
	}
	decodeBody(t, rec, &body)
	gt.Value(t, body.ManagementScore).Equal(500)
	gt.Value(t, body.Grade).Equal("Fair")

	t.Run("invalid premium is a bad request", func(t *testing.T) {
		rec := doJSON(t, srv, nethttp.MethodGet, "/api/summary?monthly_premium=abc", nil)
		gt.Value(t, rec.Code).Equal(nethttp.StatusBadRequest)
	})
}

func TestRecommendEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, nethttp.MethodPost, "/api/recommendations", map[string]any{
		"employee_count_range":  "Just me (1)",
		"annual_turnover_range": "Under £50,000",
	})
	gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

	var body struct {
		PreliminaryRiskScore int    `json:"preliminary_risk_score"`
		RecommendedTier      string `json:"recommended_tier"`
	}
	decodeBody(t, rec, &body)
	gt.Value(t, body.PreliminaryRiskScore).Equal(50)
	gt.Value(t, body.RecommendedTier).Equal("FREE")
}
