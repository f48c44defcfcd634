package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/storesafe-app/storesafe/pkg/domain/interfaces"
	"github.com/storesafe-app/storesafe/pkg/domain/model"
	"github.com/storesafe-app/storesafe/pkg/domain/types"
	"github.com/storesafe-app/storesafe/pkg/scoring"
	"github.com/storesafe-app/storesafe/pkg/usecase"
	"github.com/storesafe-app/storesafe/pkg/utils/errutil"
	"github.com/storesafe-app/storesafe/pkg/utils/safe"
)

// statusForError maps domain errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scoring.ErrMissingCategoryScore),
		errors.Is(err, scoring.ErrUnknownCategory),
		errors.Is(err, scoring.ErrOutOfRangeInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(r.Context(), w, data)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}

func propertyIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "propertyID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid property ID", goerr.V("value", raw))
	}
	return id, nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func categoriesHandler(registry *scoring.Registry) http.HandlerFunc {
	type categoryResponse struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	}
	type response struct {
		Categories []categoryResponse `json:"categories"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		categories := registry.Categories()
		resp := response{
			Categories: make([]categoryResponse, len(categories)),
		}
		for i, c := range categories {
			resp.Categories[i] = categoryResponse{
				ID:     c.ID.String(),
				Name:   c.Name,
				Weight: c.Weight,
			}
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

type assessmentResponse struct {
	ID                 string             `json:"id"`
	PropertyID         int64              `json:"property_id,omitempty"`
	OverallRiskScore   int                `json:"overall_risk_score"`
	OverallSafetyScore int                `json:"overall_safety_score"`
	Tier               string             `json:"tier"`
	CategoryScores     map[string]float64 `json:"category_scores"`
	ComputedAt         time.Time          `json:"computed_at"`
}

func toAssessmentResponse(a *model.Assessment) assessmentResponse {
	scores := make(map[string]float64, len(a.CategoryScores))
	for id, score := range a.CategoryScores {
		scores[id.String()] = score
	}
	return assessmentResponse{
		ID:                 a.ID,
		PropertyID:         a.PropertyID,
		OverallRiskScore:   a.OverallRiskScore,
		OverallSafetyScore: a.OverallSafetyScore,
		Tier:               a.Tier.String(),
		CategoryScores:     scores,
		ComputedAt:         a.ComputedAt,
	}
}

func toScoreMap(scores map[string]float64) model.CategoryScoreMap {
	out := make(model.CategoryScoreMap, len(scores))
	for id, score := range scores {
		out[types.CategoryID(id)] = score
	}
	return out
}

func assessScoresHandler(uc *usecase.AssessmentUseCase) http.HandlerFunc {
	type request struct {
		CategoryScores map[string]float64 `json:"category_scores"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		assessment, err := uc.AssessScores(r.Context(), toScoreMap(req.CategoryScores))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusOK, toAssessmentResponse(assessment))
	}
}

func assessPropertyHandler(uc *usecase.AssessmentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		manual, err := manualScoresQuery(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		assessment, err := uc.AssessProperty(r.Context(), id, manual)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusOK, toAssessmentResponse(assessment))
	}
}

// manualScoresQuery reads repeated "score" query parameters of the form
// category_id:value, the caller-supplied inputs for categories without an
// inspection data source
func manualScoresQuery(r *http.Request) (model.CategoryScoreMap, error) {
	values := r.URL.Query()["score"]
	if len(values) == 0 {
		return nil, nil
	}

	manual := make(model.CategoryScoreMap, len(values))
	for _, v := range values {
		id, raw, ok := splitScoreParam(v)
		if !ok {
			return nil, goerr.New("score parameter must be category_id:value", goerr.V("value", v))
		}
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid score value", goerr.V("value", v))
		}
		manual[types.CategoryID(id)] = score
	}
	return manual, nil
}

func splitScoreParam(v string) (id, raw string, ok bool) {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] == ':' {
			return v[:i], v[i+1:], i > 0 && i < len(v)-1
		}
	}
	return "", "", false
}

func assessPortfolioHandler(uc *usecase.AssessmentUseCase) http.HandlerFunc {
	type response struct {
		Assessments []assessmentResponse `json:"assessments"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		manual, err := manualScoresQuery(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		assessments, err := uc.AssessPortfolio(r.Context(), manual)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		resp := response{Assessments: make([]assessmentResponse, len(assessments))}
		for i, a := range assessments {
			resp.Assessments[i] = toAssessmentResponse(a)
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

type propertyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Postcode  string    `json:"postcode"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPropertyResponse(p *model.Property) propertyResponse {
	return propertyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Postcode:  p.Postcode,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func createPropertyHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	type request struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Postcode string `json:"postcode"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("name is required"), http.StatusBadRequest)
			return
		}

		property, err := uc.CreateProperty(r.Context(), req.Name, req.Address, req.Postcode)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusCreated, toPropertyResponse(property))
	}
}

func listPropertiesHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	type response struct {
		Properties []propertyResponse `json:"properties"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := uc.ListProperties(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		resp := response{Properties: make([]propertyResponse, len(properties))}
		for i, p := range properties {
			resp.Properties[i] = toPropertyResponse(p)
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

func getPropertyHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		property, err := uc.GetProperty(r.Context(), id)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusOK, toPropertyResponse(property))
	}
}

func updatePropertyHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	type request struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Postcode string `json:"postcode"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("name is required"), http.StatusBadRequest)
			return
		}

		property, err := uc.UpdateProperty(r.Context(), &model.Property{
			ID:       id,
			Name:     req.Name,
			Address:  req.Address,
			Postcode: req.Postcode,
		})
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusOK, toPropertyResponse(property))
	}
}

func deletePropertyHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		if err := uc.DeleteProperty(r.Context(), id); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func inspectionScoreHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	type response struct {
		PropertyID  int64 `json:"property_id"`
		RiskScore   int   `json:"risk_score"`
		SafetyScore int   `json:"safety_score"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		risk, err := uc.InspectionScore(r.Context(), id)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusOK, response{
			PropertyID:  id,
			RiskScore:   risk,
			SafetyScore: scoring.RoundScore(scoring.RiskToSafety(float64(risk))),
		})
	}
}

type reportResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	Kind          string    `json:"kind"`
	SafetyScore   float64   `json:"safety_score"`
	Outcome       string    `json:"outcome"`
	HighRiskItems int       `json:"high_risk_items"`
	Overdue       bool      `json:"overdue"`
	InspectedAt   time.Time `json:"inspected_at"`
}

func toReportResponse(report *model.InspectionReport) reportResponse {
	return reportResponse{
		ID:            report.ID,
		PropertyID:    report.PropertyID,
		Kind:          report.Kind.String(),
		SafetyScore:   report.SafetyScore,
		Outcome:       report.Outcome.String(),
		HighRiskItems: report.HighRiskItems,
		Overdue:       report.Overdue,
		InspectedAt:   report.InspectedAt,
	}
}

func addReportHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	type request struct {
		Kind          string    `json:"kind"`
		SafetyScore   float64   `json:"safety_score"`
		Outcome       string    `json:"outcome"`
		HighRiskItems int       `json:"high_risk_items"`
		Overdue       bool      `json:"overdue"`
		InspectedAt   time.Time `json:"inspected_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		kind, err := types.ParseInspectionKind(req.Kind)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		report := &model.InspectionReport{
			PropertyID:    id,
			Kind:          kind,
			SafetyScore:   req.SafetyScore,
			Outcome:       types.ReportOutcome(req.Outcome),
			HighRiskItems: req.HighRiskItems,
			Overdue:       req.Overdue,
			InspectedAt:   req.InspectedAt,
		}
		if !report.Outcome.ValidFor(kind) {
			errutil.HandleHTTP(r.Context(), w,
				goerr.New("outcome does not match inspection kind",
					goerr.V("kind", kind), goerr.V("outcome", req.Outcome)),
				http.StatusBadRequest)
			return
		}

		created, err := uc.AddReport(r.Context(), report)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}
		respondJSON(w, r, http.StatusCreated, toReportResponse(created))
	}
}

func listReportsHandler(uc *usecase.PropertyUseCase) http.HandlerFunc {
	type response struct {
		Reports []reportResponse `json:"reports"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, err := propertyIDParam(r)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		var kind types.InspectionKind
		if raw := r.URL.Query().Get("kind"); raw != "" {
			kind, err = types.ParseInspectionKind(raw)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
				return
			}
		}

		reports, err := uc.ListReports(r.Context(), id, kind)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		resp := response{Reports: make([]reportResponse, len(reports))}
		for i, report := range reports {
			resp.Reports[i] = toReportResponse(report)
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

func summaryHandler(uc *usecase.ManagementUseCase) http.HandlerFunc {
	type response struct {
		ManagementScore        int     `json:"management_score"`
		Grade                  string  `json:"grade"`
		PropertiesCount        int     `json:"properties_count"`
		ElectricalReports      int     `json:"electrical_reports"`
		DrainageReports        int     `json:"drainage_reports"`
		OverdueInspections     int     `json:"overdue_inspections"`
		HighRiskItems          int     `json:"high_risk_items"`
		EstimatedAnnualSavings float64 `json:"estimated_annual_savings,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var monthlyPremium float64
		if raw := r.URL.Query().Get("monthly_premium"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid monthly_premium"), http.StatusBadRequest)
				return
			}
			monthlyPremium = v
		}

		summary, err := uc.PortfolioSummary(r.Context(), monthlyPremium)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusForError(err))
			return
		}

		respondJSON(w, r, http.StatusOK, response{
			ManagementScore:        summary.ManagementScore,
			Grade:                  summary.Grade.String(),
			PropertiesCount:        summary.Inputs.PropertiesCount,
			ElectricalReports:      summary.Inputs.ElectricalReportsCount,
			DrainageReports:        summary.Inputs.DrainageReportsCount,
			OverdueInspections:     summary.Inputs.OverdueInspectionsCount,
			HighRiskItems:          summary.Inputs.HighRiskItemsCount,
			EstimatedAnnualSavings: summary.EstimatedAnnualSavings,
		})
	}
}

func recommendHandler(uc *usecase.RecommendUseCase) http.HandlerFunc {
	type request struct {
		BusinessActivity     string   `json:"business_activity"`
		BuildingAgeRange     string   `json:"building_age_range"`
		ManagementExperience string   `json:"management_experience"`
		Qualifications       []string `json:"qualifications"`
		ComplianceItems      []string `json:"compliance_items"`
		EmployeeCountRange   string   `json:"employee_count_range"`
		AnnualTurnoverRange  string   `json:"annual_turnover_range"`
		SizeCategory         string   `json:"size_category"`
	}
	type response struct {
		PreliminaryRiskScore int    `json:"preliminary_risk_score"`
		RecommendedTier      string `json:"recommended_tier"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		rec := uc.Recommend(r.Context(), model.BusinessProfile{
			BusinessActivity:     req.BusinessActivity,
			BuildingAgeRange:     req.BuildingAgeRange,
			ManagementExperience: req.ManagementExperience,
			Qualifications:       req.Qualifications,
			ComplianceItems:      req.ComplianceItems,
			EmployeeCountRange:   req.EmployeeCountRange,
			AnnualTurnoverRange:  req.AnnualTurnoverRange,
			SizeCategory:         req.SizeCategory,
		})

		respondJSON(w, r, http.StatusOK, response{
			PreliminaryRiskScore: rec.PreliminaryRiskScore,
			RecommendedTier:      rec.Tier.String(),
		})
	}
}
