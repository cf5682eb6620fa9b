package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-forge-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/rendering"
	"github.com/vfg2006/analytics-forge-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAnalyticsRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockDashboardService(ctrl)
	rt := router.New(router.WithRoutes(Analytics(mockService)...))

	createdAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		setup      func()
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "último resumo do tipo",
			path: "/api/analytics/summary/retail",
			setup: func() {
				mockService.EXPECT().GetLatest(gomock.Any(), "retail").Return(&domain.SummaryRecord{
					ID:          "sum-1",
					ProjectType: "retail",
					Monthly:     []domain.MonthlyPoint{{Month: "Jan", Value: 10}},
					CreatedAt:   createdAt,
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				assert.Equal(t, "sum-1", body["id"])
				assert.Equal(t, []any{map[string]any{"month": "Jan", "value": 10.0}}, body["summary_json"])
				assert.Nil(t, body["charts_json"])
				assert.NotContains(t, body, "ChartsVersion")
			},
		},
		{
			name: "tipo sem dados",
			path: "/api/analytics/summary/desconhecido",
			setup: func() {
				mockService.EXPECT().GetLatest(gomock.Any(), "desconhecido").
					Return(nil, dashboarding.NewDashboardError(dashboarding.ErrSummaryNotFound, apiErrors.ErrDataNotFound, ""))
			},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				assert.Equal(t, apiErrors.ErrDataNotFound, body["code"])
				assert.Equal(t, "No data found", body["message"])
			},
		},
		{
			name: "erro de banco vira 500",
			path: "/api/analytics/id/sum-1",
			setup: func() {
				mockService.EXPECT().GetByID(gomock.Any(), "sum-1").
					Return(nil, dashboarding.NewDashboardError(dashboarding.ErrPersistence, apiErrors.ErrDatabaseOperation, "timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeBody(t, rec)["code"])
			},
		},
		{
			name: "erro inesperado vira 500",
			path: "/api/analytics/id/sum-2",
			setup: func() {
				mockService.EXPECT().GetByID(gomock.Any(), "sum-2").Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInternalServer, decodeBody(t, rec)["code"])
			},
		},
		{
			name: "dashboard renderizado",
			path: "/api/analytics/id/sum-1/render",
			setup: func() {
				mockService.EXPECT().Render(gomock.Any(), "sum-1").Return(&rendering.Dashboard{
					ID:    "sum-1",
					Title: "Retail Analytics Dashboard",
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Retail Analytics Dashboard", decodeBody(t, rec)["title"])
			},
		},
		{
			name: "lista de dashboards",
			path: "/api/analytics/dashboards",
			setup: func() {
				mockService.EXPECT().ListDashboards(gomock.Any()).Return([]*domain.DashboardListItem{
					{ProjectType: "retail", LatestID: "sum-1", LatestCreatedAt: createdAt},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var items []map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
				require.Len(t, items, 1)
				assert.Equal(t, "sum-1", items[0]["latest_id"])
				assert.Nil(t, items[0]["project_name"])
			},
		},
		{
			name: "status",
			path: "/api/analytics/status/sum-1",
			setup: func() {
				mockService.EXPECT().Status(gomock.Any(), "sum-1").Return(&dashboarding.StatusResponse{Status: dashboarding.StatusCompleted}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"status":"completed"}`, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			tt.validate(t, rec)
		})
	}
}
