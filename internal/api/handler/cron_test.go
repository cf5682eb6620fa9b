package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytics-forge-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/authenticating"
)

type fakeSyncer struct {
	triggered int
	accept    bool
}

func (f *fakeSyncer) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	noAuth := authenticating.NewService(&config.Config{})

	tests := []struct {
		name          string
		method        string
		path          string
		syncer        *fakeSyncer
		wantStatus    int
		wantTriggered int
	}{
		{name: "dispara reparo", method: http.MethodPost, path: "/api/cron/chart-repair/run", syncer: &fakeSyncer{accept: true}, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "all dispara reparo", method: http.MethodPost, path: "/api/cron/all/run", syncer: &fakeSyncer{accept: true}, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "já em execução", method: http.MethodPost, path: "/api/cron/chart-repair/run", syncer: &fakeSyncer{accept: false}, wantStatus: http.StatusConflict, wantTriggered: 1},
		{name: "tipo inválido", method: http.MethodPost, path: "/api/cron/meta/run", syncer: &fakeSyncer{accept: true}, wantStatus: http.StatusBadRequest},
		{name: "status", method: http.MethodGet, path: "/api/cron/status", syncer: &fakeSyncer{}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ChartRepairService: tt.syncer}, noAuth)...))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, tt.syncer.triggered)
		})
	}
}

func TestCronJobs_SemServico(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{}, nil)...))

	req := httptest.NewRequest(http.MethodPost, "/api/cron/chart-repair/run", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
