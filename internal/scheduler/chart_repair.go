// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
)

// LatestDashboards é o recorte do caso de uso de dashboards usado pela varredura.
// GetLatest já repara o registro quando necessário.
type LatestDashboards interface {
	ListProjectTypes(ctx context.Context) ([]string, error)
	GetLatest(ctx context.Context, projectType string) (*domain.SummaryRecord, error)
}

type ChartRepairConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ChartRepairResult resume uma varredura
type ChartRepairResult struct {
	Checked int `json:"checked"`
	Pending int `json:"pending"`
	Failed  int `json:"failed"`
}

type ChartRepairService struct {
	scheduler           *gocron.Scheduler
	dashboards          LatestDashboards
	config              ChartRepairConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          ChartRepairResult
}

func NewChartRepairService(dashboards LatestDashboards, cfg *config.Config) *ChartRepairService {
	repairConfig := ChartRepairConfig{
		CronSchedule: cfg.ChartRepair.CronSchedule, // Default: a cada 6 horas
		SyncEnabled:  cfg.ChartRepair.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": repairConfig.CronSchedule,
	}).Info("Configuração do agendador de reparo de gráficos carregada")

	return &ChartRepairService{
		scheduler:  gocron.NewScheduler(time.UTC),
		dashboards: dashboards,
		config:     repairConfig,
	}
}

func (s *ChartRepairService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de reparo de gráficos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reparo de gráficos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RepairAll(ctx); err != nil {
			logrus.WithError(err).Error("Erro na varredura de reparo de gráficos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reparo de gráficos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reparo de gráficos")
		s.scheduler.Stop()
	}()

	return nil
}

// RepairAll visita o último dashboard de cada tipo de projeto. Uma execução
// concorrente é ignorada e devolve resultado nulo.
func (s *ChartRepairService) RepairAll(ctx context.Context) (*ChartRepairResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Reparo de gráficos já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result := ChartRepairResult{}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de reparo de gráficos")

	projectTypes, err := s.dashboards.ListProjectTypes(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar tipos de projeto para reparo de gráficos")
		return nil, err
	}

	for _, projectType := range projectTypes {
		if ctx.Err() != nil {
			break
		}

		result.Checked++

		summary, err := s.dashboards.GetLatest(ctx, projectType)
		if err != nil {
			result.Failed++
			logrus.WithError(err).WithField("project_type", projectType).Error("ChartRepairService: erro ao carregar dashboard")
			continue
		}

		if summary != nil && charting.NeedsRepair(summary.Charts) {
			result.Pending++
		}
	}

	logrus.WithFields(logrus.Fields{
		"checked": result.Checked,
		"pending": result.Pending,
		"failed":  result.Failed,
	}).Info("Varredura de reparo de gráficos concluída")

	return &result, nil
}

// TriggerManualSync inicia manualmente uma varredura fora do agendamento
func (s *ChartRepairService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Reparo de gráficos já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando reparo manual de gráficos")
	go func() {
		if _, err := s.RepairAll(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no reparo manual de gráficos")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ChartRepairService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
