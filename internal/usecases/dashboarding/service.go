// Package dashboarding orquestra o upload de CSVs e a leitura dos dashboards gerados.
package dashboarding

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/analytics-forge-api/infrastructure/repository"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/aggregating"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/classifying"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/normalizing"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/rendering"
	"github.com/vfg2006/analytics-forge-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

type Service struct {
	rawRepo            repository.RawDataRepository
	processedRepo      repository.ProcessedDataRepository
	summaryRepo        repository.SummaryRepository
	builder            *charting.Builder
	repairer           *charting.Repairer
	defaultProjectType string
}

func NewService(
	rawRepo repository.RawDataRepository,
	processedRepo repository.ProcessedDataRepository,
	summaryRepo repository.SummaryRepository,
	builder *charting.Builder,
	defaultProjectType string,
) *Service {
	if strings.TrimSpace(defaultProjectType) == "" {
		defaultProjectType = domain.DefaultProjectType
	}

	return &Service{
		rawRepo:            rawRepo,
		processedRepo:      processedRepo,
		summaryRepo:        summaryRepo,
		builder:            builder,
		repairer:           charting.NewRepairer(builder, processedRepo, summaryRepo),
		defaultProjectType: defaultProjectType,
	}
}

var _ DashboardService = (*Service)(nil)

// Ingest executa o pipeline completo de um upload e persiste os três registros.
// Falhas do motor de gráficos não interrompem o upload.
func (s *Service) Ingest(ctx context.Context, request IngestRequest) (*IngestResult, error) {
	projectType := strings.TrimSpace(request.ProjectType)
	if projectType == "" {
		projectType = s.defaultProjectType
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"project_type": projectType,
		"filename":     request.Filename,
		"rows":         len(request.Rows),
	})

	raw := &domain.RawDataRecord{
		ProjectType: projectType,
		ProjectName: request.ProjectName,
		Filename:    request.Filename,
		Rows:        request.Rows,
	}
	if err := s.rawRepo.Create(ctx, raw); err != nil {
		logger.WithError(err).Error("upload: erro ao salvar dados brutos")
		return nil, NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, errors.Wrap(err, "Falha ao salvar dados brutos").Error())
	}

	cleaned := normalizing.Normalize(request.Rows)

	processed := &domain.ProcessedDataRecord{
		ProjectType:  projectType,
		ProjectName:  request.ProjectName,
		Rows:         cleaned,
		SourceFileID: raw.ID,
	}
	if err := s.processedRepo.Create(ctx, processed); err != nil {
		logger.WithError(err).Error("upload: erro ao salvar dados processados")
		return nil, NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, errors.Wrap(err, "Falha ao salvar dados processados").Error())
	}

	classification := classifying.Classify(cleaned)
	aggregate := aggregating.Aggregate(cleaned, classification)
	built := s.builder.Build(ctx, cleaned, projectType, aggregate)

	summary := &domain.SummaryRecord{
		ProjectType: projectType,
		ProjectName: request.ProjectName,
		Monthly:     nonNilMonthly(aggregate.Monthly),
		Category:    aggregate.Category,
		Gender:      aggregate.Gender,
		Scatter:     aggregate.Scatter,
		KPIs:        built.KPIs,
		Charts:      built.Charts,
	}
	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		logger.WithError(err).Error("upload: erro ao salvar resumo")
		return nil, NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, errors.Wrap(err, "Falha ao salvar resumo").Error())
	}

	logger.WithFields(log.Fields{
		"summary_id": summary.ID,
		"cleaned":    len(cleaned),
		"charts":     len(built.Charts),
	}).Info("upload: arquivo processado")

	return &IngestResult{
		Message:          IngestMessage,
		RowsProcessed:    len(cleaned),
		Summary:          aggregate,
		SummaryID:        summary.ID,
		ProjectType:      projectType,
		TrendJSON:        summary.Monthly,
		DynamicAnalytics: built.Recommendation,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.SummaryRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewDashboardError(ErrSummaryIDRequired, apiErrors.ErrMissingRequiredData, "ID do resumo é obrigatório")
	}

	summary, err := s.summaryRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{"summary_id": id}).Error("analytics: erro ao buscar resumo")
		return nil, NewDashboardErrorWithID(ErrPersistence, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar resumo no banco de dados")
	}

	if summary == nil {
		return nil, NewDashboardErrorWithID(ErrSummaryNotFound, apiErrors.ErrDataNotFound, id, "")
	}

	return summary, nil
}

// GetLatest devolve o último resumo do tipo, reparando boxPlots vazios antes de responder
func (s *Service) GetLatest(ctx context.Context, projectType string) (*domain.SummaryRecord, error) {
	if strings.TrimSpace(projectType) == "" {
		return nil, NewDashboardError(ErrProjectTypeRequired, apiErrors.ErrMissingRequiredData, "Tipo de projeto é obrigatório")
	}

	summary, err := s.summaryRepo.GetLatestByProjectType(ctx, projectType)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{"project_type": projectType}).Error("analytics: erro ao buscar último resumo")
		return nil, NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, "Falha ao buscar resumo no banco de dados")
	}

	if summary == nil {
		return nil, NewDashboardError(ErrSummaryNotFound, apiErrors.ErrDataNotFound, "")
	}

	return s.repairer.Repair(ctx, summary), nil
}

func (s *Service) ListDashboards(ctx context.Context) ([]*domain.DashboardListItem, error) {
	items, err := s.summaryRepo.ListLatest(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("analytics: erro ao listar dashboards")
		return nil, NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, "Falha ao listar dashboards no banco de dados")
	}

	if items == nil {
		items = []*domain.DashboardListItem{}
	}

	return items, nil
}

func (s *Service) ListProjectTypes(ctx context.Context) ([]string, error) {
	projectTypes, err := s.summaryRepo.ListProjectTypes(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("analytics: erro ao listar tipos de projeto")
		return nil, NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, "Falha ao listar tipos de projeto")
	}

	return projectTypes, nil
}

// Status só confirma a existência do resumo: o processamento é síncrono
func (s *Service) Status(ctx context.Context, id string) (*StatusResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return &StatusResponse{Status: StatusCompleted}, nil
}

func (s *Service) Render(ctx context.Context, id string) (*rendering.Dashboard, error) {
	summary, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dashboard := rendering.RenderDashboard(summary)
	return &dashboard, nil
}

func nonNilMonthly(points []domain.MonthlyPoint) []domain.MonthlyPoint {
	if points == nil {
		return []domain.MonthlyPoint{}
	}
	return points
}
