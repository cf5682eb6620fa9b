package dashboarding

import (
	"context"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/rendering"
)

const (
	StatusCompleted = "completed"
	IngestMessage   = "File uploaded and processed successfully"
)

// IngestRequest é o upload já lido: as linhas vêm do CSV sem coerção
type IngestRequest struct {
	ProjectType string
	ProjectName *string
	Filename    string
	Rows        domain.Dataset
}

// IngestResult é a resposta do upload
type IngestResult struct {
	Message          string                 `json:"message"`
	RowsProcessed    int                    `json:"rowsProcessed"`
	Summary          domain.AggregateResult `json:"summary"`
	SummaryID        string                 `json:"summary_id"`
	ProjectType      string                 `json:"project_type"`
	TrendJSON        []domain.MonthlyPoint  `json:"trend_json"`
	DynamicAnalytics *domain.Recommendation `json:"dynamicAnalytics"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// DashboardService define o contrato do caso de uso de dashboards
type DashboardService interface {
	Ingest(ctx context.Context, request IngestRequest) (*IngestResult, error)
	GetByID(ctx context.Context, id string) (*domain.SummaryRecord, error)
	GetLatest(ctx context.Context, projectType string) (*domain.SummaryRecord, error)
	ListDashboards(ctx context.Context) ([]*domain.DashboardListItem, error)
	ListProjectTypes(ctx context.Context) ([]string, error)
	Status(ctx context.Context, id string) (*StatusResponse, error)
	Render(ctx context.Context, id string) (*rendering.Dashboard, error)
}
