package charting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/analytics-forge-api/infrastructure/repository"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

// NeedsRepair indica se algum boxPlot persistido ficou sem dados
func NeedsRepair(charts []domain.ChartSpec) bool {
	for _, chart := range charts {
		if chart.Type == domain.ChartBoxPlot && !chart.HasData() {
			return true
		}
	}
	return false
}

// Repairer recalcula os gráficos de um registro a partir do último dado processado
// do mesmo tipo de projeto. A escrita é condicional à versão lida (charts_version).
type Repairer struct {
	builder       *Builder
	processedRepo repository.ProcessedDataRepository
	summaryRepo   repository.SummaryRepository
}

func NewRepairer(
	builder *Builder,
	processedRepo repository.ProcessedDataRepository,
	summaryRepo repository.SummaryRepository,
) *Repairer {
	return &Repairer{
		builder:       builder,
		processedRepo: processedRepo,
		summaryRepo:   summaryRepo,
	}
}

// Repair devolve o registro reparado, ou o original quando não há o que reparar
// ou quando o reparo falha. Falhas nunca são propagadas.
func (r *Repairer) Repair(ctx context.Context, summary *domain.SummaryRecord) *domain.SummaryRecord {
	if summary == nil || !NeedsRepair(summary.Charts) {
		return summary
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"summary_id":   summary.ID,
		"project_type": summary.ProjectType,
	})

	repaired, err := r.repair(ctx, summary)
	if err != nil {
		logger.WithError(err).Warn("repair: falha ao reparar boxPlot sem dados")
		return summary
	}

	if repaired != summary {
		logger.Info("repair: gráficos do dashboard atualizados")
	}

	return repaired
}

func (r *Repairer) repair(ctx context.Context, summary *domain.SummaryRecord) (*domain.SummaryRecord, error) {
	processed, err := r.processedRepo.GetLatestByProjectType(ctx, summary.ProjectType)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar dados processados")
	}

	if processed == nil || len(processed.Rows) == 0 {
		return summary, nil
	}

	recommendation, err := r.builder.Recommend(ctx, processed.Rows, summary.ProjectType)
	if err != nil {
		return nil, err
	}

	if len(recommendation.Charts) == 0 {
		return summary, nil
	}

	kpis := summary.KPIs
	if len(recommendation.KPIs) > 0 {
		kpis = domain.LabeledPayload(recommendation.KPIs)
	}

	updated, err := r.summaryRepo.ReplaceCharts(ctx, summary.ID, recommendation.Charts, kpis, summary.ChartsVersion)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar gráficos reparados")
	}

	if !updated {
		// outra requisição reparou antes: vale o que está no banco
		current, err := r.summaryRepo.GetByID(ctx, summary.ID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao recarregar dashboard")
		}
		if current == nil {
			return summary, nil
		}
		return current, nil
	}

	repaired := *summary
	repaired.Charts = recommendation.Charts
	repaired.KPIs = kpis
	repaired.ChartsVersion++
	repaired.UpdatedAt = time.Now().UTC()

	return &repaired, nil
}
