// Package recommending é o motor local de recomendação de gráficos: perfila
// as colunas do dataset, escolhe os gráficos por template e calcula os dados.
package recommending

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

var ErrEmptyDataset = errors.New("dataset vazio")

// Engine implementa charting.Recommender sem depender do serviço externo
type Engine struct{}

var _ charting.Recommender = (*Engine)(nil)

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Recommend(ctx context.Context, rows domain.Dataset, projectType string) (*domain.Recommendation, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := newFrame(rows)
	profile := profileFrame(f)

	var p *plan
	if strings.Contains(strings.ToLower(projectType), "maint") {
		p = maintenancePlan(f, profile)
	}
	if p == nil {
		p = generalPlan(f, profile)
	}

	for i := range p.charts {
		fillChart(f, &p.charts[i])
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"project_type": projectType,
		"rows":         f.rows,
		"columns":      len(f.columns),
		"charts":       len(p.charts),
	}).Debug("recommending: gráficos recomendados")

	charts := p.charts
	if charts == nil {
		charts = []domain.ChartSpec{}
	}

	return &domain.Recommendation{
		Status:      charting.StatusSuccess,
		ProjectType: projectType,
		Analysis:    profile,
		Charts:      charts,
		KPIs:        p.kpis,
		Metadata:    domain.RecommendationMetadata{RowCount: f.rows},
	}, nil
}
