// Package charting decide quais gráficos acompanham um upload e mantém
// os gráficos persistidos consistentes.
package charting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

var (
	ErrEmptyRecommendation = errors.New("motor de gráficos não retornou resposta")
	ErrUnexpectedStatus    = errors.New("status inesperado do motor de gráficos")
)

// Result é o que o Builder decidiu persistir para um upload.
// Charts nulo indica que o renderizador deve usar o fallback legado.
type Result struct {
	Charts         []domain.ChartSpec
	KPIs           *domain.KPIPayload
	Recommendation *domain.Recommendation
}

type Builder struct {
	recommender Recommender
	timeout     time.Duration
}

func NewBuilder(recommender Recommender, timeout time.Duration) *Builder {
	return &Builder{
		recommender: recommender,
		timeout:     timeout,
	}
}

// Build nunca falha: qualquer erro do motor é registrado e o resultado cai
// nos agregados locais.
func (b *Builder) Build(
	ctx context.Context,
	rows domain.Dataset,
	projectType string,
	aggregate domain.AggregateResult,
) Result {
	result := Result{KPIs: domain.SummaryPayload(aggregate.KPI)}

	if len(rows) == 0 {
		return result
	}

	recommendation, err := b.Recommend(ctx, rows, projectType)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"project_type": projectType,
			"rows":         len(rows),
			"error":        err.Error(),
		}).Warn("charting: motor de gráficos indisponível, usando agregados locais")
		return result
	}

	result.Recommendation = recommendation

	if len(recommendation.Charts) > 0 {
		result.Charts = recommendation.Charts
	}

	if len(recommendation.KPIs) > 0 {
		result.KPIs = domain.LabeledPayload(recommendation.KPIs)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"project_type": projectType,
		"charts":       len(recommendation.Charts),
		"kpis":         len(recommendation.KPIs),
	}).Debug("charting: recomendação recebida")

	return result
}

// Recommend chama o motor com o timeout configurado e valida o status da resposta
func (b *Builder) Recommend(ctx context.Context, rows domain.Dataset, projectType string) (*domain.Recommendation, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	recommendation, err := b.recommender.Recommend(ctx, rows, projectType)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar motor de gráficos")
	}

	if recommendation == nil {
		return nil, ErrEmptyRecommendation
	}

	if recommendation.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedStatus, recommendation.Status)
	}

	return recommendation, nil
}
