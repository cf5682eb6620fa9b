package chartengine

import (
	"context"

	"github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/chartengineclient"
	chartenginedomain "github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/domain"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

// ChartEngineIntegrator adapta o cliente HTTP ao contrato de Recommender
type ChartEngineIntegrator struct {
	Client chartengineclient.Client
}

var _ charting.Recommender = (*ChartEngineIntegrator)(nil)

func New(client chartengineclient.Client) *ChartEngineIntegrator {
	return &ChartEngineIntegrator{
		Client: client,
	}
}

func (s *ChartEngineIntegrator) Recommend(ctx context.Context, rows domain.Dataset, projectType string) (*domain.Recommendation, error) {
	if rows == nil {
		rows = domain.Dataset{}
	}

	resp, err := s.Client.Analyze(ctx, chartenginedomain.AnalyzeRequest{
		Data:        rows,
		ProjectType: projectType,
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"project_type": projectType,
		"status":       resp.Status,
		"charts":       len(resp.Charts),
	}).Debug("chartengine: resposta do motor recebida")

	return resp, nil
}
