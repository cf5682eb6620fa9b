package charting

import (
	"context"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
)

// StatusSuccess é o status de uma recomendação válida
const StatusSuccess = "success"

// Recommender define o contrato do motor de recomendação de gráficos.
// Existem duas implementações: o cliente HTTP do serviço externo e o motor embutido.
type Recommender interface {
	// Recommend analisa as linhas normalizadas e devolve gráficos e KPIs
	Recommend(ctx context.Context, rows domain.Dataset, projectType string) (*domain.Recommendation, error)
}
