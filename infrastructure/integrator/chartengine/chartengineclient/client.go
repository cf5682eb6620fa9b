package chartengineclient

import (
	"context"
	"net/http"
	"time"

	chartenginedomain "github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/domain"
	"github.com/vfg2006/analytics-forge-api/internal/config"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	Analyze(ctx context.Context, request chartenginedomain.AnalyzeRequest) (*chartenginedomain.AnalyzeResponse, error)
}

type ChartEngineClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente HTTP do motor de gráficos. O timeout por chamada
// vem do contexto; o do http.Client é só o limite absoluto.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Engine.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ChartEngineClient{
		httpClient: &http.Client{
			Timeout: timeout + 5*time.Second,
		},
		baseURL: cfg.Engine.URL,
	}
}
