package chartengineclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	chartenginedomain "github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Analyze envia as linhas normalizadas para POST {URL}/analyze
func (c *ChartEngineClient) Analyze(ctx context.Context, request chartenginedomain.AnalyzeRequest) (*chartenginedomain.AnalyzeResponse, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/analyze")

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResponse chartenginedomain.ErrorResponse
		if err := json.Unmarshal(payload, &errorResponse); err == nil && errorResponse.Message() != "" {
			return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, errorResponse.Message())
		}
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response chartenginedomain.AnalyzeResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
