package chartenginedomain

import "github.com/vfg2006/analytics-forge-api/internal/domain"

// AnalyzeRequest é o corpo do POST /analyze
type AnalyzeRequest struct {
	Data        domain.Dataset `json:"data"`
	ProjectType string         `json:"projectType"`
}

// AnalyzeResponse é a resposta do motor; a forma é a mesma da recomendação interna
type AnalyzeResponse = domain.Recommendation
