package domain

import (
	"bytes"
	"fmt"
)

// LabeledKPI é um destaque numérico exibido no topo do dashboard.
// Value pode ser número ou texto já formatado (ex: "2.5000%").
type LabeledKPI struct {
	Label string `json:"label"`
	Value any    `json:"value"`
	Type  string `json:"type"`
}

// KPIPayload é o conteúdo da coluna kpi_json: ou a lista de KPIs do motor
// de gráficos, ou o resumo do agregador (formato legado).
type KPIPayload struct {
	Labeled []LabeledKPI
	Summary *KPISummary
}

func LabeledPayload(kpis []LabeledKPI) *KPIPayload {
	return &KPIPayload{Labeled: kpis}
}

func SummaryPayload(summary *KPISummary) *KPIPayload {
	return &KPIPayload{Summary: summary}
}

// IsLabeled indica se o payload veio do motor de gráficos
func (p *KPIPayload) IsLabeled() bool {
	return p != nil && p.Labeled != nil
}

func (p KPIPayload) MarshalJSON() ([]byte, error) {
	if p.Labeled != nil {
		return json.Marshal(p.Labeled)
	}
	if p.Summary != nil {
		return json.Marshal(p.Summary)
	}
	return []byte("{}"), nil
}

func (p *KPIPayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = KPIPayload{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var labeled []LabeledKPI
		if err := json.Unmarshal(trimmed, &labeled); err != nil {
			return fmt.Errorf("erro ao decodificar KPIs: %w", err)
		}
		*p = KPIPayload{Labeled: labeled}
	case '{':
		var summary KPISummary
		if err := json.Unmarshal(trimmed, &summary); err != nil {
			return fmt.Errorf("erro ao decodificar resumo de KPI: %w", err)
		}
		*p = KPIPayload{}
		if summary.PrimaryMetric != "" {
			p.Summary = &summary
		}
	default:
		return fmt.Errorf("formato de KPI não suportado")
	}

	return nil
}
