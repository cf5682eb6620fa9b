package domain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ChartType é o conjunto fechado de tipos de gráfico suportados
type ChartType string

const (
	ChartLine      ChartType = "line"
	ChartArea      ChartType = "area"
	ChartBar       ChartType = "bar"
	ChartScatter   ChartType = "scatter"
	ChartHistogram ChartType = "histogram"
	ChartBoxPlot   ChartType = "boxPlot"
	ChartTreemap   ChartType = "treemap"
	ChartPie       ChartType = "pie"
	ChartRadar     ChartType = "radar"
	ChartFunnel    ChartType = "funnel"
	ChartRadialBar ChartType = "radialBar"
)

// ChartTypes lista os tipos suportados na ordem canônica
var ChartTypes = []ChartType{
	ChartLine,
	ChartArea,
	ChartBar,
	ChartScatter,
	ChartHistogram,
	ChartBoxPlot,
	ChartTreemap,
	ChartPie,
	ChartRadar,
	ChartFunnel,
	ChartRadialBar,
}

// IsSupported indica se o tipo pertence ao conjunto conhecido.
// Tipos desconhecidos são preservados como texto e renderizados como aviso.
func (t ChartType) IsSupported() bool {
	for _, known := range ChartTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Record é um registro de dados de gráfico; o formato depende do tipo
type Record map[string]any

// Series é uma sub-ligação de um gráfico multi-série
type Series struct {
	Name    string   `json:"name"`
	DataKey string   `json:"dataKey,omitempty"`
	Fill    string   `json:"fill,omitempty"`
	Stroke  string   `json:"stroke,omitempty"`
	Data    []Record `json:"data,omitempty"`
}

// ChartSpec é a descrição declarativa de uma visualização
type ChartSpec struct {
	Type        ChartType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	X           string    `json:"x,omitempty"`
	Y           string    `json:"y,omitempty"`
	Y2          string    `json:"y2,omitempty"`
	DataKey     string    `json:"dataKey,omitempty"`
	NameKey     string    `json:"nameKey,omitempty"`
	Series      []Series  `json:"series,omitempty"`
	Data        []Record  `json:"data,omitempty"`
	Metrics     []string  `json:"metrics,omitempty"`
	AggType     string    `json:"agg_type,omitempty"`
	GroupCol    string    `json:"group_col,omitempty"`
}

// UnmarshalJSON tolera "data" que não seja lista: o gráfico fica sem dados
// e pode ser reparado depois.
func (c *ChartSpec) UnmarshalJSON(data []byte) error {
	type alias ChartSpec
	aux := struct {
		*alias
		Data jsoniter.RawMessage `json:"data"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.Data = nil
	raw := bytes.TrimSpace(aux.Data)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	records := []Record{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("erro ao decodificar dados do gráfico %q: %w", c.Title, err)
	}
	c.Data = records

	return nil
}

// MarshalJSON mantém "data": [] quando a lista existe mas está vazia;
// só a lista ausente some da saída.
func (c ChartSpec) MarshalJSON() ([]byte, error) {
	type alias ChartSpec
	if c.Data == nil || len(c.Data) > 0 {
		return json.Marshal(alias(c))
	}

	return json.Marshal(struct {
		alias
		Data []Record `json:"data"`
	}{alias: alias(c), Data: c.Data})
}

// HasData indica se o gráfico tem registros próprios
func (c ChartSpec) HasData() bool {
	return len(c.Data) > 0
}

// RecommendationMetadata acompanha a resposta do motor de gráficos
type RecommendationMetadata struct {
	RowCount int `json:"rowCount"`
}

// Recommendation é a resposta do serviço de recomendação de gráficos
type Recommendation struct {
	Status      string                 `json:"status"`
	ProjectType string                 `json:"projectType"`
	Analysis    *DatasetProfile        `json:"analysis,omitempty"`
	Charts      []ChartSpec            `json:"charts"`
	KPIs        []LabeledKPI           `json:"kpis"`
	Metadata    RecommendationMetadata `json:"metadata"`
}
