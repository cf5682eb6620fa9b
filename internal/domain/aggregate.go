package domain

// ColumnClassification é a visão derivada das colunas de um dataset.
// Campos de papel vazios significam "não encontrado".
type ColumnClassification struct {
	NumericKeys     []string `json:"numericKeys"`
	StringKeys      []string `json:"stringKeys"`
	RevenueKey      string   `json:"revenueKey,omitempty"`
	CategoryKey     string   `json:"categoryKey,omitempty"`
	GenderKey       string   `json:"genderKey,omitempty"`
	DateDerivedKeys []string `json:"dateDerivedKeys,omitempty"`
}

type MonthlyPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// KPISummary é o KPI calculado pelo agregador
type KPISummary struct {
	TotalRevenue   float64  `json:"totalRevenue"`
	Growth         float64  `json:"growth"`
	PrimaryMetric  string   `json:"primaryMetric"`
	CategoryMetric string   `json:"categoryMetric"`
	ScatterKeys    []string `json:"scatterKeys"`
}

// AggregateResult é a saída do agregador.
// KPI nulo indica dataset vazio e é serializado como {}.
type AggregateResult struct {
	Monthly  []MonthlyPoint `json:"monthly"`
	Category []NamedValue   `json:"category"`
	Gender   []NamedValue   `json:"gender"`
	Scatter  []ScatterPoint `json:"scatter"`
	KPI      *KPISummary    `json:"kpi"`
}

// EmptyAggregate é o resultado para um dataset sem linhas
func EmptyAggregate() AggregateResult {
	return AggregateResult{
		Monthly:  []MonthlyPoint{},
		Category: []NamedValue{},
		Gender:   []NamedValue{},
		Scatter:  []ScatterPoint{},
	}
}

func (a AggregateResult) MarshalJSON() ([]byte, error) {
	type alias struct {
		Monthly  []MonthlyPoint `json:"monthly"`
		Category []NamedValue   `json:"category"`
		Gender   []NamedValue   `json:"gender"`
		Scatter  []ScatterPoint `json:"scatter"`
		KPI      any            `json:"kpi"`
	}

	out := alias{
		Monthly:  nonNil(a.Monthly),
		Category: nonNil(a.Category),
		Gender:   nonNil(a.Gender),
		Scatter:  nonNil(a.Scatter),
		KPI:      struct{}{},
	}
	if a.KPI != nil {
		out.KPI = a.KPI
	}

	return json.Marshal(out)
}

func (a *AggregateResult) UnmarshalJSON(data []byte) error {
	type alias struct {
		Monthly  []MonthlyPoint `json:"monthly"`
		Category []NamedValue   `json:"category"`
		Gender   []NamedValue   `json:"gender"`
		Scatter  []ScatterPoint `json:"scatter"`
		KPI      *KPISummary    `json:"kpi"`
	}

	var in alias
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*a = AggregateResult{
		Monthly:  in.Monthly,
		Category: in.Category,
		Gender:   in.Gender,
		Scatter:  in.Scatter,
	}
	// {} é o KPI vazio
	if in.KPI != nil && in.KPI.PrimaryMetric != "" {
		a.KPI = in.KPI
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
