package domain

import "time"

const DefaultProjectType = "general"

// RawDataRecord guarda as linhas do CSV como foram lidas
type RawDataRecord struct {
	ID          string    `json:"id"`
	ProjectType string    `json:"project_type"`
	ProjectName *string   `json:"project_name"`
	Filename    string    `json:"filename"`
	Rows        Dataset   `json:"json_data"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ProcessedDataRecord guarda as linhas normalizadas de um upload
type ProcessedDataRecord struct {
	ID           string    `json:"id"`
	ProjectType  string    `json:"project_type"`
	ProjectName  *string   `json:"project_name"`
	Rows         Dataset   `json:"cleaned_json"`
	SourceFileID string    `json:"source_file_id"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SummaryRecord é o registro de dashboard: agregados + gráficos de um upload.
// Charts nulo significa que o motor não retornou gráficos (usa o fallback legado).
type SummaryRecord struct {
	ID            string         `json:"id"`
	ProjectType   string         `json:"project_type"`
	ProjectName   *string        `json:"project_name"`
	Monthly       []MonthlyPoint `json:"summary_json"`
	Category      []NamedValue   `json:"category_json"`
	Gender        []NamedValue   `json:"gender_json"`
	Scatter       []ScatterPoint `json:"scatter_json"`
	KPIs          *KPIPayload    `json:"kpi_json"`
	Charts        []ChartSpec    `json:"charts_json"`
	ChartsVersion int            `json:"-"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// LegacyKPI retorna o KPI do agregador quando o registro usa o formato legado
func (s *SummaryRecord) LegacyKPI() *KPISummary {
	if s.KPIs == nil {
		return nil
	}
	return s.KPIs.Summary
}

// DashboardListItem é uma entrada da listagem de dashboards
type DashboardListItem struct {
	ProjectType     string    `json:"project_type"`
	ProjectName     *string   `json:"project_name"`
	LatestCreatedAt time.Time `json:"latestCreatedAt"`
	LatestID        string    `json:"latest_id"`
}
