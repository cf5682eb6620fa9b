package rendering

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	HeadlineTotalRecords   = "Total Records"
	HeadlineMetricsTracked = "Metrics Tracked"
	HeadlineTotalGrowth    = "Total Growth"
	HeadlineLastAnalysis   = "Last Analysis"

	defaultMetricName = "General"
	lastAnalysisDate  = "Jan 2"
)

var printer = message.NewPrinter(language.English)

// Headline é um cartão de destaque do topo do dashboard
type Headline struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dashboard é o modelo de visualização completo de um registro
type Dashboard struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	ProjectType    string          `json:"project_type"`
	ProjectName    *string         `json:"project_name"`
	Headlines      []Headline      `json:"headlines"`
	Layout         Layout          `json:"layout"`
	Visualizations []Visualization `json:"visualizations"`
	Legacy         bool            `json:"legacy"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// RenderDashboard monta o dashboard de um registro. Registros sem charts_json
// usam os dois gráficos legados na grade de 2 colunas.
func RenderDashboard(summary *domain.SummaryRecord) Dashboard {
	dashboard := Dashboard{
		ID:          summary.ID,
		Title:       DashboardTitle(summary),
		ProjectType: summary.ProjectType,
		ProjectName: summary.ProjectName,
		Headlines:   Headlines(summary),
		CreatedAt:   summary.CreatedAt,
	}

	charts := summary.Charts
	if charts == nil {
		dashboard.Legacy = true
		charts = charting.FallbackForSummary(summary)
		dashboard.Layout = DefaultLayout(len(charts))
	} else {
		dashboard.Layout = LayoutFor(summary.ProjectType, charts)
	}

	dashboard.Visualizations = make([]Visualization, 0, len(charts))
	for i, chart := range charts {
		dashboard.Visualizations = append(dashboard.Visualizations, Render(chart, Options{
			Compact: dashboard.Layout.Slots[i].Compact,
		}))
	}

	return dashboard
}

// DashboardTitle usa o nome do projeto ou "<Tipo> Analytics Dashboard"
func DashboardTitle(summary *domain.SummaryRecord) string {
	if summary.ProjectName != nil && *summary.ProjectName != "" {
		return *summary.ProjectName
	}
	return fmt.Sprintf("%s Analytics Dashboard", utils.FormatTitle(summary.ProjectType))
}

// Headlines monta os quatro cartões. KPIs do motor são lidos por posição;
// o formato legado usa o resumo do agregador.
func Headlines(summary *domain.SummaryRecord) []Headline {
	return []Headline{
		{Label: HeadlineTotalRecords, Value: totalRecords(summary)},
		{Label: HeadlineMetricsTracked, Value: metricsTracked(summary.KPIs)},
		{Label: HeadlineTotalGrowth, Value: totalGrowth(summary.KPIs)},
		{Label: HeadlineLastAnalysis, Value: summary.CreatedAt.Format(lastAnalysisDate)},
	}
}

func totalRecords(summary *domain.SummaryRecord) string {
	fallback := float64(len(summary.Monthly))

	if summary.KPIs.IsLabeled() {
		for _, kpi := range summary.KPIs.Labeled {
			if kpi.Label == HeadlineTotalRecords {
				if v := toNumber(kpi.Value); v != 0 {
					return formatLocale(v)
				}
				break
			}
		}
		return formatLocale(fallback)
	}

	if kpi := summary.LegacyKPI(); kpi != nil && kpi.TotalRevenue != 0 {
		return formatLocale(kpi.TotalRevenue)
	}
	return formatLocale(fallback)
}

func metricsTracked(kpis *domain.KPIPayload) string {
	if kpis.IsLabeled() {
		if len(kpis.Labeled) > 1 {
			return strings.Replace(kpis.Labeled[1].Label, "Total ", "", 1)
		}
		return defaultMetricName
	}

	if kpis != nil && kpis.Summary != nil && kpis.Summary.PrimaryMetric != "" {
		return kpis.Summary.PrimaryMetric
	}
	return defaultMetricName
}

func totalGrowth(kpis *domain.KPIPayload) string {
	if kpis.IsLabeled() && len(kpis.Labeled) > 2 {
		switch v := kpis.Labeled[2].Value.(type) {
		case string:
			return v
		default:
			return formatLocale(toNumber(v))
		}
	}

	growth := 0.0
	if kpis != nil && kpis.Summary != nil {
		growth = kpis.Summary.Growth
	}
	return fmt.Sprintf("%.1f%%", growth)
}

// formatLocale agrupa milhares e mantém até 3 casas decimais
func formatLocale(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
