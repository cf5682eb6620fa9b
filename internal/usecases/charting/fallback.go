package charting

import (
	"fmt"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
)

const (
	FallbackTrendTitle = "Metric Trends"
	defaultCategory    = "Category"
)

// FallbackCharts monta os dois gráficos legados a partir dos agregados:
// tendência mensal em linha e distribuição por categoria em pizza.
func FallbackCharts(monthly []domain.MonthlyPoint, category []domain.NamedValue, kpi *domain.KPISummary) []domain.ChartSpec {
	categoryMetric := defaultCategory
	if kpi != nil && kpi.CategoryMetric != "" {
		categoryMetric = kpi.CategoryMetric
	}

	trend := make([]domain.Record, 0, len(monthly))
	for _, point := range monthly {
		trend = append(trend, domain.Record{"month": point.Month, "value": point.Value})
	}

	distribution := make([]domain.Record, 0, len(category))
	for _, item := range category {
		distribution = append(distribution, domain.Record{"name": item.Name, "value": item.Value})
	}

	return []domain.ChartSpec{
		{
			Type:  domain.ChartLine,
			Title: FallbackTrendTitle,
			X:     "month",
			Y:     "value",
			Data:  trend,
		},
		{
			Type:    domain.ChartPie,
			Title:   fmt.Sprintf("%s Distribution", categoryMetric),
			X:       "name",
			Y:       "value",
			DataKey: "value",
			NameKey: "name",
			Data:    distribution,
		},
	}
}

// FallbackForSummary aplica FallbackCharts sobre um registro persistido
func FallbackForSummary(summary *domain.SummaryRecord) []domain.ChartSpec {
	return FallbackCharts(summary.Monthly, summary.Category, summary.LegacyKPI())
}
