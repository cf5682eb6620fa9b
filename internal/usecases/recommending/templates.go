package recommending

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
)

const (
	maxCharts          = 4
	metricOverviewName = "Metric Overview"

	healthyColor = "#10b981"
	failedColor  = "#ef4444"

	aggRadarMean    = "radar_mean"
	aggMultiBarMean = "multi_bar_mean"
)

var (
	highPriorityMetrics   = []string{"emission", "revenue", "sales", "profit", "cost"}
	mediumPriorityMetrics = []string{"amount", "price", "value", "score", "salary", "expense"}
	demographicKeywords   = []string{"gender", "sex", "demographic"}
	dateNameKeywords      = []string{"date", "day", "month", "year", "created", "updated", "timestamp"}
	deviceKeywords        = []string{"device", "machine", "type", "product"}
	sensorExclusions      = []string{"failure", "record count", "id", "year", "udi", "no"}
)

// plan é o resultado de um template: gráficos ainda sem dados e KPIs prontos
type plan struct {
	charts []domain.ChartSpec
	kpis   []domain.LabeledKPI
}

func lower(name string) string {
	return strings.ToLower(name)
}

func firstColumn(columns []domain.ColumnProfile, match func(domain.ColumnProfile) bool) *domain.ColumnProfile {
	for i := range columns {
		if match(columns[i]) {
			return &columns[i]
		}
	}
	return nil
}

func filterColumns(columns []domain.ColumnProfile, match func(domain.ColumnProfile) bool) []domain.ColumnProfile {
	out := make([]domain.ColumnProfile, 0, len(columns))
	for _, c := range columns {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

func columnNames(columns []domain.ColumnProfile) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}

func isRecordCountOrID(name string) bool {
	l := lower(name)
	return strings.Contains(l, "record count") || strings.Contains(l, "id")
}

// maintenancePlan só se aplica quando existe uma coluna de falha.
// Devolve nil para que o template geral assuma.
func maintenancePlan(f *frame, profile *domain.DatasetProfile) *plan {
	columns := profile.Columns

	failure := firstColumn(columns, func(c domain.ColumnProfile) bool {
		return strings.Contains(lower(c.Name), "failure")
	})
	if failure == nil {
		return nil
	}

	device := firstColumn(columns, func(c domain.ColumnProfile) bool {
		l := lower(c.Name)
		return containsAny(l, deviceKeywords) && !strings.Contains(l, "failure") && !strings.Contains(l, "id")
	})

	sensors := filterColumns(columns, func(c domain.ColumnProfile) bool {
		return c.Type == domain.ColumnNumeric && !containsAny(lower(c.Name), sensorExclusions)
	})

	rows := profile.RowCount
	failures := int(sum(f.numbers(failure.Name)))
	failureRate := 0.0
	if rows > 0 {
		failureRate = float64(failures) / float64(rows) * 100
	}

	p := &plan{
		kpis: []domain.LabeledKPI{
			{Label: "Total Records", Value: rows, Type: "total"},
			{Label: "Total Failures", Value: failures, Type: "total"},
			{Label: "Failure Rate", Value: fmt.Sprintf("%.4f%%", failureRate), Type: "percentage"},
		},
	}

	if device != nil {
		p.kpis = append(p.kpis, domain.LabeledKPI{Label: "Device Types", Value: device.UniqueCount, Type: "count"})
	}

	if len(sensors) >= 3 {
		p.charts = append(p.charts, domain.ChartSpec{
			Type:        domain.ChartRadar,
			Title:       "Sensor Health Profile",
			Description: "Comparing average sensor readings for Healthy vs. Failed devices.",
			X:           "subject",
			Series: []domain.Series{
				{Name: "Healthy", DataKey: "0", Stroke: healthyColor, Fill: healthyColor},
				{Name: "Failed", DataKey: "1", Stroke: failedColor, Fill: failedColor},
			},
			Metrics:  columnNames(sensors[:min(5, len(sensors))]),
			AggType:  aggRadarMean,
			GroupCol: failure.Name,
		})
	}

	if device != nil {
		p.charts = append(p.charts, domain.ChartSpec{
			Type:        domain.ChartPie,
			Title:       "Device Type Distribution",
			Description: "Distribution of device types (L, M, H).",
			X:           device.Name,
			Y:           RecordCountColumn,
			DataKey:     RecordCountColumn,
			NameKey:     device.Name,
		})
	}

	if len(sensors) > 0 {
		p.charts = append(p.charts, domain.ChartSpec{
			Type:        domain.ChartBar,
			Title:       "Sensor Metrics Comparison",
			Description: "Side-by-side comparison of sensor values.",
			X:           "metric",
			Series: []domain.Series{
				{Name: "Healthy", DataKey: "0", Fill: healthyColor},
				{Name: "Failed", DataKey: "1", Fill: failedColor},
			},
			Metrics:  columnNames(sensors[:min(3, len(sensors))]),
			AggType:  aggMultiBarMean,
			GroupCol: failure.Name,
		})
	}

	return p
}

// generalPlan escolhe até quatro gráficos em slots: tendência, composição,
// distribuição e relação.
func generalPlan(f *frame, profile *domain.DatasetProfile) *plan {
	columns := profile.Columns
	rows := profile.RowCount

	numeric := filterColumns(columns, func(c domain.ColumnProfile) bool { return c.Type == domain.ColumnNumeric })
	categories := filterColumns(columns, func(c domain.ColumnProfile) bool { return c.IsCategorical })
	dates := filterColumns(columns, func(c domain.ColumnProfile) bool { return c.Type == domain.ColumnDate })

	if len(numeric) == 0 {
		maxRows, meanRows := float64(rows), float64(rows)/2
		numeric = []domain.ColumnProfile{{
			Name: RecordCountColumn,
			Type: domain.ColumnNumeric,
			Max:  &maxRows,
			Mean: &meanRows,
		}}
	}

	primary := pickPrimaryMetric(numeric)
	p := primary.Name

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].UniqueCount > categories[j].UniqueCount
	})

	var major *domain.ColumnProfile
	if len(categories) > 0 {
		major = &categories[0]
	}

	demographic := firstColumn(categories, func(c domain.ColumnProfile) bool {
		return containsAny(lower(c.Name), demographicKeywords)
	})

	var charts []domain.ChartSpec

	// tendência
	dateCol := firstColumn(dates, func(c domain.ColumnProfile) bool {
		return containsAny(lower(c.Name), dateNameKeywords)
	})
	ordinal := firstColumn(numeric, func(c domain.ColumnProfile) bool {
		return c.Name != p && c.UniqueCount >= 5 && c.UniqueCount <= 50 && !isRecordCountOrID(c.Name)
	})

	switch {
	case dateCol != nil:
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartLine,
			Title:       fmt.Sprintf("%s Trend", p),
			X:           dateCol.Name,
			Y:           p,
			Description: fmt.Sprintf("Timeline of %s over %s.", p, dateCol.Name),
			DataKey:     p,
		})
	case ordinal != nil:
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartLine,
			Title:       fmt.Sprintf("%s by %s", p, ordinal.Name),
			X:           ordinal.Name,
			Y:           p,
			Description: fmt.Sprintf("%s grouped by %s.", p, ordinal.Name),
			DataKey:     p,
		})
	case major != nil && major.UniqueCount > 10:
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartBar,
			Title:       fmt.Sprintf("Top %s by %s", p, major.Name),
			X:           major.Name,
			Y:           p,
			Description: fmt.Sprintf("Ranking top %s by %s.", major.Name, p),
			DataKey:     p,
		})
	default:
		axis := "Item"
		if major != nil {
			axis = major.Name
		}
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartBar,
			Title:       fmt.Sprintf("%s Overview", p),
			X:           axis,
			Y:           p,
			Description: "General overview.",
			DataKey:     p,
		})
	}

	// composição
	pieCategory := demographic
	if pieCategory == nil {
		pieCategory = firstColumn(categories, func(c domain.ColumnProfile) bool {
			return c.UniqueCount >= 2 && c.UniqueCount <= 8
		})
	}
	treemapCategory := firstColumn(categories, func(c domain.ColumnProfile) bool {
		return c.UniqueCount > 10 && c.UniqueCount < 50
	})

	switch {
	case pieCategory != nil:
		y := p
		if rc := firstColumn(numeric, func(c domain.ColumnProfile) bool {
			return strings.Contains(lower(c.Name), "record count")
		}); rc != nil {
			y = rc.Name
		}
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartPie,
			Title:       fmt.Sprintf("Distribution by %s", pieCategory.Name),
			X:           pieCategory.Name,
			Y:           y,
			Description: fmt.Sprintf("Breakdown of records by %s.", pieCategory.Name),
		})
	case treemapCategory != nil:
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartTreemap,
			Title:       fmt.Sprintf("%s Heatmap", p),
			X:           treemapCategory.Name,
			Y:           p,
			Description: fmt.Sprintf("Density view of %s across %s.", p, treemapCategory.Name),
		})
	case major != nil:
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartPie,
			Title:       fmt.Sprintf("Distribution by %s", major.Name),
			X:           major.Name,
			Y:           p,
			Description: fmt.Sprintf("Distribution by %s.", major.Name),
		})
	}

	// distribuição: só categorias de texto entram no eixo do boxPlot
	boxCategory := firstColumn(categories, func(c domain.ColumnProfile) bool {
		return c.Type == domain.ColumnString && c.UniqueCount >= 2 && c.UniqueCount <= 15 && c.Name != p
	})

	if boxCategory != nil {
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartBoxPlot,
			Title:       fmt.Sprintf("%s Distribution by %s", p, boxCategory.Name),
			X:           boxCategory.Name,
			Y:           p,
			Description: "Statistical distribution (min, max, median) by category.",
		})
	} else if bins := histogram(f.numbers(p), histogramBins); len(bins) > 0 {
		data := make([]domain.Record, len(bins))
		for i, bin := range bins {
			data[i] = domain.Record{"range": bin.Range, "count": bin.Count}
		}
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartHistogram,
			Title:       fmt.Sprintf("%s Frequencies", p),
			Data:        data,
			X:           "range",
			Y:           "count",
			Description: fmt.Sprintf("Frequency distribution of %s.", p),
		})
	}

	// relação
	secondary := firstColumn(numeric, func(c domain.ColumnProfile) bool {
		return c.Name != p && !isRecordCountOrID(c.Name)
	})

	switch {
	case secondary != nil:
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartScatter,
			Title:       fmt.Sprintf("%s vs %s", p, secondary.Name),
			X:           p,
			Y:           secondary.Name,
			Description: "Correlation analysis between metrics.",
		})
	case len(categories) > 1:
		second := categories[1]
		charts = append(charts, domain.ChartSpec{
			Type:        domain.ChartBar,
			Title:       fmt.Sprintf("Analysis by %s", second.Name),
			X:           second.Name,
			Y:           p,
			Description: fmt.Sprintf("Secondary view by %s.", second.Name),
		})
	}

	final := dedupeCharts(charts)
	if len(final) < maxCharts && !hasTitle(final, metricOverviewName) {
		axis := "Category"
		if major != nil {
			axis = major.Name
		}
		final = append(final, domain.ChartSpec{
			Type:        domain.ChartBar,
			Title:       metricOverviewName,
			X:           axis,
			Y:           p,
			Description: "Overview of primary metrics.",
		})
	}

	return &plan{
		charts: final,
		kpis:   generalKPIs(f, rows, primary, numeric, major),
	}
}

func pickPrimaryMetric(numeric []domain.ColumnProfile) domain.ColumnProfile {
	if c := firstColumn(numeric, func(c domain.ColumnProfile) bool {
		return containsAny(lower(c.Name), highPriorityMetrics)
	}); c != nil {
		return *c
	}

	if c := firstColumn(numeric, func(c domain.ColumnProfile) bool {
		return containsAny(lower(c.Name), mediumPriorityMetrics)
	}); c != nil {
		return *c
	}

	if c := firstColumn(numeric, func(c domain.ColumnProfile) bool {
		return c.Max != nil && *c.Max > 100 && !isRecordCountOrID(c.Name)
	}); c != nil {
		return *c
	}

	return numeric[0]
}

// dedupeCharts mantém o primeiro gráfico de cada título, no máximo quatro
func dedupeCharts(charts []domain.ChartSpec) []domain.ChartSpec {
	out := make([]domain.ChartSpec, 0, maxCharts)
	for _, chart := range charts {
		if len(out) == maxCharts {
			break
		}
		if hasTitle(out, chart.Title) {
			continue
		}
		out = append(out, chart)
	}
	return out
}

func hasTitle(charts []domain.ChartSpec, title string) bool {
	for _, chart := range charts {
		if chart.Title == title {
			return true
		}
	}
	return false
}

func generalKPIs(
	f *frame,
	rows int,
	primary domain.ColumnProfile,
	numeric []domain.ColumnProfile,
	major *domain.ColumnProfile,
) []domain.LabeledKPI {
	kpis := []domain.LabeledKPI{
		{Label: "Total Records", Value: rows, Type: "total"},
	}

	metric := primary.Name
	if strings.Contains(lower(metric), "record count") {
		if alt := firstColumn(numeric, func(c domain.ColumnProfile) bool {
			return !isRecordCountOrID(c.Name)
		}); alt != nil {
			metric = alt.Name
		}
	}

	if !strings.Contains(lower(metric), "record count") {
		values := f.numbers(metric)
		avg, _ := mean(values)
		kpis = append(kpis,
			domain.LabeledKPI{Label: fmt.Sprintf("Total %s", metric), Value: sum(values), Type: "total"},
			domain.LabeledKPI{Label: fmt.Sprintf("Average %s", metric), Value: avg, Type: "average"},
		)
	}

	if major != nil {
		kpis = append(kpis, domain.LabeledKPI{
			Label: fmt.Sprintf("%s Count", major.Name),
			Value: f.uniqueCount(major.Name),
			Type:  "count",
		})
	}

	return kpis
}
