// Package aggregating calcula as séries e KPIs de um dataset classificado
package aggregating

import (
	"sort"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

const (
	// GrowthPlaceholder é o valor fixo do KPI de crescimento; não há previsão
	GrowthPlaceholder = 12.4

	MaxCategories     = 8
	MaxScatterPoints  = 100
	categoryNameLimit = 30

	totalGroup       = "Total"
	unknownGroup     = "Unknown"
	defaultPointName = "Point"
	defaultMetric    = "Value"
	defaultCategory  = "Category"
)

var monthGroupKeys = []string{"Month", "month", "Date", "date"}

// Aggregate é uma função pura: todo o estado de agrupamento vive nesta chamada
func Aggregate(rows domain.Dataset, cls domain.ColumnClassification) domain.AggregateResult {
	if len(rows) == 0 {
		return domain.EmptyAggregate()
	}

	return domain.AggregateResult{
		Monthly:  monthlySeries(rows, cls.RevenueKey),
		Category: categorySeries(rows, cls.CategoryKey, cls.RevenueKey),
		Gender:   genderSeries(rows, cls.GenderKey, cls.RevenueKey),
		Scatter:  scatterSample(rows, cls),
		KPI:      kpiSummary(rows, cls),
	}
}

// groupSums acumula somas preservando a ordem em que os grupos aparecem
type groupSums struct {
	order []string
	sums  map[string]float64
}

func newGroupSums() *groupSums {
	return &groupSums{sums: make(map[string]float64)}
}

func (g *groupSums) add(group string, value float64) {
	if _, ok := g.sums[group]; !ok {
		g.order = append(g.order, group)
	}
	g.sums[group] += value
}

func (g *groupSums) ranked() []domain.NamedValue {
	out := make([]domain.NamedValue, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, domain.NamedValue{Name: name, Value: g.sums[name]})
	}
	// estável: empates mantêm a ordem de aparição
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

func monthlySeries(rows domain.Dataset, revenueKey string) []domain.MonthlyPoint {
	groups := newGroupSums()
	for _, row := range rows {
		groups.add(monthGroup(row), metricValue(row, revenueKey))
	}

	out := make([]domain.MonthlyPoint, 0, len(groups.order))
	for _, month := range groups.order {
		out = append(out, domain.MonthlyPoint{
			Month: month,
			Value: utils.RoundHalfUp(groups.sums[month]),
		})
	}
	return out
}

func monthGroup(row domain.Row) string {
	for _, key := range monthGroupKeys {
		if v := row.Get(key); !v.IsBlank() {
			return v.String()
		}
	}
	return totalGroup
}

func categorySeries(rows domain.Dataset, categoryKey, revenueKey string) []domain.NamedValue {
	if categoryKey == "" {
		return []domain.NamedValue{}
	}

	groups := newGroupSums()
	for _, row := range rows {
		name := utils.Truncate(labelOr(row.Get(categoryKey), unknownGroup), categoryNameLimit)
		groups.add(name, metricValue(row, revenueKey))
	}

	ranked := groups.ranked()
	if len(ranked) > MaxCategories {
		ranked = ranked[:MaxCategories]
	}
	return ranked
}

func genderSeries(rows domain.Dataset, genderKey, revenueKey string) []domain.NamedValue {
	if genderKey == "" {
		return []domain.NamedValue{}
	}

	groups := newGroupSums()
	for _, row := range rows {
		groups.add(labelOr(row.Get(genderKey), unknownGroup), metricValue(row, revenueKey))
	}
	return groups.ranked()
}

func scatterSample(rows domain.Dataset, cls domain.ColumnClassification) []domain.ScatterPoint {
	if len(cls.NumericKeys) < 2 {
		return []domain.ScatterPoint{}
	}

	xKey, yKey := cls.NumericKeys[0], cls.NumericKeys[1]
	limit := min(len(rows), MaxScatterPoints)

	out := make([]domain.ScatterPoint, 0, limit)
	for _, row := range rows[:limit] {
		name := defaultPointName
		if cls.CategoryKey != "" {
			name = labelOr(row.Get(cls.CategoryKey), defaultPointName)
		}
		out = append(out, domain.ScatterPoint{
			X:    row.Get(xKey).FloatOrZero(),
			Y:    row.Get(yKey).FloatOrZero(),
			Name: name,
		})
	}
	return out
}

func kpiSummary(rows domain.Dataset, cls domain.ColumnClassification) *domain.KPISummary {
	total := 0.0
	for _, row := range rows {
		total += metricValue(row, cls.RevenueKey)
	}

	scatterKeys := cls.NumericKeys
	if len(scatterKeys) > 2 {
		scatterKeys = scatterKeys[:2]
	}

	kpi := &domain.KPISummary{
		TotalRevenue:   utils.RoundHalfUp(total),
		Growth:         GrowthPlaceholder,
		PrimaryMetric:  defaultMetric,
		CategoryMetric: defaultCategory,
		ScatterKeys:    append([]string{}, scatterKeys...),
	}
	if cls.RevenueKey != "" {
		kpi.PrimaryMetric = cls.RevenueKey
	}
	if cls.CategoryKey != "" {
		kpi.CategoryMetric = cls.CategoryKey
	}
	return kpi
}

// metricValue trata ausente, nulo e texto como 0
func metricValue(row domain.Row, key string) float64 {
	if key == "" {
		return 0
	}
	return row.Get(key).FloatOrZero()
}

// labelOr usa o fallback para nulo e texto vazio
func labelOr(v domain.Value, fallback string) string {
	if v.IsBlank() {
		return fallback
	}
	return v.String()
}
