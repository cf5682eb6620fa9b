package recommending

import (
	"sort"
	"time"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

const (
	topCategories  = 10
	maxLinePoints  = 50
	maxScatter     = 100
	maxBoxCategory = 20
	valueColumn    = "value"
	categoryKey    = "category"
	monthYear      = "Jan 2006"
)

// fillChart calcula os dados de um gráfico a partir do frame.
// Gráficos cujas colunas não existem ficam sem dados.
func fillChart(f *frame, chart *domain.ChartSpec) {
	switch {
	case chart.AggType == aggRadarMean || chart.AggType == aggMultiBarMean:
		fillGroupMeans(f, chart)
	case chart.Type == domain.ChartBar || chart.Type == domain.ChartPie || chart.Type == domain.ChartTreemap:
		fillCategorySums(f, chart)
	case chart.Type == domain.ChartLine || chart.Type == domain.ChartArea:
		fillLine(f, chart)
	case chart.Type == domain.ChartScatter:
		fillScatter(f, chart)
	case chart.Type == domain.ChartBoxPlot:
		fillBoxPlot(f, chart)
	}
}

// sortValues ordena números antes de textos, cada grupo em ordem crescente
func sortValues(values []domain.Value) {
	sort.Slice(values, func(i, j int) bool {
		a, b := values[i], values[j]
		if a.Kind() != b.Kind() {
			return a.Kind() < b.Kind()
		}
		if fa, ok := a.Float(); ok {
			fb, _ := b.Float()
			return fa < fb
		}
		return a.String() < b.String()
	})
}

type group struct {
	key    domain.Value
	values []float64
}

// groupBy agrupa os números de valueCol pela chave keyCol, descartando chaves nulas.
// Os grupos saem ordenados pela chave.
func groupBy(f *frame, keyCol, valueCol string) []group {
	keys := f.column(keyCol)
	values := f.column(valueCol)

	index := make(map[domain.Value]int)
	var groups []group
	for i, key := range keys {
		if key.IsNull() {
			continue
		}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, group{key: key})
		}
		if i < len(values) {
			if n, ok := values[i].Float(); ok {
				groups[pos].values = append(groups[pos].values, n)
			}
		}
	}

	sorted := make([]domain.Value, len(groups))
	for i, g := range groups {
		sorted[i] = g.key
	}
	sortValues(sorted)

	out := make([]group, len(sorted))
	for i, key := range sorted {
		out[i] = groups[index[key]]
	}
	return out
}

func meanOrNil(values []float64) any {
	if avg, ok := mean(values); ok {
		return avg
	}
	return nil
}

// groupLabel converte 0/1 em "0"/"1"; chaves de texto são mantidas
func groupLabel(key domain.Value) string {
	if n, ok := key.Float(); ok {
		return domain.FormatNumber(float64(int64(n)))
	}
	return key.String()
}

func fillGroupMeans(f *frame, chart *domain.ChartSpec) {
	if chart.GroupCol == "" || len(chart.Metrics) == 0 || !f.has(chart.GroupCol) {
		return
	}

	data := make([]domain.Record, 0, len(chart.Metrics))
	for _, metric := range chart.Metrics {
		record := domain.Record{chart.X: metric}
		for _, g := range groupBy(f, chart.GroupCol, metric) {
			record[groupLabel(g.key)] = meanOrNil(g.values)
		}
		data = append(data, record)
	}

	chart.Data = data
}

func fillCategorySums(f *frame, chart *domain.ChartSpec) {
	x := chart.X
	if x == "" {
		x = chart.NameKey
	}
	y := chart.Y
	if y == "" {
		y = chart.DataKey
	}

	if x == "" || y == "" || !f.has(x) || !f.has(y) {
		return
	}

	valueKey := y
	if x == y {
		valueKey = valueColumn
		chart.Y = valueColumn
	}

	groups := groupBy(f, x, y)
	totals := make([]float64, len(groups))
	for i, g := range groups {
		totals[i] = sum(g.values)
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	if len(order) > topCategories {
		order = order[:topCategories]
	}

	data := make([]domain.Record, 0, len(order))
	for _, i := range order {
		data = append(data, domain.Record{
			x:        groups[i].key.Interface(),
			valueKey: totals[i],
		})
	}

	chart.Data = data
}

func fillLine(f *frame, chart *domain.ChartSpec) {
	x, y := chart.X, chart.Y
	if !f.has(x) || !f.has(y) {
		return
	}

	if isNumericColumn(f, x) {
		groups := groupBy(f, x, y)
		if len(groups) > maxLinePoints {
			groups = groups[:maxLinePoints]
		}

		data := make([]domain.Record, 0, len(groups))
		for _, g := range groups {
			data = append(data, domain.Record{x: g.key.Interface(), y: meanOrNil(g.values)})
		}
		chart.Data = data
		return
	}

	type bucket struct {
		start time.Time
		total float64
	}

	buckets := make(map[string]*bucket)
	xs, ys := f.column(x), f.column(y)
	for i, v := range xs {
		text, ok := v.Text()
		if !ok {
			continue
		}
		parsed, ok := utils.ParseCalendarDate(text)
		if !ok {
			continue
		}

		label := parsed.Format(monthYear)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{start: time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[label] = b
		}
		b.total += ys[i].FloatOrZero()
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return buckets[labels[i]].start.Before(buckets[labels[j]].start)
	})

	data := make([]domain.Record, 0, len(labels))
	for _, label := range labels {
		data = append(data, domain.Record{x: label, y: buckets[label].total})
	}
	chart.Data = data
}

func isNumericColumn(f *frame, column string) bool {
	numbers := 0
	for _, v := range f.column(column) {
		if v.IsString() {
			return false
		}
		if v.IsNumber() {
			numbers++
		}
	}
	return numbers > 0
}

// fillScatter usa as primeiras linhas, para que o resultado seja reproduzível
func fillScatter(f *frame, chart *domain.ChartSpec) {
	x, y := chart.X, chart.Y
	if !f.has(x) || !f.has(y) {
		return
	}

	n := min(maxScatter, f.rows)
	xs, ys := f.column(x), f.column(y)

	data := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		data = append(data, domain.Record{x: xs[i].Interface(), y: ys[i].Interface()})
	}
	chart.Data = data
}

func fillBoxPlot(f *frame, chart *domain.ChartSpec) {
	x, y := chart.X, chart.Y
	if x == "" || y == "" || !f.has(x) || !f.has(y) {
		return
	}

	groups := groupBy(f, x, y)

	filled := groups[:0]
	for _, g := range groups {
		if len(g.values) > 0 {
			filled = append(filled, g)
		}
	}

	sort.SliceStable(filled, func(i, j int) bool {
		return len(filled[i].values) > len(filled[j].values)
	})
	if len(filled) > maxBoxCategory {
		filled = filled[:maxBoxCategory]
	}

	if len(filled) == 0 {
		return
	}

	data := make([]domain.Record, 0, len(filled))
	for _, g := range filled {
		stats := fiveNumbers(g.values)
		data = append(data, domain.Record{
			categoryKey: g.key.Interface(),
			"min":       stats[0],
			"q1":        stats[1],
			"median":    stats[2],
			"q3":        stats[3],
			"max":       stats[4],
		})
	}
	chart.Data = data
}
