package recommending

import (
	"math"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

const (
	dateShareThreshold  = 0.8
	stringCategoryMax   = 50
	stringCategoryRatio = 0.05
	numericCategoryMax  = 10
)

var idKeywords = []string{"id", "key", "code", "index", "pk"}

// profileFrame infere o tipo de cada coluna e se ela serve como categoria
func profileFrame(f *frame) *domain.DatasetProfile {
	profile := &domain.DatasetProfile{
		Columns:  make([]domain.ColumnProfile, 0, len(f.columns)),
		RowCount: f.rows,
	}

	for _, name := range f.columns {
		profile.Columns = append(profile.Columns, profileColumn(f, name))
	}

	return profile
}

func profileColumn(f *frame, name string) domain.ColumnProfile {
	values := f.column(name)

	var numbers, strs, nulls int
	integral := true
	for _, v := range values {
		switch {
		case v.IsNull():
			nulls++
		case v.IsNumber():
			numbers++
			if n, _ := v.Float(); n != math.Trunc(n) {
				integral = false
			}
		default:
			strs++
		}
	}

	unique := f.uniqueCount(name)

	columnType := domain.ColumnString
	switch {
	case numbers > 0 && strs == 0:
		columnType = domain.ColumnNumeric
		// inteiros sem nulos, todos distintos, com nome de identificador
		if integral && nulls == 0 && unique == f.rows && containsAny(strings.ToLower(name), idKeywords) {
			columnType = domain.ColumnID
		}
	case strs > 0 && looksLikeDates(values, f.rows):
		columnType = domain.ColumnDate
	}

	ratio := 0.0
	if f.rows > 0 {
		ratio = float64(unique) / float64(f.rows)
	}

	categorical := (columnType == domain.ColumnString && (unique < stringCategoryMax || ratio < stringCategoryRatio)) ||
		(columnType == domain.ColumnNumeric && unique < numericCategoryMax)

	col := domain.ColumnProfile{
		Name:          name,
		Type:          columnType,
		IsCategorical: categorical,
		UniqueCount:   unique,
		NullCount:     nulls,
	}

	if columnType == domain.ColumnNumeric {
		nums := f.numbers(name)
		lo, hi := minMax(nums)
		avg, _ := mean(nums)
		col.Min, col.Max, col.Mean = &lo, &hi, &avg
	}

	return col
}

// looksLikeDates exige que mais de 80% das linhas sejam datas válidas
func looksLikeDates(values []domain.Value, rows int) bool {
	parsed := 0
	for _, v := range values {
		text, ok := v.Text()
		if !ok {
			continue
		}
		if _, ok := utils.ParseCalendarDate(text); ok {
			parsed++
		}
	}
	return float64(parsed) > float64(rows)*dateShareThreshold
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
