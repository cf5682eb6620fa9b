// Package normalizing converte as células brutas do CSV em valores tipados
package normalizing

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/utils"
)

const (
	MonthKey = "Month"
	YearKey  = "Year"
)

var currencyReplacer = strings.NewReplacer("$", "", ",", "")

// Normalize coage cada célula, sintetiza Month/Year a partir da primeira coluna
// de data e remove linhas totalmente vazias. O cabeçalho vem da primeira linha.
func Normalize(raw domain.Dataset) domain.Dataset {
	if len(raw) == 0 {
		return domain.Dataset{}
	}

	headers := raw[0].Keys()
	dateKey := DateKey(headers)

	out := make(domain.Dataset, 0, len(raw))
	for _, rawRow := range raw {
		row := domain.NewRow(len(headers) + 2)
		for _, header := range headers {
			row.Set(header, CoerceValue(rawRow.Get(header)))
		}

		if dateKey != "" {
			deriveDateColumns(&row, row.Get(dateKey))
		}

		if isEmptyRow(row) {
			continue
		}

		out = append(out, row)
	}

	return out
}

// CoerceValue aplica a coerção de uma única célula
func CoerceValue(v domain.Value) domain.Value {
	text, ok := v.Text()
	if !ok {
		// nulos e números passam direto
		return v
	}

	trimmed := strings.TrimSpace(text)
	cleaned := currencyReplacer.Replace(trimmed)
	if cleaned != "" {
		if f, ok := parseFinite(cleaned); ok {
			return domain.Number(f)
		}
	}

	return domain.String(trimmed)
}

// DateKey retorna a primeira coluna cujo nome contém "date" ou "time"
func DateKey(headers []string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "date") || strings.Contains(lower, "time") {
			return h
		}
	}
	return ""
}

func deriveDateColumns(row *domain.Row, v domain.Value) {
	text, ok := v.Text()
	if !ok || text == "" {
		return
	}

	parsed, ok := utils.ParseCalendarDate(text)
	if !ok {
		return
	}

	row.Set(MonthKey, domain.String(utils.ShortMonth(parsed)))
	row.Set(YearKey, domain.Number(float64(parsed.Year())))
}

func parseFinite(s string) (float64, bool) {
	// ParseFloat aceita "_" em literais com prefixo de base; o CSV não
	if strings.ContainsRune(s, '_') {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isEmptyRow(row domain.Row) bool {
	for _, k := range row.Keys() {
		if !row.Get(k).IsBlank() {
			return false
		}
	}
	return true
}
