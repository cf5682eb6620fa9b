// Package classifying decide o papel de cada coluna de um dataset normalizado
package classifying

import (
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/normalizing"
)

const (
	minCategoryValues = 2
	maxCategoryValues = 50
)

var (
	revenueKeywords  = []string{"revenue", "sales", "amount"}
	productKeywords  = []string{"product", "item", "category", "type", "name", "sku"}
	excludedKeywords = []string{"gender", "sex", "id", "transaction", "date", "time", "month", "year", "filename"}
	genderKeywords   = []string{"gender", "sex"}
)

// Classify usa os tipos da PRIMEIRA linha para separar colunas numéricas e de texto.
// Uma coluna cujo primeiro valor não é número é tratada como texto no dataset inteiro.
// Célula nula na primeira linha não decide o tipo: vale a primeira não nula da coluna.
func Classify(rows domain.Dataset) domain.ColumnClassification {
	result := domain.ColumnClassification{
		NumericKeys: []string{},
		StringKeys:  []string{},
	}
	if len(rows) == 0 {
		return result
	}

	first := rows[0]
	for _, key := range first.Keys() {
		switch firstKind(rows, key) {
		case domain.KindNumber:
			result.NumericKeys = append(result.NumericKeys, key)
		case domain.KindString:
			result.StringKeys = append(result.StringKeys, key)
		}
	}

	result.RevenueKey = pickRevenueKey(result.NumericKeys)
	result.CategoryKey = pickCategoryKey(rows, result.StringKeys)
	result.GenderKey = pickGenderKey(result.StringKeys)

	for _, key := range []string{normalizing.MonthKey, normalizing.YearKey} {
		if first.Has(key) {
			result.DateDerivedKeys = append(result.DateDerivedKeys, key)
		}
	}

	return result
}

func pickRevenueKey(numericKeys []string) string {
	for _, key := range numericKeys {
		if containsAny(key, revenueKeywords) {
			return key
		}
	}
	if len(numericKeys) > 0 {
		return numericKeys[0]
	}
	return ""
}

func pickCategoryKey(rows domain.Dataset, stringKeys []string) string {
	candidates := make([]string, 0, len(stringKeys))
	for _, key := range stringKeys {
		if !containsAny(key, excludedKeywords) {
			candidates = append(candidates, key)
		}
	}

	counts := make(map[string]int, len(candidates))
	for _, key := range candidates {
		counts[key] = DistinctCount(rows, key)
	}

	// 1. nome de produto/categoria com cardinalidade útil
	for _, key := range candidates {
		if containsAny(key, productKeywords) && inCategoryRange(counts[key]) {
			return key
		}
	}

	// 2. qualquer candidata com cardinalidade útil
	for _, key := range candidates {
		if inCategoryRange(counts[key]) {
			return key
		}
	}

	// 3. primeira coluna de texto, sem exclusões
	if len(stringKeys) > 0 {
		return stringKeys[0]
	}

	return ""
}

// pickGenderKey não exclui a coluna escolhida como categoria
func pickGenderKey(stringKeys []string) string {
	for _, key := range stringKeys {
		if containsAny(key, genderKeywords) {
			return key
		}
	}
	return ""
}

// DistinctCount conta valores distintos da coluna; nulo, número e texto são distintos entre si
func DistinctCount(rows domain.Dataset, key string) int {
	seen := make(map[domain.Value]struct{})
	for _, row := range rows {
		seen[row.Get(key)] = struct{}{}
	}
	return len(seen)
}

func inCategoryRange(n int) bool {
	return n >= minCategoryValues && n < maxCategoryValues
}

func containsAny(key string, keywords []string) bool {
	lower := strings.ToLower(key)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func firstKind(rows domain.Dataset, key string) domain.Kind {
	for _, row := range rows {
		if kind := row.Get(key).Kind(); kind != domain.KindNull {
			return kind
		}
	}
	return domain.KindNull
}
