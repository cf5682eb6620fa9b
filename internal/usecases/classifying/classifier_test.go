package classifying

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/normalizing"
)

func TestClassify_CenarioDeVendas(t *testing.T) {
	rows := normalizing.Normalize(domain.Dataset{
		domain.RowOf("Date", "2024-01-05", "Revenue", "$1,200", "Product", "Widget"),
		domain.RowOf("Date", "2024-01-20", "Revenue", "800", "Product", "Gadget"),
		domain.RowOf("Date", "2024-02-01", "Revenue", "500", "Product", "Widget"),
	})

	result := Classify(rows)

	assert.Equal(t, []string{"Revenue", "Year"}, result.NumericKeys)
	assert.Equal(t, []string{"Date", "Product", "Month"}, result.StringKeys)
	assert.Equal(t, "Revenue", result.RevenueKey)
	assert.Equal(t, "Product", result.CategoryKey)
	assert.Equal(t, "", result.GenderKey)
	assert.Equal(t, []string{"Month", "Year"}, result.DateDerivedKeys)
}

func TestClassify_RevenueKey(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.Row
		expected string
	}{
		{
			name:     "prefere coluna com palavra-chave de receita",
			row:      domain.RowOf("Units", 3.0, "Total Sales", 10.0),
			expected: "Total Sales",
		},
		{
			name:     "usa a primeira numérica quando não há palavra-chave",
			row:      domain.RowOf("Units", 3.0, "Weight", 10.0),
			expected: "Units",
		},
		{
			name:     "vazio quando não há colunas numéricas",
			row:      domain.RowOf("Name", "a"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(domain.Dataset{tt.row})
			assert.Equal(t, tt.expected, result.RevenueKey)
		})
	}
}

func TestClassify_CategoryKey(t *testing.T) {
	t.Run("prefere coluna de produto entre 2 e 49 valores", func(t *testing.T) {
		rows := domain.Dataset{
			domain.RowOf("Region", "North", "Item", "A", "Value", 1.0),
			domain.RowOf("Region", "South", "Item", "B", "Value", 2.0),
		}
		assert.Equal(t, "Item", Classify(rows).CategoryKey)
	})

	t.Run("exclui gênero, id e data das candidatas", func(t *testing.T) {
		rows := domain.Dataset{
			domain.RowOf("Gender", "M", "Customer ID", "c1", "Region", "North"),
			domain.RowOf("Gender", "F", "Customer ID", "c2", "Region", "South"),
		}
		assert.Equal(t, "Region", Classify(rows).CategoryKey)
	})

	t.Run("coluna de produto com um único valor não é preferida", func(t *testing.T) {
		rows := domain.Dataset{
			domain.RowOf("Product", "A", "Region", "North"),
			domain.RowOf("Product", "A", "Region", "South"),
		}
		assert.Equal(t, "Region", Classify(rows).CategoryKey)
	})

	t.Run("último recurso é a primeira coluna de texto sem exclusões", func(t *testing.T) {
		rows := domain.Dataset{
			domain.RowOf("Gender", "M", "Value", 1.0),
			domain.RowOf("Gender", "M", "Value", 2.0),
		}
		assert.Equal(t, "Gender", Classify(rows).CategoryKey)
	})

	t.Run("50 valores distintos ficam fora do intervalo", func(t *testing.T) {
		rows := make(domain.Dataset, 0, 50)
		for i := 0; i < 50; i++ {
			rows = append(rows, domain.RowOf("Label", fmt.Sprintf("l%d", i), "Kind", "k"))
		}
		// Label tem 50 valores, Kind tem 1: nenhuma candidata, cai na primeira coluna de texto
		assert.Equal(t, "Label", Classify(rows).CategoryKey)
	})

	t.Run("vazio quando não há colunas de texto", func(t *testing.T) {
		rows := domain.Dataset{domain.RowOf("Value", 1.0)}
		assert.Equal(t, "", Classify(rows).CategoryKey)
	})
}

func TestClassify_GenderKeyNaoExcluiCategoria(t *testing.T) {
	rows := domain.Dataset{
		domain.RowOf("Sex", "M", "Value", 1.0),
		domain.RowOf("Sex", "M", "Value", 2.0),
	}

	result := Classify(rows)
	assert.Equal(t, "Sex", result.CategoryKey)
	assert.Equal(t, "Sex", result.GenderKey)
}

func TestClassify_PrimeiraLinhaDecideOTipo(t *testing.T) {
	rows := domain.Dataset{
		domain.RowOf("Amount", "n/a", "Name", "a"),
		domain.RowOf("Amount", 10.0, "Name", "b"),
	}

	result := Classify(rows)
	assert.NotContains(t, result.NumericKeys, "Amount")
	assert.Contains(t, result.StringKeys, "Amount")
}

func TestClassify_PrimeiraCelulaNulaUsaProximoValor(t *testing.T) {
	rows := domain.Dataset{
		domain.RowOf("Product", "Widget", "Revenue", nil, "Note", nil),
		domain.RowOf("Product", "Gadget", "Revenue", 800.0, "Note", nil),
	}

	result := Classify(rows)
	assert.Equal(t, []string{"Revenue"}, result.NumericKeys)
	assert.Equal(t, []string{"Product"}, result.StringKeys)
	assert.Equal(t, "Revenue", result.RevenueKey)
}

func TestClassify_DatasetVazio(t *testing.T) {
	result := Classify(nil)
	assert.Empty(t, result.NumericKeys)
	assert.Empty(t, result.StringKeys)
	assert.Equal(t, "", result.RevenueKey)
}

func TestDistinctCount(t *testing.T) {
	rows := domain.Dataset{
		domain.RowOf("v", "1"),
		domain.RowOf("v", 1.0),
		domain.RowOf("v", nil),
		domain.RowOf("v", "1"),
	}
	assert.Equal(t, 3, DistinctCount(rows, "v"))
}
