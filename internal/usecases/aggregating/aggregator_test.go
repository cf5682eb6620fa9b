package aggregating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/classifying"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/normalizing"
)

func pipeline(raw domain.Dataset) domain.AggregateResult {
	rows := normalizing.Normalize(raw)
	return Aggregate(rows, classifying.Classify(rows))
}

func TestAggregate_CenarioDeVendas(t *testing.T) {
	result := pipeline(domain.Dataset{
		domain.RowOf("Date", "2024-01-05", "Revenue", "$1,200", "Product", "Widget"),
		domain.RowOf("Date", "2024-01-20", "Revenue", "800", "Product", "Gadget"),
		domain.RowOf("Date", "2024-02-01", "Revenue", "500", "Product", "Widget"),
	})

	assert.Equal(t, []domain.MonthlyPoint{
		{Month: "Jan", Value: 2000},
		{Month: "Feb", Value: 500},
	}, result.Monthly)
	assert.Equal(t, []domain.NamedValue{
		{Name: "Widget", Value: 1700},
		{Name: "Gadget", Value: 800},
	}, result.Category)
	assert.Empty(t, result.Gender)

	require.NotNil(t, result.KPI)
	assert.Equal(t, 2500.0, result.KPI.TotalRevenue)
	assert.Equal(t, GrowthPlaceholder, result.KPI.Growth)
	assert.Equal(t, "Revenue", result.KPI.PrimaryMetric)
	assert.Equal(t, "Product", result.KPI.CategoryMetric)
	assert.Equal(t, []string{"Revenue", "Year"}, result.KPI.ScatterKeys)

	// Revenue e Year são numéricas: o scatter usa as duas
	require.Len(t, result.Scatter, 3)
	assert.Equal(t, domain.ScatterPoint{X: 1200, Y: 2024, Name: "Widget"}, result.Scatter[0])
}

func TestAggregate_DatasetVazio(t *testing.T) {
	result := Aggregate(nil, domain.ColumnClassification{})

	assert.Empty(t, result.Monthly)
	assert.Empty(t, result.Category)
	assert.Empty(t, result.Gender)
	assert.Empty(t, result.Scatter)
	assert.Nil(t, result.KPI)

	encoded, err := result.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"monthly":[],"category":[],"gender":[],"scatter":[],"kpi":{}}`, string(encoded))
}

func TestAggregate_SemColunaDeMesUsaTotal(t *testing.T) {
	result := pipeline(domain.Dataset{
		domain.RowOf("Store", "A", "Sales", "10.4"),
		domain.RowOf("Store", "B", "Sales", "5"),
	})

	assert.Equal(t, []domain.MonthlyPoint{{Month: "Total", Value: 15}}, result.Monthly)
}

func TestAggregate_MesVazioCaiParaProximaChave(t *testing.T) {
	cls := domain.ColumnClassification{NumericKeys: []string{"v"}, RevenueKey: "v"}

	result := Aggregate(domain.Dataset{
		domain.RowOf("Month", "", "Date", "Jan", "v", 10),
		domain.RowOf("Month", 0, "v", 5),
		domain.RowOf("Month", nil, "Date", "", "v", 1),
	}, cls)

	assert.Equal(t, []domain.MonthlyPoint{
		{Month: "Jan", Value: 10},
		{Month: "0", Value: 5},
		{Month: "Total", Value: 1},
	}, result.Monthly)
}

func TestAggregate_ArredondaComoJavaScript(t *testing.T) {
	cls := domain.ColumnClassification{NumericKeys: []string{"v"}, RevenueKey: "v"}

	result := Aggregate(domain.Dataset{domain.RowOf("v", -2.5)}, cls)
	assert.Equal(t, -2.0, result.Monthly[0].Value)
	assert.Equal(t, -2.0, result.KPI.TotalRevenue)

	result = Aggregate(domain.Dataset{domain.RowOf("v", 2.5)}, cls)
	assert.Equal(t, 3.0, result.Monthly[0].Value)
}

func TestAggregate_CategoriaLimitadaAOito(t *testing.T) {
	raw := domain.Dataset{}
	for i := 0; i < 12; i++ {
		raw = append(raw, domain.RowOf("Product", fmt.Sprintf("P%02d", i), "Amount", fmt.Sprint(i+1)))
	}

	result := pipeline(raw)
	require.Len(t, result.Category, MaxCategories)
	assert.Equal(t, "P11", result.Category[0].Name)
	for i := 1; i < len(result.Category); i++ {
		assert.GreaterOrEqual(t, result.Category[i-1].Value, result.Category[i].Value)
	}
}

func TestAggregate_NomeDeCategoriaTruncadoEm30(t *testing.T) {
	long := "Uma descrição de produto muito longa que passa do limite"
	result := pipeline(domain.Dataset{
		domain.RowOf("Product", long, "Amount", "1"),
		domain.RowOf("Product", "Curto", "Amount", "2"),
	})

	names := []string{}
	for _, c := range result.Category {
		names = append(names, c.Name)
		assert.LessOrEqual(t, len([]rune(c.Name)), 30)
	}
	assert.Contains(t, names, string([]rune(long)[:30]))
}

func TestAggregate_CategoriaEGeneroParticionamAsLinhas(t *testing.T) {
	raw := domain.Dataset{
		domain.RowOf("Region", "North", "Gender", "F", "Amount", "10"),
		domain.RowOf("Region", "South", "Gender", "M", "Amount", "20"),
		domain.RowOf("Region", "", "Gender", "", "Amount", "5"),
		domain.RowOf("Region", "North", "Gender", "F", "Amount", ""),
		domain.RowOf("Region", "East", "Gender", "M", "Amount", "7"),
	}

	result := pipeline(raw)
	require.NotNil(t, result.KPI)

	sum := func(items []domain.NamedValue) float64 {
		total := 0.0
		for _, item := range items {
			total += item.Value
		}
		return total
	}

	assert.Equal(t, result.KPI.TotalRevenue, sum(result.Category))
	assert.Equal(t, result.KPI.TotalRevenue, sum(result.Gender))

	genders := map[string]float64{}
	for _, g := range result.Gender {
		genders[g.Name] = g.Value
	}
	assert.Equal(t, map[string]float64{"M": 27, "F": 10, "Unknown": 5}, genders)
}

func TestAggregate_ScatterLimitadoACem(t *testing.T) {
	raw := domain.Dataset{}
	for i := 0; i < 150; i++ {
		raw = append(raw, domain.RowOf("x", fmt.Sprint(i), "y", fmt.Sprint(i*2)))
	}

	result := pipeline(raw)
	require.Len(t, result.Scatter, MaxScatterPoints)
	assert.Equal(t, domain.ScatterPoint{X: 0, Y: 0, Name: "Point"}, result.Scatter[0])
	assert.Equal(t, domain.ScatterPoint{X: 99, Y: 198, Name: "Point"}, result.Scatter[99])
}

func TestAggregate_ScatterVazioComMenosDeDuasNumericas(t *testing.T) {
	result := pipeline(domain.Dataset{domain.RowOf("Name", "a", "Value", "1")})
	assert.Empty(t, result.Scatter)
}

func TestAggregate_SemColunasNumericas(t *testing.T) {
	result := pipeline(domain.Dataset{
		domain.RowOf("Name", "a", "City", "x"),
		domain.RowOf("Name", "b", "City", "y"),
	})

	require.NotNil(t, result.KPI)
	assert.Equal(t, "Value", result.KPI.PrimaryMetric)
	assert.Equal(t, 0.0, result.KPI.TotalRevenue)
	assert.Equal(t, []string{}, result.KPI.ScatterKeys)
	assert.Equal(t, []domain.MonthlyPoint{{Month: "Total", Value: 0}}, result.Monthly)
}

func TestAggregate_Idempotente(t *testing.T) {
	rows := normalizing.Normalize(domain.Dataset{
		domain.RowOf("Date", "2024-03-01", "Sales", "10", "Category", "A", "Sex", "F"),
		domain.RowOf("Date", "2024-04-01", "Sales", "20", "Category", "B", "Sex", "M"),
		domain.RowOf("Date", "2024-04-11", "Sales", "30", "Category", "A", "Sex", "M"),
	})
	cls := classifying.Classify(rows)

	first, err := Aggregate(rows, cls).MarshalJSON()
	require.NoError(t, err)
	second, err := Aggregate(rows, cls).MarshalJSON()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
