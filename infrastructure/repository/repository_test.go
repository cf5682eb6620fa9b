package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-forge-api/infrastructure/database"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
)

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	cfg := config.Database{
		Driver: config.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "repository.db"),
	}

	_, err := database.Migrate(cfg, database.LatestVersion)
	require.NoError(t, err)

	conn, err := database.NewConnection(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func stringPtr(s string) *string {
	return &s
}

func TestRawAndProcessedData(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)

	rawRepo := NewRawDataRepository(conn)
	processedRepo := NewProcessedDataRepository(conn)

	raw := &domain.RawDataRecord{
		ProjectType: "retail",
		ProjectName: stringPtr("Loja Centro"),
		Filename:    "vendas.csv",
		Rows: domain.Dataset{
			domain.RowOf("Date", "2024-01-05", "Revenue", "$1,200"),
		},
	}
	require.NoError(t, rawRepo.Create(ctx, raw))
	assert.NotEmpty(t, raw.ID)
	assert.False(t, raw.UploadedAt.IsZero())

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	older := &domain.ProcessedDataRecord{
		ProjectType:  "retail",
		Rows:         domain.Dataset{domain.RowOf("Revenue", 1.0)},
		SourceFileID: raw.ID,
		CreatedAt:    base,
	}
	newer := &domain.ProcessedDataRecord{
		ProjectType:  "retail",
		ProjectName:  stringPtr("Loja Centro"),
		Rows:         domain.Dataset{domain.RowOf("Revenue", 1200.0, "Product", "Widget", "Note", nil)},
		SourceFileID: raw.ID,
		CreatedAt:    base.Add(time.Hour),
	}
	require.NoError(t, processedRepo.Create(ctx, older))
	require.NoError(t, processedRepo.Create(ctx, newer))

	t.Run("retorna o mais recente do tipo", func(t *testing.T) {
		latest, err := processedRepo.GetLatestByProjectType(ctx, "retail")
		require.NoError(t, err)
		require.NotNil(t, latest)

		assert.Equal(t, newer.ID, latest.ID)
		assert.Equal(t, raw.ID, latest.SourceFileID)
		require.NotNil(t, latest.ProjectName)
		assert.Equal(t, "Loja Centro", *latest.ProjectName)
		require.Len(t, latest.Rows, 1)
		assert.Equal(t, []string{"Revenue", "Product", "Note"}, latest.Rows[0].Keys())
		assert.Equal(t, domain.Number(1200), latest.Rows[0].Get("Revenue"))
		assert.True(t, latest.Rows[0].Get("Note").IsNull())
	})

	t.Run("tipo sem dados retorna nil", func(t *testing.T) {
		latest, err := processedRepo.GetLatestByProjectType(ctx, "emission")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

func TestSummaryRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	repo := NewSummaryRepository(conn)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	legacy := &domain.SummaryRecord{
		ProjectType: "general",
		Monthly:     []domain.MonthlyPoint{{Month: "Jan", Value: 2000}},
		Category:    []domain.NamedValue{{Name: "Widget", Value: 1700}},
		Gender:      []domain.NamedValue{},
		Scatter:     []domain.ScatterPoint{},
		KPIs: domain.SummaryPayload(&domain.KPISummary{
			TotalRevenue:   2500,
			Growth:         12.4,
			PrimaryMetric:  "Revenue",
			CategoryMetric: "Product",
			ScatterKeys:    []string{"Revenue", "Year"},
		}),
		CreatedAt: base,
	}

	withCharts := &domain.SummaryRecord{
		ProjectType: "retail",
		ProjectName: stringPtr("Loja Centro"),
		Monthly:     []domain.MonthlyPoint{},
		KPIs: domain.LabeledPayload([]domain.LabeledKPI{
			{Label: "Total Records", Value: 3.0, Type: "number"},
		}),
		Charts: []domain.ChartSpec{
			{Type: domain.ChartBoxPlot, Title: "Revenue Distribution by Region", X: "Region", Y: "Revenue"},
		},
		CreatedAt: base.Add(time.Hour),
	}

	newerRetail := &domain.SummaryRecord{
		ProjectType: "retail",
		ProjectName: stringPtr("Loja Centro"),
		Monthly:     []domain.MonthlyPoint{},
		CreatedAt:   base.Add(2 * time.Hour),
	}

	otherRetail := &domain.SummaryRecord{
		ProjectType: "retail",
		Monthly:     []domain.MonthlyPoint{},
		CreatedAt:   base.Add(90 * time.Minute),
	}

	for _, record := range []*domain.SummaryRecord{legacy, withCharts, newerRetail, otherRetail} {
		require.NoError(t, repo.Create(ctx, record))
		require.NotEmpty(t, record.ID)
	}

	t.Run("GetByID preserva o formato legado", func(t *testing.T) {
		found, err := repo.GetByID(ctx, legacy.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, legacy.Monthly, found.Monthly)
		assert.Equal(t, legacy.Category, found.Category)
		assert.Nil(t, found.Charts)
		assert.Nil(t, found.ProjectName)
		require.NotNil(t, found.LegacyKPI())
		assert.Equal(t, "Product", found.LegacyKPI().CategoryMetric)
		assert.True(t, found.CreatedAt.Equal(base))
	})

	t.Run("GetByID inexistente retorna nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, "nao-existe")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("GetLatestByProjectType usa created_at", func(t *testing.T) {
		found, err := repo.GetLatestByProjectType(ctx, "retail")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, newerRetail.ID, found.ID)
	})

	t.Run("ListLatest agrupa por tipo e nome", func(t *testing.T) {
		items, err := repo.ListLatest(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, newerRetail.ID, items[0].LatestID)
		assert.Equal(t, otherRetail.ID, items[1].LatestID)
		assert.Nil(t, items[1].ProjectName)
		assert.Equal(t, legacy.ID, items[2].LatestID)
	})

	t.Run("ListProjectTypes", func(t *testing.T) {
		types, err := repo.ListProjectTypes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"general", "retail"}, types)
	})

	t.Run("ReplaceCharts respeita a versão", func(t *testing.T) {
		found, err := repo.GetByID(ctx, withCharts.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 0, found.ChartsVersion)
		assert.False(t, found.Charts[0].HasData())
		assert.True(t, found.KPIs.IsLabeled())

		repaired := []domain.ChartSpec{{
			Type:  domain.ChartBoxPlot,
			Title: "Revenue Distribution by Region",
			X:     "category",
			Data: []domain.Record{
				{"category": "North", "min": 1.0, "q1": 2.0, "median": 3.0, "q3": 4.0, "max": 5.0},
			},
		}}

		updated, err := repo.ReplaceCharts(ctx, withCharts.ID, repaired, found.KPIs, found.ChartsVersion)
		require.NoError(t, err)
		assert.True(t, updated)

		// segunda escrita com a versão antiga perde a corrida
		updated, err = repo.ReplaceCharts(ctx, withCharts.ID, nil, nil, found.ChartsVersion)
		require.NoError(t, err)
		assert.False(t, updated)

		after, err := repo.GetByID(ctx, withCharts.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, after.ChartsVersion)
		require.Len(t, after.Charts, 1)
		require.True(t, after.Charts[0].HasData())
		assert.Equal(t, "North", after.Charts[0].Data[0]["category"])
		assert.Equal(t, 3.0, after.Charts[0].Data[0]["median"])
		assert.True(t, after.KPIs.IsLabeled())
	})
}
