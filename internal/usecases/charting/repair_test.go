package charting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/analytics-forge-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/charting/mocks"
	"go.uber.org/mock/gomock"
)

func TestRepairer_Repair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecommender := mocks.NewMockRecommender(ctrl)
	mockProcessedRepo := repomocks.NewMockProcessedDataRepository(ctrl)
	mockSummaryRepo := repomocks.NewMockSummaryRepository(ctrl)

	repairer := NewRepairer(NewBuilder(mockRecommender, time.Second), mockProcessedRepo, mockSummaryRepo)

	emptyBox := domain.ChartSpec{Type: domain.ChartBoxPlot, Title: "Revenue Distribution by Region", X: "Region", Y: "Revenue"}
	filledBox := domain.ChartSpec{
		Type:  domain.ChartBoxPlot,
		Title: "Revenue Distribution by Region",
		X:     "Region",
		Y:     "Revenue",
		Data:  []domain.Record{{"category": "North", "min": 1.0, "q1": 2.0, "median": 3.0, "q3": 4.0, "max": 5.0}},
	}

	storedKPIs := domain.LabeledPayload([]domain.LabeledKPI{{Label: "Total Records", Value: 1.0, Type: "total"}})
	newKPIs := []domain.LabeledKPI{{Label: "Total Records", Value: 2, Type: "total"}}

	newSummary := func() *domain.SummaryRecord {
		return &domain.SummaryRecord{
			ID:            "sum-1",
			ProjectType:   "retail",
			KPIs:          storedKPIs,
			Charts:        []domain.ChartSpec{emptyBox},
			ChartsVersion: 3,
		}
	}

	processed := &domain.ProcessedDataRecord{
		ProjectType: "retail",
		Rows:        domain.Dataset{domain.RowOf("Region", "North", "Revenue", 1.0)},
	}

	tests := []struct {
		name     string
		summary  *domain.SummaryRecord
		setup    func()
		validate func(t *testing.T, original, result *domain.SummaryRecord)
	}{
		{
			name:    "Sem boxPlot vazio - não faz nada",
			summary: &domain.SummaryRecord{ID: "sum-2", Charts: []domain.ChartSpec{filledBox}},
			setup:   func() {},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Same(t, original, result)
			},
		},
		{
			name:    "Reparo bem sucedido - grava com a versão lida",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(processed, nil)

				mockRecommender.EXPECT().
					Recommend(gomock.Any(), processed.Rows, "retail").
					Return(&domain.Recommendation{
						Status: StatusSuccess,
						Charts: []domain.ChartSpec{filledBox},
						KPIs:   newKPIs,
					}, nil)

				mockSummaryRepo.EXPECT().
					ReplaceCharts(gomock.Any(), "sum-1", []domain.ChartSpec{filledBox}, domain.LabeledPayload(newKPIs), 3).
					Return(true, nil)
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				require.NotSame(t, original, result)
				assert.Equal(t, []domain.ChartSpec{filledBox}, result.Charts)
				assert.Equal(t, newKPIs, result.KPIs.Labeled)
				assert.Equal(t, 4, result.ChartsVersion)
				assert.False(t, result.UpdatedAt.IsZero())

				// o registro original não é alterado
				assert.Equal(t, 3, original.ChartsVersion)
				assert.False(t, original.Charts[0].HasData())
			},
		},
		{
			name:    "Motor sem KPIs - mantém os KPIs gravados",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(processed, nil)

				mockRecommender.EXPECT().
					Recommend(gomock.Any(), gomock.Any(), "retail").
					Return(&domain.Recommendation{Status: StatusSuccess, Charts: []domain.ChartSpec{filledBox}}, nil)

				mockSummaryRepo.EXPECT().
					ReplaceCharts(gomock.Any(), "sum-1", gomock.Any(), storedKPIs, 3).
					Return(true, nil)
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Equal(t, storedKPIs, result.KPIs)
			},
		},
		{
			name:    "Outra requisição reparou antes - devolve o que está no banco",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(processed, nil)

				mockRecommender.EXPECT().
					Recommend(gomock.Any(), gomock.Any(), "retail").
					Return(&domain.Recommendation{Status: StatusSuccess, Charts: []domain.ChartSpec{filledBox}}, nil)

				mockSummaryRepo.EXPECT().
					ReplaceCharts(gomock.Any(), "sum-1", gomock.Any(), gomock.Any(), 3).
					Return(false, nil)

				mockSummaryRepo.EXPECT().
					GetByID(gomock.Any(), "sum-1").
					Return(&domain.SummaryRecord{ID: "sum-1", Charts: []domain.ChartSpec{filledBox}, ChartsVersion: 4}, nil)
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Equal(t, 4, result.ChartsVersion)
				assert.True(t, result.Charts[0].HasData())
			},
		},
		{
			name:    "Sem dados processados - devolve o original",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(nil, nil)
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Same(t, original, result)
			},
		},
		{
			name:    "Motor falha - devolve o original sem propagar o erro",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(processed, nil)

				mockRecommender.EXPECT().
					Recommend(gomock.Any(), gomock.Any(), "retail").
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Same(t, original, result)
			},
		},
		{
			name:    "Motor sem gráficos - devolve o original",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(processed, nil)

				mockRecommender.EXPECT().
					Recommend(gomock.Any(), gomock.Any(), "retail").
					Return(&domain.Recommendation{Status: StatusSuccess, Charts: []domain.ChartSpec{}}, nil)
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Same(t, original, result)
			},
		},
		{
			name:    "Falha ao gravar - devolve o original",
			summary: newSummary(),
			setup: func() {
				mockProcessedRepo.EXPECT().
					GetLatestByProjectType(gomock.Any(), "retail").
					Return(processed, nil)

				mockRecommender.EXPECT().
					Recommend(gomock.Any(), gomock.Any(), "retail").
					Return(&domain.Recommendation{Status: StatusSuccess, Charts: []domain.ChartSpec{filledBox}}, nil)

				mockSummaryRepo.EXPECT().
					ReplaceCharts(gomock.Any(), "sum-1", gomock.Any(), gomock.Any(), 3).
					Return(false, errors.New("database is locked"))
			},
			validate: func(t *testing.T, original, result *domain.SummaryRecord) {
				assert.Same(t, original, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result := repairer.Repair(context.Background(), tt.summary)
			tt.validate(t, tt.summary, result)
		})
	}
}

func TestRepairer_RepairNil(t *testing.T) {
	repairer := NewRepairer(nil, nil, nil)
	assert.Nil(t, repairer.Repair(context.Background(), nil))
}
