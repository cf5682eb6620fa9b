package chartengine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chartenginedomain "github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/domain"
	"github.com/vfg2006/analytics-forge-api/infrastructure/integrator/chartengine/mocks"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestChartEngineIntegrator_Recommend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)

	t.Run("repassa linhas e tipo de projeto", func(t *testing.T) {
		rows := domain.Dataset{domain.RowOf("Revenue", 1.0)}
		mockClient.EXPECT().Analyze(gomock.Any(), chartenginedomain.AnalyzeRequest{Data: rows, ProjectType: "retail"}).
			Return(&chartenginedomain.AnalyzeResponse{Status: "success"}, nil)

		resp, err := integrator.Recommend(context.Background(), rows, "retail")

		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("linhas nulas viram lista vazia", func(t *testing.T) {
		mockClient.EXPECT().Analyze(gomock.Any(), chartenginedomain.AnalyzeRequest{Data: domain.Dataset{}, ProjectType: "general"}).
			Return(&chartenginedomain.AnalyzeResponse{Status: "success"}, nil)

		_, err := integrator.Recommend(context.Background(), nil, "general")
		require.NoError(t, err)
	})

	t.Run("propaga erro do cliente", func(t *testing.T) {
		mockClient.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		resp, err := integrator.Recommend(context.Background(), domain.Dataset{}, "general")

		assert.Nil(t, resp)
		assert.EqualError(t, err, "connection refused")
	})
}
