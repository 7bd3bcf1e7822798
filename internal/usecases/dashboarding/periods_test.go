package dashboarding

import (
	"context"
	"errors"
	"testing"

	sheetsmocks "github.com/larscobian/Pizzana-Dashboard/infrastructure/integrator/sheets/mocks"
	repomocks "github.com/larscobian/Pizzana-Dashboard/infrastructure/repository/mocks"
	"github.com/larscobian/Pizzana-Dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_GetAvailablePeriods(t *testing.T) {
	tests := []struct {
		name        string
		withHistory bool
		setup       func(source *sheetsmocks.MockSheetsIntegrator, repo *repomocks.MockPeriodKPIRepository)
		validate    func(t *testing.T, periods *domain.AvailablePeriods, err error)
	}{
		{
			name:        "Junta planilha e histórico sem duplicar",
			withHistory: true,
			setup: func(source *sheetsmocks.MockSheetsIntegrator, repo *repomocks.MockPeriodKPIRepository) {
				source.EXPECT().FetchDataset(gomock.Any()).Return(testDataset(), nil)
				repo.EXPECT().GetAllPeriods(gomock.Any()).Return([]string{"2023-12", "2024-03"}, nil)
			},
			validate: func(t *testing.T, periods *domain.AvailablePeriods, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"2023-12", "2024-03"}, periods.Periods)
				assert.Equal(t, []string{"2023", "2024"}, periods.Years)
				assert.Equal(t, []string{"03", "12"}, periods.Months)
				assert.Equal(t, []string{SourceSheet, SourceHistory}, periods.Sources)
			},
		},
		{
			name:        "Falha no histórico devolve apenas a planilha",
			withHistory: true,
			setup: func(source *sheetsmocks.MockSheetsIntegrator, repo *repomocks.MockPeriodKPIRepository) {
				source.EXPECT().FetchDataset(gomock.Any()).Return(testDataset(), nil)
				repo.EXPECT().GetAllPeriods(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, periods *domain.AvailablePeriods, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"2024-03"}, periods.Periods)
				assert.Equal(t, []string{SourceSheet}, periods.Sources)
			},
		},
		{
			name:        "Sem banco usa apenas a planilha",
			withHistory: false,
			setup: func(source *sheetsmocks.MockSheetsIntegrator, repo *repomocks.MockPeriodKPIRepository) {
				source.EXPECT().FetchDataset(gomock.Any()).Return(testDataset(), nil)
			},
			validate: func(t *testing.T, periods *domain.AvailablePeriods, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"2024-03"}, periods.Periods)
			},
		},
		{
			name:        "Erro da planilha é propagado",
			withHistory: true,
			setup: func(source *sheetsmocks.MockSheetsIntegrator, repo *repomocks.MockPeriodKPIRepository) {
				source.EXPECT().FetchDataset(gomock.Any()).Return(nil, errors.New("quota exceeded"))
			},
			validate: func(t *testing.T, periods *domain.AvailablePeriods, err error) {
				assert.Nil(t, periods)
				assert.ErrorIs(t, err, ErrDataSource)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := sheetsmocks.NewMockSheetsIntegrator(ctrl)
			repo := repomocks.NewMockPeriodKPIRepository(ctrl)
			tt.setup(source, repo)

			service := NewService(testConfig(), source).(*Service)
			if tt.withHistory {
				service.WithKPIHistory(repo)
			}

			periods, err := service.GetAvailablePeriods(context.Background())
			tt.validate(t, periods, err)
		})
	}
}
