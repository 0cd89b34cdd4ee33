package cmd

import (
	"fmt"
	"os"
	"projection/api"
	integration_tests "projection/integration-tests"
	"projection/internal/logger"
	"projection/internal/repository"
	l1_service "projection/internal/service/l1"
	l3_service "projection/internal/service/l3"
	"projection/internal/util"
	"projection/pkg/sheets"
	"strings"
)

func InitializeDependencies(cfg util.Config) (*api.ApiHandler, error) {
	if _, err := cfg.Simulation.Anchor(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	priceRepository, err := repository.NewHistoricalPriceRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create price repository: %w", err)
	}
	var sheetsClient l1_service.SheetRowsClient = sheets.NewClient(cfg.Sheets.ApiKey)

	if strings.EqualFold(os.Getenv(logger.EnvKey), "test") {
		priceRepository = integration_tests.NewMockPriceRepositoryForTests()
		sheetsClient = integration_tests.NewMockSheetsClientForTests()
	}

	apiHandler := &api.ApiHandler{
		SimulationConfig:     cfg.Simulation,
		SimulationService:    l3_service.NewSimulationService(cfg.Simulation),
		AssetStatsService:    l1_service.NewAssetStatsService(priceRepository),
		DepositImportService: l1_service.NewDepositImportService(sheetsClient),
	}

	return apiHandler, nil
}
