package main

import (
	"os"
	"projection/cmd"
	"projection/internal/logger"
	"projection/internal/util"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	if cfg.Sheets.ApiKey == "" {
		logger.Warn("%s is not set, deposit import requests will be rejected by the sheets api", "SHEETS_API_KEY")
	}

	apiHandler, err := cmd.InitializeDependencies(*cfg)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	logger.Info("starting api on port %d (commit %s)", cfg.Port, os.Getenv("commit_hash"))
	err = apiHandler.StartApi(cfg.Port)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
