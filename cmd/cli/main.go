package main

import (
	"context"
	"fmt"
	"os"
	"projection/internal/domain"
	"projection/internal/logger"
	l3_service "projection/internal/service/l3"
	"projection/internal/util"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "projection",
	Short: "Monte Carlo portfolio projection",
	Long:  "Projects portfolio value under uncertainty from an allocation and a deposit schedule",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [request-file]",
	Short: "Run a simulation from a yaml or json request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := util.LoadConfig()
		if err != nil {
			return err
		}

		request, err := loadRequest(args[0])
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, &request); err != nil {
			return err
		}

		in, err := request.ToInput(cfg.Simulation)
		if err != nil {
			return err
		}

		profile, endProfile := domain.NewProfile()
		defer endProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)
		ctx = logger.WithLogger(ctx, logger.New())

		report, err := l3_service.NewSimulationService(cfg.Simulation).Simulate(ctx, in)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		return writeReport(cmd.OutOrStdout(), *report, output)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func applyFlags(cmd *cobra.Command, request *requestFile) error {
	flags := cmd.Flags()
	if flags.Changed("cycles") {
		cycles, err := flags.GetInt("cycles")
		if err != nil {
			return err
		}
		request.Cycles = &cycles
	}
	if flags.Changed("years") {
		years, err := flags.GetInt("years")
		if err != nil {
			return err
		}
		request.Years = &years
	}
	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return err
		}
		request.Seed = &seed
	}
	return nil
}

func init() {
	simulateCmd.Flags().IntP("cycles", "c", domain.DefaultCycles, "Number of simulated paths")
	simulateCmd.Flags().IntP("years", "y", domain.DefaultYears, "Projection horizon in years")
	simulateCmd.Flags().Uint64P("seed", "s", 0, "Seed for a reproducible run")
	simulateCmd.Flags().StringP("output", "o", "table", "Output format (table, json, csv)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
