package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	rates "github.com/malusev998/tariff-rates"
)

func fetchCobraCommand(config *Config, currency *string, year *uint16, fiscalYear *bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr(), config.debugging())

		req, err := rates.NewRunRequest(*currency, *year, *fiscalYear)
		if err != nil {
			return err
		}

		service, err := config.NewService(config.context(), logger)
		if err != nil {
			return err
		}

		defer func() {
			if err := service.Close(); err != nil {
				logger.WithError(err).Warn("closing storage")
			}
		}()

		locations, err := service.Run(req)
		if err != nil {
			return err
		}

		storages := make([]string, 0, len(locations))
		for storage := range locations {
			storages = append(storages, storage)
		}
		sort.Strings(storages)

		for _, storage := range storages {
			fmt.Fprintf(cmd.OutOrStdout(), "Exchange rates written to %s\n", locations[storage])
		}

		return nil
	}
}

func fetch(config *Config) *cobra.Command {
	var currency string
	var year uint16
	var fiscalYear bool

	fetchCmd := &cobra.Command{
		Use:           "fetch",
		Short:         "Fetch the rates of one currency for a calendar or fiscal year and write them to CSV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fetchCmd.RunE = fetchCobraCommand(config, &currency, &year, &fiscalYear)
	fetchCmd.Flags().StringVarP(&currency, "currency", "c", "", "Currency code as published, e.g. USD")
	fetchCmd.Flags().Uint16VarP(&year, "year", "y", 0, "Year to fetch")
	fetchCmd.Flags().BoolVarP(&fiscalYear, "fiscal-year", "f", false, "Get data for a fiscal year (April to March) rather than a calendar year (January to December)")

	_ = fetchCmd.MarkFlagRequired("currency")
	_ = fetchCmd.MarkFlagRequired("year")

	return fetchCmd
}
