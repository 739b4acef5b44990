package commands

import (
	"fmt"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
	"github.com/spf13/cobra"
)

type RatesCmd struct {
	ratesPath string
}

func NewRatesCmd() *cobra.Command {
	rc := &RatesCmd{}
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "List configured client day-rates",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.ratesPath, "rates", "", "Path to the client rates ini profile")
	_ = cmd.MarkFlagRequired("rates")

	return cmd
}

func (rc *RatesCmd) run(cmd *cobra.Command, _ []string) error {
	lookup, err := rates.NewRegistry(rc.ratesPath)
	if err != nil {
		return err
	}

	for _, client := range lookup.Clients() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\n", client, lookup.Rate(client))
	}
	return nil
}
