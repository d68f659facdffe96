package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pipe-sizing-service/internal/core/domain"
	"pipe-sizing-service/internal/core/services"
)

func calcCmd() *cobra.Command {
	var flowRate, velocity float64

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the recommended pipe diameter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizing, err := services.NewSizingService().Calculate(cmd.Context(), flowRate, velocity)
			if errors.Is(err, domain.ErrInvalidInput) {
				return errors.New(domain.InvalidInputMessage)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sizing.Message())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&flowRate, "flow-rate", "q", 0, "flow rate in m³/s")
	cmd.Flags().Float64VarP(&velocity, "velocity", "v", 0, "permissible velocity in m/s")
	return cmd
}
