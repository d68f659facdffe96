package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"pipe-sizing-service/internal/adapters/secondary/gonumplot"
	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
	"pipe-sizing-service/internal/core/services"
)

func plotCmd() *cobra.Command {
	var (
		output string
		opts   ports.RenderOptions
	)
	fd := domain.DefaultFieldDomain()

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the pipe diameter contour plot as PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := fd.Validate(); err != nil {
				return err
			}
			svc := services.NewFieldService(fd, opts, gonumplot.NewRenderer(), nil)

			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := svc.Render(cmd.Context(), w); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"output": output,
				"domain": fd.Key(),
			}).Debug("field rendered")
			if output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "pipe_diameter.png", "output file, or - for stdout")
	cmd.Flags().Float64Var(&opts.WidthInches, "width", 10, "image width in inches")
	cmd.Flags().Float64Var(&opts.HeightInches, "height", 6, "image height in inches")
	cmd.Flags().IntVar(&opts.DPI, "dpi", 96, "image resolution")

	cmd.Flags().Float64Var(&fd.FlowMin, "flow-min", fd.FlowMin, "lowest sampled flow rate (m³/s)")
	cmd.Flags().Float64Var(&fd.FlowMax, "flow-max", fd.FlowMax, "highest sampled flow rate (m³/s)")
	cmd.Flags().IntVar(&fd.FlowSamples, "flow-samples", fd.FlowSamples, "number of flow rate samples")
	cmd.Flags().Float64Var(&fd.VelocityMin, "velocity-min", fd.VelocityMin, "lowest sampled velocity (m/s)")
	cmd.Flags().Float64Var(&fd.VelocityMax, "velocity-max", fd.VelocityMax, "highest sampled velocity (m/s)")
	cmd.Flags().IntVar(&fd.VelocitySamples, "velocity-samples", fd.VelocitySamples, "number of velocity samples")
	return cmd
}
