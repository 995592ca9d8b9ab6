package cli

import (
	"github.com/spf13/cobra"

	"github.com/fsanna/trapmap/internal/scene"
	"github.com/fsanna/trapmap/viz"
)

func newDrawCmd() *cobra.Command {
	var scaleFlag float64

	cmd := &cobra.Command{
		Use:   "draw <scene.toml> <output.png>",
		Short: "Render the final trapezoidal map to a PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			m, d, _, err := s.Build()
			if err != nil {
				return err
			}
			logger.Debugf("rendering %d trapezoids at scale %.2f", len(m.Trapezoids()), scaleFlag)
			return viz.Draw(m, d, scaleFlag, args[1])
		},
	}
	cmd.Flags().Float64Var(&scaleFlag, "scale", 20, "pixels per map unit")
	return cmd
}
