package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsanna/trapmap/internal/scene"
	"github.com/fsanna/trapmap/trapmap"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <scene.toml>",
		Short: "Load a scene, insert every segment, and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded scene with %d segments, %d queries", len(s.Segments), len(s.Queries))

			m, d, queries, err := s.Build()
			if err != nil {
				return err
			}

			fmt.Printf("%d trapezoids, %d DAG nodes\n", len(m.Trapezoids()), len(d.Nodes))
			for i, q := range queries {
				trapIdx := trapmap.Query(m, d, q)
				fmt.Printf("query %d (%.4g, %.4g) -> trapezoid %d\n", i, q.X, q.Y, trapIdx)
			}
			return nil
		},
	}
}
