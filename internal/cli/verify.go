package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsanna/trapmap/geom"
	"github.com/fsanna/trapmap/internal/scene"
	"github.com/fsanna/trapmap/trapmap"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <scene.toml>",
		Short: "Rebuild a scene, checking structural invariants after every insertion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			m := trapmap.NewMap(geom.Point{X: s.Bounds.Min.X, Y: s.Bounds.Min.Y}, geom.Point{X: s.Bounds.Max.X, Y: s.Bounds.Max.Y})
			d := trapmap.NewDAG()
			if err := trapmap.CheckInvariants(m, d); err != nil {
				return fmt.Errorf("bounding box invariants failed: %w", err)
			}

			for i, entry := range s.Segments {
				seg := geom.Segment{
					Start: geom.Point{X: entry.Start.X, Y: entry.Start.Y},
					End:   geom.Point{X: entry.End.X, Y: entry.End.Y},
				}
				if err := trapmap.Insert(m, d, seg); err != nil {
					return fmt.Errorf("inserting segment %d: %w", i, err)
				}
				if err := trapmap.CheckInvariants(m, d); err != nil {
					return fmt.Errorf("invariants failed after segment %d: %w", i, err)
				}
				logger.Debugf("segment %d ok: %d trapezoids, %d DAG nodes", i, len(m.Trapezoids()), len(d.Nodes))
			}

			fmt.Printf("ok: %d segments, %d trapezoids, %d DAG nodes\n", len(s.Segments), len(m.Trapezoids()), len(d.Nodes))
			return nil
		},
	}
}
