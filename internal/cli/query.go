package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fsanna/trapmap/dbg"
	"github.com/fsanna/trapmap/geom"
	"github.com/fsanna/trapmap/internal/scene"
	"github.com/fsanna/trapmap/trapmap"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <scene.toml> <x> <y>",
		Short: "Rebuild a scene and report which trapezoid contains (x, y)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing x: %w", err)
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("parsing y: %w", err)
			}

			m, d, _, err := s.Build()
			if err != nil {
				return err
			}

			p := geom.Point{X: x, Y: y}
			trapIdx := trapmap.Query(m, d, p)
			t := m.Trapezoid(trapIdx)
			fmt.Printf("%s: top=%s bottom=%s left=%v right=%v\n",
				dbg.Colorized(dbg.KindTrapezoid, uint32(trapIdx)),
				segmentLabel(m, t.Top), segmentLabel(m, t.Bottom),
				m.Point(t.LeftPoint), m.Point(t.RightPoint))
			return nil
		},
	}
}

func segmentLabel(m *trapmap.Map, idx trapmap.Index) string {
	if idx == trapmap.NONE {
		return "<bounding box edge>"
	}
	s := m.Segment(idx)
	return fmt.Sprintf("(%v)-(%v)", s.Start, s.End)
}
