package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/astar"
)

func newInspectCommand(vip *viper.Viper, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of the road network",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(vip)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			n, err := loadNetwork(vip, log)
			if err != nil {
				return err
			}

			isolated := 0
			for id := 0; id < n.NodeCount(); id++ {
				if len(n.Roads(astar.NodeID(id))) == 0 {
					isolated++
				}
			}
			fmt.Fprintf(out, "nodes:        %d\n", n.NodeCount())
			fmt.Fprintf(out, "roads:        %d\n", n.RoadCount())
			fmt.Fprintf(out, "segments:     %d\n", n.EdgeCount())
			fmt.Fprintf(out, "isolated:     %d\n", isolated)
			_, err = fmt.Fprintf(out, "metric scale: %g m/unit\n", n.MetricScale())

			return err
		},
	}
}
