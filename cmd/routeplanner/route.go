package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/roadmodel"
)

var errNoNetwork = errors.New("no network description given (--network or ROUTEPLANNER_NETWORK)")

func newRouteCommand(vip *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan a route between two points",
		Long: `Plan a route between (start-x, start-y) and (end-x, end-y).

Coordinates use a 0–100 range across the map and snap to the closest
routable node. A route that cannot be completed is reported with its
status and exits without error.`,
		Example: `  routeplanner route --network town.yaml --start-x 10 --start-y 10 --end-x 90 --end-y 90`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(vip, out)
		},
	}

	flags := cmd.Flags()
	flags.Float64("start-x", 10, "start x in 0–100 map coordinates")
	flags.Float64("start-y", 10, "start y in 0–100 map coordinates")
	flags.Float64("end-x", 90, "end x in 0–100 map coordinates")
	flags.Float64("end-y", 90, "end y in 0–100 map coordinates")
	flags.Int("max-iterations", astar.DefaultMaxIterations, "open-set selections before giving up; 0 means no cap")
	flags.Float64("input-scale", astar.DefaultInputScale, "factor from map coordinates to model units")
	flags.StringP("output", "o", "text", "output format: text or yaml")

	return cmd
}

func runRoute(vip *viper.Viper, out io.Writer) error {
	log, err := newLogger(vip)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	network, err := loadNetwork(vip, log)
	if err != nil {
		return err
	}

	res, err := astar.Route(network,
		vip.GetFloat64("start-x"), vip.GetFloat64("start-y"),
		vip.GetFloat64("end-x"), vip.GetFloat64("end-y"),
		astar.WithMaxIterations(vip.GetInt("max-iterations")),
		astar.WithInputScale(vip.GetFloat64("input-scale")),
		astar.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Info("route planned",
		zap.Stringer("status", res.Status),
		zap.Int("nodes", len(res.Path)),
		zap.Float64("metres", res.Distance),
	)

	switch format := vip.GetString("output"); format {
	case "text":
		return writeText(out, res)
	case "yaml":
		return writeYAML(out, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func loadNetwork(vip *viper.Viper, log *zap.Logger) (*roadmodel.Network, error) {
	path := vip.GetString("network")
	if path == "" {
		return nil, errNoNetwork
	}
	opts := []roadmodel.Option{roadmodel.WithLogger(log)}
	if s := vip.GetFloat64("metric-scale"); s != 0 {
		opts = append(opts, roadmodel.WithMetricScale(s))
	}

	return roadmodel.LoadFile(path, opts...)
}

func writeText(out io.Writer, res *astar.Result) error {
	fmt.Fprintf(out, "status: %s\n", res.Status)
	for i, n := range res.Path {
		fmt.Fprintf(out, "%3d  node %-6d (%.4f, %.4f)\n", i, n.ID, n.X, n.Y)
	}
	_, err := fmt.Fprintf(out, "distance: %.1f m\n", res.Distance)

	return err
}

// routeDoc is the yaml form of a result.
type routeDoc struct {
	Status     string      `yaml:"status"`
	Distance   float64     `yaml:"distance_m"`
	Iterations int         `yaml:"iterations"`
	Path       []routeStep `yaml:"path"`
}

type routeStep struct {
	ID int64   `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

func writeYAML(out io.Writer, res *astar.Result) error {
	doc := routeDoc{
		Status:     res.Status.String(),
		Distance:   res.Distance,
		Iterations: res.Iterations,
		Path:       make([]routeStep, len(res.Path)),
	}
	for i, n := range res.Path {
		doc.Path[i] = routeStep{ID: int64(n.ID), X: n.X, Y: n.Y}
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
