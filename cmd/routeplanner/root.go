package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "ROUTEPLANNER"

// newRootCommand wires the subcommands to one viper instance. Every flag can
// also come from ROUTEPLANNER_<FLAG> (dashes become underscores) or from the
// file named by --config.
func newRootCommand(out io.Writer) *cobra.Command {
	vip := viper.New()

	cmd := &cobra.Command{
		Use:          "routeplanner",
		Short:        "Plan shortest routes over a road network",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(vip, cmd.Flags())
		},
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "optional config file (yaml, json or toml)")
	flags.String("network", "", "road network description (yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Float64("metric-scale", 0, "metres per model unit; overrides the network file when set")

	cmd.AddCommand(
		newRouteCommand(vip, out),
		newInspectCommand(vip, out),
	)

	return cmd
}

// loadConfig binds flags, the environment and the optional config file
// into vip. Explicit flags win over env, env over file.
func loadConfig(vip *viper.Viper, flags *pflag.FlagSet) error {
	if err := vip.BindPFlags(flags); err != nil {
		return err
	}
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if path := vip.GetString("config"); path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return nil
}

// newLogger builds a console logger on stderr at the configured level.
func newLogger(vip *viper.Viper) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(vip.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true

	return cfg.Build()
}
