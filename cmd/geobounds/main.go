package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the CLI configuration. Values come from flags, GEOBOUNDS_*
// environment variables or a YAML file given with --config, in that order
// of precedence.
type Config struct {
	Output  string      `mapstructure:"output"`
	Verbose bool        `mapstructure:"verbose"`
	Table   TableConfig `mapstructure:"table"`
}

// TableConfig holds the default center of the reference table.
type TableConfig struct {
	Lat float64 `mapstructure:"lat"`
	Lon float64 `mapstructure:"lon"`
}

const (
	formatText    = "text"
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatGeoJSON = "geojson"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	log     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "geobounds",
		Short: "Bounding boxes and Morton codes for geographic coordinates",
		Long: `Compute the bounding box around a point and radius with the inverse
Haversine formula, and encode coordinates as Morton (Z-order) codes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file path (YAML)")
	flags.StringP("output", "o", formatText, "Output format: text, json, yaml, geojson")
	flags.BoolP("verbose", "v", false, "Verbose output")
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))

	a.v.SetDefault("table.lat", 37.7749295)
	a.v.SetDefault("table.lon", -122.4194155)

	rootCmd.AddCommand(a.bboxCmd(), a.mortonCmd(), a.tableCmd())
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("GEOBOUNDS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	switch a.cfg.Output {
	case formatText, formatJSON, formatYAML, formatGeoJSON:
	default:
		return fmt.Errorf("unknown output format %q", a.cfg.Output)
	}

	level := slog.LevelInfo
	if a.cfg.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded", "output", a.cfg.Output, "config_file", a.v.ConfigFileUsed())
	return nil
}
