package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:               "dbc",
	Short:             "DBC file inspector",
	Long:              "dbc parses CAN database (DBC) files and reports their nodes, value tables, messages and problems.",
	SilenceUsage:      true,
	PersistentPreRunE: readConfigFile,
}

// Config holds the settings shared by every subcommand. Values come from
// flags, LIBDBC_* environment variables and an optional config file.
type Config struct {
	Format  string `mapstructure:"format" validate:"oneof=text json yaml"`
	Strict  bool   `mapstructure:"strict"`
	Verbose bool   `mapstructure:"verbose"`
	Debug   bool   `mapstructure:"debug"`
	NoColor bool   `mapstructure:"no_color"`
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Config file (yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().Bool("strict", false, "Inspect: stop at the first critical statement. Check: fail on malformed statements too")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	viper.SetDefault("format", "text")
}

func initConfig() {
	viper.SetEnvPrefix("LIBDBC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func readConfigFile(cmd *cobra.Command, args []string) error {
	cfgFile := viper.GetString("config")
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// loadConfig unmarshals and validates the settings held by v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

// newLogger builds the logger for one command invocation. Without --verbose
// or --debug nothing is logged; diagnostics are printed by the commands.
func newLogger(cfg Config) (*zap.Logger, error) {
	if !cfg.Verbose && !cfg.Debug {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}

// setup loads the config and logger every subcommand starts from.
func setup() (Config, *zap.Logger, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return Config{}, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, logger, nil
}
