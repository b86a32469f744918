/*
Package cmd implements the command line interface for nefdecode.

Copyright © 2026 R. Voss
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-nef/nefdecode/internal/cli/decode"
	"github.com/go-nef/nefdecode/internal/container"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//nolint:gochecknoglobals // cobra boilerplate
var (
	cfgFile  string
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
	// ranDecode distinguishes a cobra usage error (bad arguments, exit 2)
	// from a failure inside the decode command itself (exit 1), per spec §6.
	ranDecode bool
	rootCmd   = &cobra.Command{
		Use:   "nefdecode",
		Short: "Decodes Nikon NEF raw camera files.",
		Long: `nefdecode is a command line tool that decodes Nikon Electronic Format
(NEF) raw files: the outer TIFF container, the embedded Makernote, the
linearization curve, and the Huffman-coded Bayer pixel strip, producing a
linear sensor raster plus structured metadata.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := initialiseConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialise configuration: %w", err)
			}

			cfgLogLevel := viper.GetString("log.level")
			level := slog.LevelInfo
			switch strings.ToLower(cfgLogLevel) {
			case "debug":
				level = slog.LevelDebug
			case "warn", "warning":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			}

			logLevel.Set(level)

			//nolint:sloglint // global logger is fine here
			logger.DebugContext(
				cmd.Context(),
				"Configuration initialised. Using config file:",
				slog.String("cfgFile", viper.ConfigFileUsed()),
			)

			return nil
		},
	}
)

const (
	exitDecodeFailure = 1
	exitBadArguments  = 2
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// Exit codes follow spec §6: 0 success, 2 bad arguments (cobra never reached
// the decode command's RunE), 1 a failure during decoding itself.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if ranDecode {
		os.Exit(exitDecodeFailure)
	}

	os.Exit(exitBadArguments)
}

//nolint:gochecknoinits // cobra boilerplate
func init() {
	//nolint:exhaustruct // tint boilerplate
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: "15:04:05",
	})
	logger = slog.New(handler)

	// Here you will define your flags and configuration settings.
	// Cobra supports persistent flags, which, if defined here,
	// will be global for your application.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nefdecode/config)")

	ctr := container.New(logger)

	decodeUseCase := decode.NewUseCase(logger, ctr.DecodeService, ctr.PreviewService)
	decodeCmd := decode.NewCommand(logLevel, logger, decodeUseCase)

	runDecode := decodeCmd.RunE
	decodeCmd.RunE = func(c *cobra.Command, args []string) error {
		ranDecode = true

		return runDecode(c, args)
	}

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(newVersionCommand())
}

func initialiseConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("NEFDECODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "*", "-", "*"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("log.level", "NEFDECODE_LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind env variable: %w", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for a config file in default locations.
		home, err := os.UserHomeDir()
		// Only exit if we can't get the home directory.
		cobra.CheckErr(err)

		// Search config in home directory with name "config" (without extension).
		viper.AddConfigPath(".")
		viper.AddConfigPath(home + "/.nefdecode")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to initialise config: %w", err)
		}
	}

	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to bind config flags: %w", err)
	}

	return nil
}
