package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sergiodrd/sudoku/internal/config"
	"github.com/sergiodrd/sudoku/internal/server"
)

var (
	serveConfig string
	serveAddr   string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API over HTTP",
		Long: `Start an HTTP server exposing board parsing and constraint queries.

Examples:
  sudoku serve
  sudoku serve --addr :9000
  sudoku serve --config sudoku.yaml`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a YAML config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the config file)")

	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig merges the config file with the serve flags.
// Flags win over file values, which win over defaults.
func resolveServeConfig() (config.Config, error) {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if debugLog {
		cfg.Debug = true
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveServeConfig()
	if err != nil {
		return err
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Debug().Any("config", cfg).Msg("resolved config")

	e := gin.Default()
	server.New().Register(e)

	log.Info().Str("addr", cfg.Addr).Msg("serving board API")
	if err := e.Run(cfg.Addr); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
